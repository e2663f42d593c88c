// Package hclconf loads optional project-level flag defaults from an rmc.hcl
// file. Values from the file seed flags the user did not set on the command
// line; explicit command-line values always win.
package hclconf

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/spf13/pflag"
	"github.com/zclconf/go-cty/cty"
)

// DefaultFileName is the defaults file looked up in the working directory
// when the entry point does not name one explicitly.
const DefaultFileName = "rmc.hcl"

// fileRoot decodes the top-level blocks of a defaults file.
type fileRoot struct {
	Defaults *defaultsBlock `hcl:"defaults,block"`
}

// defaultsBlock mirrors the subset of catalog flags that make sense as
// per-project defaults. Pointer fields distinguish "absent" from "empty".
type defaultsBlock struct {
	Function  *string  `hcl:"function,optional"`
	TargetDir *string  `hcl:"target_dir,optional"`
	SrcDir    *string  `hcl:"srcdir,optional"`
	WkDir     *string  `hcl:"wkdir,optional"`
	Mangler   *string  `hcl:"mangler,optional"`
	CLibs     []string `hcl:"c_lib,optional"`
}

// Apply reads the defaults file at path and seeds fs with its values for
// every flag the user left untouched. A missing file is not an error; a
// present but unreadable or malformed file is.
func Apply(fs *pflag.FlagSet, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error reading defaults file %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse defaults file %s: %w", path, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &root); diags.HasErrors() {
		return fmt.Errorf("failed to decode defaults file %s: %w", path, diags)
	}
	if root.Defaults == nil {
		return nil
	}

	values := map[string]*string{
		"function":   root.Defaults.Function,
		"target-dir": root.Defaults.TargetDir,
		"srcdir":     root.Defaults.SrcDir,
		"wkdir":      root.Defaults.WkDir,
		"mangler":    root.Defaults.Mangler,
	}
	for name, value := range values {
		if err := seed(fs, name, value); err != nil {
			return err
		}
	}

	if flag := fs.Lookup("c-lib"); flag != nil && !flag.Changed {
		for _, lib := range root.Defaults.CLibs {
			if err := flag.Value.Set(lib); err != nil {
				return fmt.Errorf("invalid c_lib default in %s: %w", path, err)
			}
		}
	}

	return nil
}

// evalContext exposes a small set of variables to expressions in the
// defaults file, e.g. target_dir = "${cwd}/build".
func evalContext() *hcl.EvalContext {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"cwd": cty.StringVal(wd),
		},
	}
}

func seed(fs *pflag.FlagSet, name string, value *string) error {
	if value == nil {
		return nil
	}
	flag := fs.Lookup(name)
	if flag == nil || flag.Changed {
		return nil
	}
	if err := flag.Value.Set(*value); err != nil {
		return fmt.Errorf("invalid %s default: %w", name, err)
	}
	return nil
}
