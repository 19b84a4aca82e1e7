// Copyright (c) 2026, The Stringenum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on http://github.com/dmarkham/enumer and
// golang.org/x/tools/cmd/stringer:

// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enumgen

import (
	"fmt"
	"strconv"

	"github.com/jackson-nestelroad/stringenum/directive"
)

// Config contains the configuration information
// used by enumgen.
type Config struct {

	// Dir is the source directory to run enumgen on
	// (can be set to multiple through paths like ./...).
	Dir string `toml:"dir"`

	// Output is the output file location relative to the
	// package on which enumgen is being called.
	Output string `toml:"output"`

	// Transform, if specified, is the operation applied to each
	// value name to produce its string representation (snake,
	// snake-upper, kebab, kebab-upper, camel, camel-lower, upper,
	// lower, title, title-lower, first, first-upper, first-lower,
	// or whitespace).
	Transform string `toml:"transform"`

	// TrimPrefix, if specified, is a comma-separated list of
	// prefixes to trim from each value name.
	TrimPrefix string `toml:"trim-prefix"`

	// AddPrefix, if specified, is the prefix to add to each
	// value name.
	AddPrefix string `toml:"add-prefix"`

	// LineComment is whether to use line comment text as the
	// string representation when present.
	LineComment bool `toml:"line-comment"`

	// AcceptLower is whether to accept lowercase versions of
	// value strings when setting a value from a string.
	AcceptLower bool `toml:"accept-lower"`

	// IsValid is whether to generate a method returning whether
	// a value is a valid option for its type.
	IsValid bool `toml:"is-valid"`

	// Text is whether to generate text marshaling methods.
	Text bool `toml:"text"`

	// JSON is whether to generate JSON marshaling methods
	// (note that text marshaling methods will also work for
	// JSON, so this should be unnecessary in almost all cases;
	// see the text option).
	JSON bool `toml:"json"`

	// YAML is whether to generate YAML marshaling methods.
	YAML bool `toml:"yaml"`

	// SQL is whether to generate methods that implement the SQL
	// Scanner and Valuer interfaces.
	SQL bool `toml:"sql"`

	// Extend is whether to allow enums to extend other enums;
	// this should be on in almost all circumstances, but can be
	// turned off for specific enum types that extend non-enum types.
	Extend bool `toml:"extend"`
}

// Defaults sets the default configuration values.
func (c *Config) Defaults() {
	c.Dir = "."
	c.Output = "stringenum_gen.go"
	c.AcceptLower = true
	c.Text = true
	c.Extend = true
}

// boolOptions are the configuration options that can be set from a type
// comment directive either as a bare argument (meaning true) or in
// name=value form.
var boolOptions = map[string]func(c *Config, v bool){
	"line-comment": func(c *Config, v bool) { c.LineComment = v },
	"accept-lower": func(c *Config, v bool) { c.AcceptLower = v },
	"is-valid":     func(c *Config, v bool) { c.IsValid = v },
	"text":         func(c *Config, v bool) { c.Text = v },
	"json":         func(c *Config, v bool) { c.JSON = v },
	"yaml":         func(c *Config, v bool) { c.YAML = v },
	"sql":          func(c *Config, v bool) { c.SQL = v },
	"extend":       func(c *Config, v bool) { c.Extend = v },
}

// SetFromDirective sets configuration options from the arguments of the
// given type comment directive, overriding the tool-level configuration
// for one type. It returns an error for any unknown option.
func (c *Config) SetFromDirective(d directive.Directive) error {
	for _, arg := range d.Args {
		set, ok := boolOptions[arg]
		if !ok {
			return fmt.Errorf("unknown option %q (from directive %q)", arg, d.Source)
		}
		set(c, true)
	}
	for name, value := range d.NameValue {
		switch name {
		case "transform":
			c.Transform = value
		case "trim-prefix":
			c.TrimPrefix = value
		case "add-prefix":
			c.AddPrefix = value
		default:
			set, ok := boolOptions[name]
			if !ok {
				return fmt.Errorf("unknown option %q (from directive %q)", name, d.Source)
			}
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid value %q for option %q (from directive %q): %w", value, name, d.Source, err)
			}
			set(c, b)
		}
	}
	return nil
}
