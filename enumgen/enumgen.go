// Copyright (c) 2026, The Stringenum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enumgen provides the generation of string conversion and
// marshaling methods for enum types based on comment directives.
package enumgen

import (
	"bytes"
	"fmt"

	"github.com/jackson-nestelroad/stringenum/gogen"
	"golang.org/x/tools/go/packages"
)

// ParsePackages parses the package(s) located in the configuration source directory.
func ParsePackages(cfg *Config) ([]*packages.Package, error) {
	pcfg := &packages.Config{
		Mode: PackageModes(),
		// Test files are excluded so that a package whose tests
		// reference not-yet-generated methods can still load.
		Tests: false,
	}
	pkgs, err := gogen.Load(pcfg, cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("enumgen: error parsing package: %w", err)
	}
	return pkgs, nil
}

// Generate generates enum methods using the given configuration. It
// reads the Go files in the configuration source directory and writes
// the result to the configuration output file.
//
// It is a simple entry point to enumgen that does all
// of the steps; for more specific usage, see [ParsePackages]
// and [GeneratePkgs].
func Generate(cfg *Config) error {
	pkgs, err := ParsePackages(cfg)
	if err != nil {
		return err
	}
	return GeneratePkgs(cfg, pkgs)
}

// GeneratePkgs generates enum methods for the given parsed packages
// using the given configuration. Packages with no marked enum types
// are skipped without writing an output file.
func GeneratePkgs(cfg *Config, pkgs []*packages.Package) error {
	g := NewGenerator(cfg, pkgs)
	for _, pkg := range g.Pkgs {
		g.Pkg = pkg
		g.Buf = bytes.Buffer{}
		if err := g.Find(); err != nil {
			return fmt.Errorf("enumgen: error finding enum types for package %q: %w", pkg.Name, err)
		}
		g.PrintHeader()
		has, err := g.Generate()
		if !has {
			continue
		}
		if err != nil {
			return fmt.Errorf("enumgen: error generating code for package %q: %w", pkg.Name, err)
		}
		if err := g.Write(); err != nil {
			return fmt.Errorf("enumgen: error writing code for package %q: %w", pkg.Name, err)
		}
	}
	return nil
}
