// Copyright (c) 2026, The Stringenum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gogen provides utilities for building Go code generators
// on top of [golang.org/x/tools/go/packages].
package gogen

import (
	"errors"
	"fmt"
	"go/ast"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/imports"
)

// Load loads and returns the Go packages named by the given directory
// pattern using the given config. It reports any errors encountered
// while loading or parsing the packages.
func Load(cfg *packages.Config, dir string) ([]*packages.Package, error) {
	pkgs, err := packages.Load(cfg, dir)
	if err != nil {
		return nil, fmt.Errorf("error loading packages from %q: %w", dir, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found in %q", dir)
	}
	var errs []error
	for _, pkg := range pkgs {
		for _, err := range pkg.Errors {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("errors parsing packages from %q: %w", dir, errors.Join(errs...))
	}
	return pkgs, nil
}

// Inspect goes through all of the AST files of the given package and
// calls the given function on each AST node. The function returns
// whether to continue traversing the node's children, and any error.
// Generated files are skipped.
func Inspect(pkg *packages.Package, f func(n ast.Node) (bool, error)) error {
	for _, file := range pkg.Syntax {
		if ast.IsGenerated(file) {
			continue
		}
		var terr error
		ast.Inspect(file, func(n ast.Node) bool {
			if terr != nil {
				return false
			}
			cont, err := f(n)
			if err != nil {
				terr = err
			}
			return cont
		})
		if terr != nil {
			return terr
		}
	}
	return nil
}

// PrintHeader prints a header and package clause for a generated file
// to the given writer, using the given package name and imports.
// Any unused imports are removed later by [Write], so the given
// imports may be a superset of those the generated code needs.
func PrintHeader(w io.Writer, pkg string, imports ...string) {
	fmt.Fprintf(w, "// Code generated by \"stringenum\"; DO NOT EDIT.\n\n")
	fmt.Fprintf(w, "package %s\n\n", pkg)
	if len(imports) > 0 {
		fmt.Fprintf(w, "import (\n")
		for _, imp := range imports {
			fmt.Fprintf(w, "\t%q\n", imp)
		}
		fmt.Fprintf(w, ")\n\n")
	}
}

// Format formats the given Go source for the given (possibly nonexistent)
// file path using goimports, fixing up the import block and applying
// standard formatting.
func Format(filename string, src []byte) ([]byte, error) {
	res, err := imports.Process(filename, src, nil)
	if err != nil {
		return nil, fmt.Errorf("error formatting generated code for %q (this likely indicates a bug in the generator): %w", filename, err)
	}
	return res, nil
}

// Write formats the given generated source with [Format] and writes it
// to the given file path.
func Write(filename string, src []byte) error {
	b, err := Format(filename, src)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, b, 0666); err != nil {
		return fmt.Errorf("error writing generated file: %w", err)
	}
	return nil
}

// Filepath returns the given output filename relative to the directory
// of the given package. Absolute filenames are returned as is.
func Filepath(pkg *packages.Package, filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	if len(pkg.GoFiles) > 0 {
		return filepath.Join(filepath.Dir(pkg.GoFiles[0]), filename)
	}
	return filename
}
