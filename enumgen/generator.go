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
	"bytes"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"log"
	"strings"
	"text/template"

	"github.com/jackson-nestelroad/stringenum/directive"
	"github.com/jackson-nestelroad/stringenum/gogen"
	"golang.org/x/tools/go/packages"
)

// DirectiveTool is the comment directive tool name that marks
// types and constants for code generation.
const DirectiveTool = "stringenum"

// RuntimePath is the import path of the runtime package that
// generated code delegates to.
const RuntimePath = "github.com/jackson-nestelroad/stringenum"

// AllowedEnumTypes are the builtin types that can be used directly
// as the underlying type of an enum declaration.
var AllowedEnumTypes = map[string]bool{"int": true, "int64": true, "int32": true, "int16": true, "int8": true, "uint": true, "uint64": true, "uint32": true, "uint16": true, "uint8": true}

// Generator holds the state of the generator.
// It is primarily used to buffer the output.
type Generator struct {
	Config *Config             // The configuration information
	Buf    bytes.Buffer        // The accumulated output
	Pkgs   []*packages.Package // The packages we are scanning
	Pkg    *packages.Package   // The package being processed currently
	Types  []*Type             // The enum types found in the package
}

// NewGenerator returns a new generator with the given configuration
// and parsed packages.
func NewGenerator(config *Config, pkgs []*packages.Package) *Generator {
	return &Generator{Config: config, Pkgs: pkgs}
}

// PackageModes returns the package load modes needed for this generator.
func PackageModes() packages.LoadMode {
	return packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles | packages.NeedImports | packages.NeedTypes | packages.NeedTypesSizes | packages.NeedSyntax | packages.NeedTypesInfo
}

// Printf prints the formatted string to the accumulated output.
func (g *Generator) Printf(format string, args ...any) {
	fmt.Fprintf(&g.Buf, format, args...)
}

// PrintHeader prints the header and package clause to the accumulated
// output. The imports are a superset of what any one file needs; unused
// ones are removed when the output is formatted.
func (g *Generator) PrintHeader() {
	gogen.PrintHeader(&g.Buf, g.Pkg.Name, "database/sql/driver", "encoding/json", "fmt", RuntimePath, "gopkg.in/yaml.v3")
}

// Find finds the enum types declared in the current package.
func (g *Generator) Find() error {
	g.Types = []*Type{}
	err := gogen.Inspect(g.Pkg, g.Inspect)
	if err != nil {
		return fmt.Errorf("error finding enum types for package %q: %w", g.Pkg.Name, err)
	}
	return g.ResolveExtends()
}

// Inspect looks at the given AST node and adds it to [Generator.Types]
// if it is marked with an enum directive. Directives placed on
// declarations that cannot carry them are reported instead of being
// silently ignored.
func (g *Generator) Inspect(n ast.Node) (bool, error) {
	switch gd := n.(type) {
	case *ast.FuncDecl:
		return true, g.checkStrayDirectives(gd.Doc, "function", gd.Pos())
	case *ast.GenDecl:
		switch gd.Tok {
		case token.VAR:
			return true, g.checkStrayDirectives(gd.Doc, "var", gd.Pos())
		case token.IMPORT:
			return true, g.checkStrayDirectives(gd.Doc, "import", gd.Pos())
		case token.TYPE:
		default:
			return true, nil
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			dirs := directive.ParseCommentGroup(gd.Doc)
			dirs = append(dirs, directive.ParseCommentGroup(ts.Doc)...)
			dirs = append(dirs, directive.ParseCommentGroup(ts.Comment)...)
			if err := g.InspectType(ts, dirs); err != nil {
				return false, err
			}
		}
	}
	return true, nil
}

// checkStrayDirectives reports any directive placed on a declaration
// that cannot be generated for.
func (g *Generator) checkStrayDirectives(doc *ast.CommentGroup, decl string, pos token.Pos) error {
	for _, dir := range directive.ParseCommentGroup(doc) {
		if dir.Tool != DirectiveTool {
			continue
		}
		return fmt.Errorf("%v: directive %q is not valid on a %s declaration", g.Pkg.Fset.Position(pos), dir.Directive, decl)
	}
	return nil
}

// InspectType looks at the given type spec and its directives and adds
// it to [Generator.Types] if it carries a type directive.
func (g *Generator) InspectType(ts *ast.TypeSpec, dirs []directive.Directive) error {
	typ := &Type{Name: ts.Name.Name, Type: ts, Pos: g.Pkg.Fset.Position(ts.Pos())}
	found := false
	for _, dir := range dirs {
		if dir.Tool != DirectiveTool {
			continue
		}
		kind, ok := typeDirectives[dir.Directive]
		if !ok {
			return fmt.Errorf("%v: directive %q is not valid on a type declaration", typ.Pos, dir.Directive)
		}
		if found {
			return fmt.Errorf("%v: type %s has multiple type directives (%s and %s)", typ.Pos, typ.Name, typ.Kind, kind)
		}
		found = true
		typ.Kind = kind
		cfg := *g.Config
		if err := cfg.SetFromDirective(dir); err != nil {
			return fmt.Errorf("%v: %w", typ.Pos, err)
		}
		typ.Config = &cfg
	}
	if !found {
		return nil
	}
	if typ.Kind != Textual {
		if err := g.CheckUnderlying(typ, ts); err != nil {
			return err
		}
	}
	g.Types = append(g.Types, typ)
	return nil
}

var typeDirectives = map[string]Kind{
	"enum":    Derived,
	"labeled": Labeled,
	"bitflag": Flags,
	"text":    Textual,
}

// CheckUnderlying verifies that the underlying type of the enum type is
// an allowed integer type, and records the local type it extends, if any.
func (g *Generator) CheckUnderlying(typ *Type, ts *ast.TypeSpec) error {
	switch te := ts.Type.(type) {
	case *ast.Ident:
		if !AllowedEnumTypes[te.Name] && typ.Config.Extend {
			typ.Extends = te.Name
		}
	case *ast.SelectorExpr:
		return fmt.Errorf("%v: type %s extends a type from another package; enum types can only extend enum types in the same package", typ.Pos, typ.Name)
	}
	obj := g.Pkg.Types.Scope().Lookup(typ.Name)
	if obj == nil {
		return fmt.Errorf("%v: internal error: cannot find type %s in package scope", typ.Pos, typ.Name)
	}
	basic, ok := obj.Type().Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsInteger == 0 {
		return fmt.Errorf("%v: type %s is not a valid enum type; it must have an integer underlying type", typ.Pos, typ.Name)
	}
	if typ.Kind == Flags && basic.Kind() != types.Int64 {
		return fmt.Errorf("%v: bit flag type %s must have an underlying type of int64", typ.Pos, typ.Name)
	}
	return nil
}

// ResolveExtends verifies that every type that extends a local type
// extends another enum type of a compatible kind.
func (g *Generator) ResolveExtends() error {
	byName := map[string]*Type{}
	for _, typ := range g.Types {
		byName[typ.Name] = typ
	}
	for _, typ := range g.Types {
		if typ.Extends == "" {
			continue
		}
		base, ok := byName[typ.Extends]
		if !ok {
			return fmt.Errorf("%v: type %s extends %s, which is not an enum type in the same package", typ.Pos, typ.Name, typ.Extends)
		}
		if (typ.Kind == Flags) != (base.Kind == Flags) {
			return fmt.Errorf("%v: type %s (%s) cannot extend %s (%s); bit flag types can only extend bit flag types", typ.Pos, typ.Name, typ.Kind, base.Name, base.Kind)
		}
		if base.Kind == Textual {
			return fmt.Errorf("%v: type %s cannot extend %s, which uses its own textual methods", typ.Pos, typ.Name, base.Name)
		}
	}
	return nil
}

// CheckTextual verifies that a type marked for textual delegation
// already provides the methods the generated code is built on:
// String() string in the value method set, and SetString(string) error
// in the pointer method set.
func (g *Generator) CheckTextual(typ *Type) error {
	obj := g.Pkg.Types.Scope().Lookup(typ.Name)
	if obj == nil {
		return fmt.Errorf("%v: internal error: cannot find type %s in package scope", typ.Pos, typ.Name)
	}
	t := obj.Type()
	str := methodNamed(types.NewMethodSet(t), "String")
	if str == nil || !identicalSignature(str, nil, []types.Type{types.Typ[types.String]}) {
		return fmt.Errorf("%v: type %s must implement String() string to generate textual methods", typ.Pos, typ.Name)
	}
	errType := types.Universe.Lookup("error").Type()
	set := methodNamed(types.NewMethodSet(types.NewPointer(t)), "SetString")
	if set == nil || !identicalSignature(set, []types.Type{types.Typ[types.String]}, []types.Type{errType}) {
		return fmt.Errorf("%v: type %s must implement SetString(string) error to generate textual methods", typ.Pos, typ.Name)
	}
	return nil
}

func methodNamed(ms *types.MethodSet, name string) *types.Func {
	for i := 0; i < ms.Len(); i++ {
		if fn, ok := ms.At(i).Obj().(*types.Func); ok && fn.Name() == name {
			return fn
		}
	}
	return nil
}

func identicalSignature(fn *types.Func, params, results []types.Type) bool {
	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return false
	}
	if sig.Params().Len() != len(params) || sig.Results().Len() != len(results) {
		return false
	}
	for i, p := range params {
		if !types.Identical(sig.Params().At(i).Type(), p) {
			return false
		}
	}
	for i, r := range results {
		if !types.Identical(sig.Results().At(i).Type(), r) {
			return false
		}
	}
	return true
}

// HarvestValues returns the values of the given enum type, gathered
// from the constant declarations in the current package.
func (g *Generator) HarvestValues(typ *Type) ([]Value, error) {
	values := []Value{}
	err := gogen.Inspect(g.Pkg, func(n ast.Node) (bool, error) {
		gd, ok := n.(*ast.GenDecl)
		if !ok || gd.Tok != token.CONST {
			return true, nil
		}
		vals, err := g.ConstValues(gd, typ)
		if err != nil {
			return false, err
		}
		values = append(values, vals...)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

// ConstValues returns the values in the given constant declaration that
// belong to the given enum type.
func (g *Generator) ConstValues(gd *ast.GenDecl, typ *Type) ([]Value, error) {
	values := []Value{}
	// The name of the type of the constants we are declaring.
	// It can change if this is a multi-element declaration.
	typName := ""
	for _, spec := range gd.Specs {
		vspec, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}
		if vspec.Type == nil && len(vspec.Values) > 0 {
			// "X = 1". With no type, the constant is untyped.
			// Skip this vspec and reset the remembered type.
			typName = ""
			continue
		}
		if id, ok := vspec.Type.(*ast.Ident); ok {
			typName = id.Name
		}
		if typName != typ.Name {
			continue
		}
		for _, name := range vspec.Names {
			if name.Name == "_" {
				continue
			}
			obj, ok := g.Pkg.TypesInfo.Defs[name]
			if !ok {
				return nil, fmt.Errorf("no value for constant %s", name)
			}
			bt, ok := obj.Type().Underlying().(*types.Basic)
			if !ok || bt.Info()&types.IsInteger == 0 {
				return nil, fmt.Errorf("can't handle non-integer constant type %s", obj.Type())
			}
			value := obj.(*types.Const).Val()
			if value.Kind() != constant.Int {
				log.Fatalf("can't happen: constant is not an integer %s", name)
			}
			i64, isInt := constant.Int64Val(value)
			u64, isUint := constant.Uint64Val(value)
			if !isInt && !isUint {
				return nil, fmt.Errorf("internal error: value of %s is not an integer: %s", name, value.String())
			}
			if !isUint {
				u64 = uint64(i64)
			}
			v := Value{
				OriginalName: name.Name,
				Name:         name.Name,
				Value:        u64,
				Signed:       bt.Info()&types.IsUnsigned == 0,
				Str:          value.String(),
				Pos:          g.Pkg.Fset.Position(name.Pos()),
			}
			if err := g.ValueComments(&v, vspec, typ); err != nil {
				return nil, err
			}
			values = append(values, v)
		}
	}
	return values, nil
}

// ValueComments applies the doc and line comments of the given value
// spec to the value: its description, its explicit label, and its
// aliases.
func (g *Generator) ValueComments(v *Value, vspec *ast.ValueSpec, typ *Type) error {
	dirs := directive.ParseCommentGroup(vspec.Doc)
	dirs = append(dirs, directive.ParseCommentGroup(vspec.Comment)...)
	for _, dir := range dirs {
		if dir.Tool != DirectiveTool {
			continue
		}
		switch dir.Directive {
		case "label":
			if v.Label {
				return fmt.Errorf("%v: constant %s has multiple label directives", v.Pos, v.OriginalName)
			}
			if len(dir.Args) == 0 {
				return fmt.Errorf("%v: label directive on constant %s must have a label argument", v.Pos, v.OriginalName)
			}
			v.Name = dir.Args[0]
			v.Label = true
			v.Aliases = append(v.Aliases, dir.Args[1:]...)
		case "alias":
			if len(dir.Args) == 0 {
				return fmt.Errorf("%v: alias directive on constant %s must have at least one alias argument", v.Pos, v.OriginalName)
			}
			v.Aliases = append(v.Aliases, dir.Args...)
		default:
			return fmt.Errorf("%v: directive %q is not valid on a constant declaration", v.Pos, dir.Directive)
		}
		for name := range dir.NameValue {
			if name != "alias" {
				return fmt.Errorf("%v: unknown option %q on %s directive for constant %s", v.Pos, name, dir.Directive, v.OriginalName)
			}
			for _, alias := range strings.Split(dir.NameValue[name], ",") {
				v.Aliases = append(v.Aliases, strings.TrimSpace(alias))
			}
		}
	}
	v.Desc = descFromComment(vspec.Doc)
	if !v.Label && typ.Config.LineComment && vspec.Comment != nil {
		// Text excludes directive lines, so a line comment holding
		// only a directive does not rename the value.
		if text := strings.TrimSpace(vspec.Comment.Text()); text != "" {
			v.Name = text
		}
	}
	return nil
}

// descFromComment collapses the given comment group into a single-line
// description. Directive lines are already excluded by [ast.CommentGroup.Text].
func descFromComment(cg *ast.CommentGroup) string {
	return strings.Join(strings.Fields(cg.Text()), " ")
}

// Generate produces the string methods for the types found by [Generator.Find].
// It reports whether the current package has any enum types to generate for.
func (g *Generator) Generate() (bool, error) {
	if len(g.Types) == 0 {
		return false, nil
	}
	for _, typ := range g.Types {
		if typ.Kind == Textual {
			if err := g.CheckTextual(typ); err != nil {
				return true, err
			}
			g.BuildTextualMethods(typ)
			continue
		}
		values, err := g.HarvestValues(typ)
		if err != nil {
			return true, err
		}
		if len(values) == 0 {
			return true, fmt.Errorf("%v: no constants defined for type %s", typ.Pos, typ.Name)
		}
		cfg := typ.Config
		g.TrimValueNames(values, cfg)
		if err := g.TransformValueNames(values, cfg); err != nil {
			return true, fmt.Errorf("%v: %w", typ.Pos, err)
		}
		g.PrefixValueNames(values, cfg)
		if typ.Kind == Labeled {
			for _, v := range values {
				if !v.Label {
					return true, fmt.Errorf("%v: constant %s of labeled type %s has no label directive", v.Pos, v.OriginalName, typ.Name)
				}
			}
		}
		values = SortValues(values)
		if err := g.BuildBasicMethods(values, typ); err != nil {
			return true, err
		}
		if typ.Kind == Flags {
			g.BuildBitFlagMethods(typ)
		}
		if cfg.Text {
			g.BuildTextMethods(typ)
		}
		if cfg.JSON {
			g.BuildJSONMethods(typ)
		}
		if cfg.YAML {
			g.BuildYAMLMethods(typ)
		}
		if cfg.SQL {
			g.AddValueAndScanMethod(typ)
		}
	}
	return true, nil
}

// ExecTmpl executes the given template with the given type and
// writes the result to the accumulated output.
func (g *Generator) ExecTmpl(t *template.Template, typ *Type) {
	err := t.Execute(&g.Buf, typ)
	if err != nil {
		log.Fatalf("programmer error: internal error: error executing template: %v", err)
	}
}

// Write formats the accumulated output and writes it to the
// output file.
func (g *Generator) Write() error {
	return gogen.Write(gogen.Filepath(g.Pkg, g.Config.Output), g.Buf.Bytes())
}
