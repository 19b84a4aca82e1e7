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
	"strings"
	"text/template"
)

var StringMethodTmpl = template.Must(template.New("StringMethod").Parse(
	`
// String returns the string representation of this {{.Name}} value.
func (i {{.Name}}) String() string {
	return stringenum.String(i, _{{.Name}}NameMap)
}
`))

var StringMethodExtendedTmpl = template.Must(template.New("StringMethodExtended").Parse(
	`
// String returns the string representation of this {{.Name}} value.
func (i {{.Name}}) String() string {
	return stringenum.StringExtended[{{.Name}}, {{.Extends}}](i, _{{.Name}}NameMap)
}
`))

var SetStringMethodTmpl = template.Must(template.New("SetStringMethod").Parse(
	`
// SetString sets the {{.Name}} value from its string representation,
// and returns an error if the string is invalid.
func (i *{{.Name}}) SetString(s string) error {
	return stringenum.SetString(i, s, _{{.Name}}ValueMap, "{{.Name}}")
}
`))

var SetStringMethodLowerTmpl = template.Must(template.New("SetStringMethodLower").Parse(
	`
// SetString sets the {{.Name}} value from its string representation,
// and returns an error if the string is invalid.
func (i *{{.Name}}) SetString(s string) error {
	return stringenum.SetStringLower(i, s, _{{.Name}}ValueMap, "{{.Name}}")
}
`))

var SetStringMethodExtendedTmpl = template.Must(template.New("SetStringMethodExtended").Parse(
	`
// SetString sets the {{.Name}} value from its string representation,
// and returns an error if the string is invalid.
func (i *{{.Name}}) SetString(s string) error {
	return stringenum.SetStringExtended(i, (*{{.Extends}})(i), s, _{{.Name}}ValueMap)
}
`))

var SetStringMethodLowerExtendedTmpl = template.Must(template.New("SetStringMethodLowerExtended").Parse(
	`
// SetString sets the {{.Name}} value from its string representation,
// and returns an error if the string is invalid.
func (i *{{.Name}}) SetString(s string) error {
	return stringenum.SetStringLowerExtended(i, (*{{.Extends}})(i), s, _{{.Name}}ValueMap)
}
`))

var Int64MethodsTmpl = template.Must(template.New("Int64Methods").Parse(
	`
// Int64 returns the {{.Name}} value as an int64.
func (i {{.Name}}) Int64() int64 {
	return int64(i)
}

// SetInt64 sets the {{.Name}} value from an int64.
func (i *{{.Name}}) SetInt64(in int64) {
	*i = {{.Name}}(in)
}
`))

var DescMethodTmpl = template.Must(template.New("DescMethod").Parse(
	`
// Desc returns the description of the {{.Name}} value.
func (i {{.Name}}) Desc() string {
	return stringenum.Desc(i, _{{.Name}}DescMap)
}
`))

var DescMethodExtendedTmpl = template.Must(template.New("DescMethodExtended").Parse(
	`
// Desc returns the description of the {{.Name}} value.
func (i {{.Name}}) Desc() string {
	return stringenum.DescExtended[{{.Name}}, {{.Extends}}](i, _{{.Name}}DescMap)
}
`))

var ValuesGlobalTmpl = template.Must(template.New("ValuesGlobal").Parse(
	`
// {{.Name}}Values returns all possible values of the type {{.Name}}.
func {{.Name}}Values() []{{.Name}} {
	return _{{.Name}}Values
}
`))

var ValuesGlobalExtendedTmpl = template.Must(template.New("ValuesGlobalExtended").Parse(
	`
// {{.Name}}Values returns all possible values of the type {{.Name}}.
func {{.Name}}Values() []{{.Name}} {
	return stringenum.ValuesGlobalExtended(_{{.Name}}Values, _{{.Extends}}Values)
}
`))

var ValuesMethodTmpl = template.Must(template.New("ValuesMethod").Parse(
	`
// Values returns all possible values of the type {{.Name}}.
func (i {{.Name}}) Values() []stringenum.Enum {
	return stringenum.Values(_{{.Name}}Values)
}
`))

var ValuesMethodExtendedTmpl = template.Must(template.New("ValuesMethodExtended").Parse(
	`
// Values returns all possible values of the type {{.Name}}.
func (i {{.Name}}) Values() []stringenum.Enum {
	return stringenum.ValuesExtended(_{{.Name}}Values, _{{.Extends}}Values)
}
`))

var IsValidMethodTmpl = template.Must(template.New("IsValidMethod").Parse(
	`
// IsValid returns whether the value is a valid option for its type.
func (i {{.Name}}) IsValid() bool {
	_, ok := _{{.Name}}NameMap[i]
	return ok
}
`))

var IsValidMethodExtendedTmpl = template.Must(template.New("IsValidMethodExtended").Parse(
	`
// IsValid returns whether the value is a valid option for its type.
func (i {{.Name}}) IsValid() bool {
	if _, ok := _{{.Name}}NameMap[i]; ok {
		return true
	}
	_, ok := _{{.Extends}}NameMap[{{.Extends}}(i)]
	return ok
}
`))

// BuildBasicMethods builds the data structures and methods common to
// all value-mapped enum types: the values slice, the name, value, and
// description maps, and the string conversion and introspection methods.
func (g *Generator) BuildBasicMethods(values []Value, typ *Type) error {
	g.Printf("\nvar _%sValues = []%s{", typ.Name, typ.Name)
	for i, v := range values {
		if i > 0 {
			g.Printf(", ")
		}
		g.Printf("%s", v.OriginalName)
	}
	g.Printf("}\n")

	max := values[len(values)-1]
	g.Printf("\n// %sN is the highest valid value for type %s, plus one.\n", typ.Name, typ.Name)
	if max.Signed {
		g.Printf("const %sN %s = %d\n", typ.Name, typ.Name, int64(max.Value)+1)
	} else {
		g.Printf("const %sN %s = %d\n", typ.Name, typ.Name, max.Value+1)
	}

	g.Printf("\nvar _%sNameMap = map[%s]string{\n", typ.Name, typ.Name)
	for _, v := range values {
		g.Printf("\t%s: %q,\n", v.OriginalName, v.Name)
	}
	g.Printf("}\n")

	if err := g.BuildValueMap(values, typ); err != nil {
		return err
	}

	g.Printf("\nvar _%sDescMap = map[%s]string{\n", typ.Name, typ.Name)
	for _, v := range values {
		g.Printf("\t%s: %q,\n", v.OriginalName, v.Desc)
	}
	g.Printf("}\n")

	if typ.Kind != Flags {
		if typ.Extends == "" {
			g.ExecTmpl(StringMethodTmpl, typ)
			switch {
			case typ.Config.AcceptLower:
				g.ExecTmpl(SetStringMethodLowerTmpl, typ)
			default:
				g.ExecTmpl(SetStringMethodTmpl, typ)
			}
		} else {
			g.ExecTmpl(StringMethodExtendedTmpl, typ)
			switch {
			case typ.Config.AcceptLower:
				g.ExecTmpl(SetStringMethodLowerExtendedTmpl, typ)
			default:
				g.ExecTmpl(SetStringMethodExtendedTmpl, typ)
			}
		}
	}
	g.ExecTmpl(Int64MethodsTmpl, typ)
	if typ.Extends == "" {
		g.ExecTmpl(DescMethodTmpl, typ)
		g.ExecTmpl(ValuesGlobalTmpl, typ)
		g.ExecTmpl(ValuesMethodTmpl, typ)
		if typ.Config.IsValid {
			g.ExecTmpl(IsValidMethodTmpl, typ)
		}
	} else {
		g.ExecTmpl(DescMethodExtendedTmpl, typ)
		g.ExecTmpl(ValuesGlobalExtendedTmpl, typ)
		g.ExecTmpl(ValuesMethodExtendedTmpl, typ)
		if typ.Config.IsValid {
			g.ExecTmpl(IsValidMethodExtendedTmpl, typ)
		}
	}
	return nil
}

// BuildValueMap builds the map from accepted strings to values, with an
// entry for each canonical string, each alias, and, when lowercase
// strings are accepted, the lowercase form of each of those. Two
// constants claiming the same string is an error.
func (g *Generator) BuildValueMap(values []Value, typ *Type) error {
	g.Printf("\nvar _%sValueMap = map[string]%s{\n", typ.Name, typ.Name)
	owners := map[string]string{}
	add := func(key string, v *Value) error {
		if owner, ok := owners[key]; ok {
			if owner == v.OriginalName {
				return nil
			}
			return fmt.Errorf("%v: string %q for constant %s of type %s is already used by constant %s", v.Pos, key, v.OriginalName, typ.Name, owner)
		}
		owners[key] = v.OriginalName
		g.Printf("\t%q: %s,\n", key, v.OriginalName)
		return nil
	}
	for i := range values {
		v := &values[i]
		for _, key := range append([]string{v.Name}, v.Aliases...) {
			if err := add(key, v); err != nil {
				return err
			}
			if typ.Config.AcceptLower {
				if low := strings.ToLower(key); low != key {
					if err := add(low, v); err != nil {
						return err
					}
				}
			}
		}
	}
	g.Printf("}\n")
	return nil
}
