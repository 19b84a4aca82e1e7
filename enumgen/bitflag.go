// Copyright (c) 2026, The Stringenum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enumgen

import "text/template"

var BitFlagStringMethodTmpl = template.Must(template.New("BitFlagStringMethod").Parse(
	`
// String returns the string representation of this {{.Name}} value,
// with all of the set bit flags joined by a pipe.
func (i {{.Name}}) String() string {
	return stringenum.BitFlagString(i, _{{.Name}}Values)
}
`))

var BitFlagStringMethodExtendedTmpl = template.Must(template.New("BitFlagStringMethodExtended").Parse(
	`
// String returns the string representation of this {{.Name}} value,
// with all of the set bit flags joined by a pipe.
func (i {{.Name}}) String() string {
	return stringenum.BitFlagStringExtended(i, _{{.Name}}Values, _{{.Extends}}Values)
}
`))

var BitIndexStringMethodTmpl = template.Must(template.New("BitIndexStringMethod").Parse(
	`
// BitIndexString returns the string representation of this {{.Name}} value
// if it is a bit index value (typically an enum constant), and
// not an actual bit flag value.
func (i {{.Name}}) BitIndexString() string {
	return stringenum.String(i, _{{.Name}}NameMap)
}
`))

var BitIndexStringMethodExtendedTmpl = template.Must(template.New("BitIndexStringMethodExtended").Parse(
	`
// BitIndexString returns the string representation of this {{.Name}} value
// if it is a bit index value (typically an enum constant), and
// not an actual bit flag value.
func (i {{.Name}}) BitIndexString() string {
	return stringenum.BitIndexStringExtended[{{.Name}}, {{.Extends}}](i, _{{.Name}}NameMap)
}
`))

var BitFlagSetStringMethodTmpl = template.Must(template.New("BitFlagSetStringMethod").Parse(
	`
// SetString sets the {{.Name}} value from its string representation,
// and returns an error if the string is invalid.
func (i *{{.Name}}) SetString(s string) error {
	*i = 0
	return i.SetStringOr(s)
}
`))

var SetStringOrMethodTmpl = template.Must(template.New("SetStringOrMethod").Parse(
	`
// SetStringOr sets the {{.Name}} value from its string representation
// while preserving any bit flags already set, and returns an
// error if the string is invalid.
func (i *{{.Name}}) SetStringOr(s string) error {
	return stringenum.SetStringOr(i, s, _{{.Name}}ValueMap, "{{.Name}}")
}
`))

var SetStringOrMethodLowerTmpl = template.Must(template.New("SetStringOrMethodLower").Parse(
	`
// SetStringOr sets the {{.Name}} value from its string representation
// while preserving any bit flags already set, and returns an
// error if the string is invalid.
func (i *{{.Name}}) SetStringOr(s string) error {
	return stringenum.SetStringOrLower(i, s, _{{.Name}}ValueMap, "{{.Name}}")
}
`))

var SetStringOrMethodExtendedTmpl = template.Must(template.New("SetStringOrMethodExtended").Parse(
	`
// SetStringOr sets the {{.Name}} value from its string representation
// while preserving any bit flags already set, and returns an
// error if the string is invalid.
func (i *{{.Name}}) SetStringOr(s string) error {
	return stringenum.SetStringOrExtended(i, (*{{.Extends}})(i), s, _{{.Name}}ValueMap)
}
`))

var SetStringOrMethodLowerExtendedTmpl = template.Must(template.New("SetStringOrMethodLowerExtended").Parse(
	`
// SetStringOr sets the {{.Name}} value from its string representation
// while preserving any bit flags already set, and returns an
// error if the string is invalid.
func (i *{{.Name}}) SetStringOr(s string) error {
	return stringenum.SetStringOrLowerExtended(i, (*{{.Extends}})(i), s, _{{.Name}}ValueMap)
}
`))

var HasFlagMethodTmpl = template.Must(template.New("HasFlagMethod").Parse(
	`
// HasFlag returns whether these bit flags have the given bit flag set.
func (i {{.Name}}) HasFlag(f stringenum.BitFlag) bool {
	return stringenum.HasFlag((*int64)(&i), f)
}
`))

var SetFlagMethodTmpl = template.Must(template.New("SetFlagMethod").Parse(
	`
// SetFlag sets the value of the given flags in these flags to the given value.
func (i *{{.Name}}) SetFlag(on bool, f ...stringenum.BitFlag) {
	stringenum.SetFlag((*int64)(i), on, f...)
}
`))

// BuildBitFlagMethods builds the methods specific to bit flag types.
func (g *Generator) BuildBitFlagMethods(typ *Type) {
	if typ.Extends == "" {
		g.ExecTmpl(BitFlagStringMethodTmpl, typ)
		g.ExecTmpl(BitIndexStringMethodTmpl, typ)
	} else {
		g.ExecTmpl(BitFlagStringMethodExtendedTmpl, typ)
		g.ExecTmpl(BitIndexStringMethodExtendedTmpl, typ)
	}
	g.ExecTmpl(BitFlagSetStringMethodTmpl, typ)
	switch {
	case typ.Config.AcceptLower && typ.Extends != "":
		g.ExecTmpl(SetStringOrMethodLowerExtendedTmpl, typ)
	case typ.Config.AcceptLower:
		g.ExecTmpl(SetStringOrMethodLowerTmpl, typ)
	case typ.Extends != "":
		g.ExecTmpl(SetStringOrMethodExtendedTmpl, typ)
	default:
		g.ExecTmpl(SetStringOrMethodTmpl, typ)
	}
	g.ExecTmpl(HasFlagMethodTmpl, typ)
	g.ExecTmpl(SetFlagMethodTmpl, typ)
}
