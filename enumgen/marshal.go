// Copyright (c) 2026, The Stringenum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enumgen

import "text/template"

var TextMethodsTmpl = template.Must(template.New("TextMethods").Parse(
	`
// MarshalText implements the [encoding.TextMarshaler] interface.
func (i {{.Name}}) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *{{.Name}}) UnmarshalText(text []byte) error {
	return stringenum.UnmarshalText(i, text, "{{.Name}}")
}
`))

var JSONMethodsTmpl = template.Must(template.New("JSONMethods").Parse(
	`
// MarshalJSON implements the [json.Marshaler] interface.
func (i {{.Name}}) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
func (i *{{.Name}}) UnmarshalJSON(data []byte) error {
	return stringenum.UnmarshalJSON(i, data, "{{.Name}}")
}
`))

var YAMLMethodsTmpl = template.Must(template.New("YAMLMethods").Parse(
	`
// MarshalYAML implements the yaml.Marshaler interface.
func (i {{.Name}}) MarshalYAML() (any, error) {
	return i.String(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (i *{{.Name}}) UnmarshalYAML(n *yaml.Node) error {
	return stringenum.UnmarshalYAML(i, n, "{{.Name}}")
}
`))

// BuildTextMethods builds the text marshaling methods.
func (g *Generator) BuildTextMethods(typ *Type) {
	g.ExecTmpl(TextMethodsTmpl, typ)
}

// BuildJSONMethods builds the JSON marshaling methods.
func (g *Generator) BuildJSONMethods(typ *Type) {
	g.ExecTmpl(JSONMethodsTmpl, typ)
}

// BuildYAMLMethods builds the YAML marshaling methods.
func (g *Generator) BuildYAMLMethods(typ *Type) {
	g.ExecTmpl(YAMLMethodsTmpl, typ)
}
