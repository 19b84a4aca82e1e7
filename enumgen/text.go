// Copyright (c) 2026, The Stringenum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enumgen

import "text/template"

// The textual templates delegate to the String and SetString methods
// the type already defines, so they work for types whose string
// representations are not a fixed set of values.

var TextualTextMethodsTmpl = template.Must(template.New("TextualTextMethods").Parse(
	`
// MarshalText implements the [encoding.TextMarshaler] interface.
func (i {{.Name}}) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *{{.Name}}) UnmarshalText(text []byte) error {
	return i.SetString(string(text))
}
`))

var TextualJSONMethodsTmpl = template.Must(template.New("TextualJSONMethods").Parse(
	`
// MarshalJSON implements the [json.Marshaler] interface.
func (i {{.Name}}) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
func (i *{{.Name}}) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("{{.Name}} should be a string, but got %s: %w", data, err)
	}
	return i.SetString(s)
}
`))

var TextualYAMLMethodsTmpl = template.Must(template.New("TextualYAMLMethods").Parse(
	`
// MarshalYAML implements the yaml.Marshaler interface.
func (i {{.Name}}) MarshalYAML() (any, error) {
	return i.String(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (i *{{.Name}}) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	return i.SetString(s)
}
`))

var TextualSQLMethodsTmpl = template.Must(template.New("TextualSQLMethods").Parse(
	`
// Value implements the [driver.Valuer] interface.
func (i {{.Name}}) Value() (driver.Value, error) {
	return i.String(), nil
}

// Scan implements the [sql.Scanner] interface.
func (i *{{.Name}}) Scan(value any) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return i.SetString(string(v))
	case string:
		return i.SetString(v)
	case fmt.Stringer:
		return i.SetString(v.String())
	default:
		return fmt.Errorf("invalid value for type {{.Name}}: %[1]T(%[1]v)", value)
	}
}
`))

// BuildTextualMethods builds the marshaling methods for a type that
// provides its own String and SetString methods.
func (g *Generator) BuildTextualMethods(typ *Type) {
	if typ.Config.Text {
		g.ExecTmpl(TextualTextMethodsTmpl, typ)
	}
	if typ.Config.JSON {
		g.ExecTmpl(TextualJSONMethodsTmpl, typ)
	}
	if typ.Config.YAML {
		g.ExecTmpl(TextualYAMLMethodsTmpl, typ)
	}
	if typ.Config.SQL {
		g.ExecTmpl(TextualSQLMethodsTmpl, typ)
	}
}
