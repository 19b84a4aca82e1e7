// Copyright (c) 2026, The Stringenum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on http://github.com/dmarkham/enumer:

// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enumgen

import "text/template"

var SQLMethodsTmpl = template.Must(template.New("SQLMethods").Parse(
	`
// Value implements the [driver.Valuer] interface.
func (i {{.Name}}) Value() (driver.Value, error) {
	return i.String(), nil
}

// Scan implements the [sql.Scanner] interface.
func (i *{{.Name}}) Scan(value any) error {
	return stringenum.Scan(i, value, "{{.Name}}")
}
`))

// AddValueAndScanMethod builds methods that implement the SQL
// [driver.Valuer] and [sql.Scanner] interfaces.
func (g *Generator) AddValueAndScanMethod(typ *Type) {
	g.ExecTmpl(SQLMethodsTmpl, typ)
}
