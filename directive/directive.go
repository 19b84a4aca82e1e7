// Copyright (c) 2026, The Stringenum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package directive implements simple, standardized, and scalable parsing
// of Go comment directives.
package directive

import (
	"go/ast"
	"sort"
	"strings"
	"unicode"

	"github.com/mattn/go-shellwords"
)

// Directive represents a comment directive that has been
// parsed or created in code. Directives are of the form:
//
//	//tool:directive arg0 key0=value0 arg1 key1=value1
//
// (the two slashes are optional, and the positional and
// key-value arguments can be in any order).
type Directive struct {

	// Source is the original source of the directive,
	// including the leading slashes, if any.
	Source string

	// Tool is the name of the tool that
	// the directive is for.
	Tool string

	// Directive is the actual directive
	// string that is placed after the
	// name of the tool and a colon.
	Directive string

	// Args are the positional arguments
	// passed to the directive.
	Args []string

	// NameValue are the name-value arguments
	// passed to the directive.
	NameValue map[string]string
}

// String returns the directive as a formatted string suitable for use in
// code. It includes two slashes (`//`) at the start. The positional
// arguments come first, followed by the name-value arguments sorted by name.
func (d Directive) String() string {
	if d.Tool == "" && d.Directive == "" {
		return "(invalid directive)"
	}
	res := "//" + d.Tool + ":" + d.Directive
	if len(d.Args) > 0 {
		res += " " + strings.Join(d.Args, " ")
	}
	if len(d.NameValue) > 0 {
		names := make([]string, 0, len(d.NameValue))
		for name := range d.NameValue {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			res += " " + name + "=" + d.NameValue[name]
		}
	}
	return res
}

// Parse parses the given comment string and returns any [Directive] inside
// it, in addition to whether such a directive was found. Directives must
// not have whitespace as their first character, so ordinary comments are
// never directives.
func Parse(comment string) (Directive, bool) {
	source := comment
	comment = strings.TrimPrefix(comment, "//")
	rs := []rune(comment)
	if len(rs) == 0 || unicode.IsSpace(rs[0]) {
		return Directive{}, false
	}
	before, after, found := strings.Cut(comment, ":")
	if !found {
		return Directive{}, false
	}
	args, err := shellwords.Parse(after)
	if err != nil || len(args) == 0 {
		return Directive{}, false
	}
	d := Directive{
		Source:    source,
		Tool:      before,
		Directive: args[0],
		Args:      []string{},
		NameValue: map[string]string{},
	}
	for _, arg := range args[1:] {
		name, value, found := strings.Cut(arg, "=")
		if found {
			d.NameValue[name] = value
		} else {
			d.Args = append(d.Args, arg)
		}
	}
	return d, true
}

// ParseComment parses the given AST comment and returns any [Directive]
// inside it, in addition to whether such a directive was found. It is a
// helper function that calls [Parse] on the text of the comment.
func ParseComment(comment *ast.Comment) (Directive, bool) {
	return Parse(comment.Text)
}

// ParseCommentGroup parses the given AST comment group and returns a slice
// of all [Directive]s inside it. It is a helper function that calls
// [ParseComment] on each comment in the group. A nil group returns nil.
func ParseCommentGroup(group *ast.CommentGroup) []Directive {
	if group == nil {
		return nil
	}
	var res []Directive
	for _, comment := range group.List {
		if dir, has := ParseComment(comment); has {
			res = append(res, dir)
		}
	}
	return res
}
