// Copyright (c) 2026, The Stringenum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enumgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jackson-nestelroad/stringenum/gogen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	cfg := &Config{}
	cfg.Defaults()
	cfg.Dir = "./testdata"
	out := filepath.Join(t.TempDir(), "stringenum_gen.go")
	cfg.Output = out
	require.NoError(t, Generate(cfg))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	want, err := os.ReadFile(filepath.Join("testdata", "stringenum_gen.golden"))
	require.NoError(t, err)
	// The golden file goes through the same formatting as the
	// generated output so the comparison is not sensitive to
	// gofmt and goimports details.
	want, err = gogen.Format(out, want)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		dir  string
		want string
	}{
		{"badlabel", "has no label directive"},
		{"emptylabel", "must have a label argument"},
		{"doublelabel", "has multiple label directives"},
		{"badvar", "not valid on a var declaration"},
		{"duplicate", "is already used by constant"},
		{"badtype", "must have an integer underlying type"},
		{"badflag", "must have an underlying type of int64"},
		{"badtext", "must implement SetString(string) error"},
		{"crosspkg", "can only extend enum types in the same package"},
		{"novalues", "no constants defined for type Empty"},
		{"badoption", "unknown option"},
	}
	for _, test := range tests {
		t.Run(test.dir, func(t *testing.T) {
			cfg := &Config{}
			cfg.Defaults()
			cfg.Dir = "./" + filepath.Join("testdata", test.dir)
			cfg.Output = filepath.Join(t.TempDir(), "stringenum_gen.go")
			err := Generate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.want)
		})
	}
}
