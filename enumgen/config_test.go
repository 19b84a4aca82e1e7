// Copyright (c) 2026, The Stringenum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enumgen

import (
	"testing"

	"github.com/jackson-nestelroad/stringenum/directive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetFromDirective(t *testing.T) {
	tests := []struct {
		comment string
		want    func(c *Config)
		err     bool
	}{
		{comment: "//stringenum:enum", want: func(c *Config) {}},
		{comment: "//stringenum:enum is-valid json sql yaml", want: func(c *Config) {
			c.IsValid = true
			c.JSON = true
			c.SQL = true
			c.YAML = true
		}},
		{comment: "//stringenum:enum transform=snake trim-prefix=Button add-prefix=My", want: func(c *Config) {
			c.Transform = "snake"
			c.TrimPrefix = "Button"
			c.AddPrefix = "My"
		}},
		{comment: "//stringenum:enum accept-lower=false text=false line-comment", want: func(c *Config) {
			c.AcceptLower = false
			c.Text = false
			c.LineComment = true
		}},
		{comment: "//stringenum:enum frobnicate", err: true},
		{comment: "//stringenum:enum json=maybe", err: true},
		{comment: "//stringenum:enum transfrom=upper", err: true},
	}
	for _, test := range tests {
		t.Run(test.comment, func(t *testing.T) {
			d, has := directive.Parse(test.comment)
			require.True(t, has)
			c := &Config{}
			c.Defaults()
			err := c.SetFromDirective(d)
			if test.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			want := &Config{}
			want.Defaults()
			test.want(want)
			assert.Equal(t, want, c)
		})
	}
}
