// Copyright (c) 2026, The Stringenum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stringenum

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

// metal is a hand-written mock with fixed method behavior, so the
// helpers can be pinned without depending on generated code.
type metal int64

var metalFlags = map[metal]bool{2: true, 6: true}
var metalBitNames = map[metal]string{2: "Tin", 6: "metalBit", 4: "four"}

func (m metal) String() string         { return "alloy" }
func (m metal) Int64() int64           { return int64(m) }
func (m metal) Desc() string           { return "alloyDesc" }
func (m metal) Values() []Enum         { return nil }
func (m metal) HasFlag(f BitFlag) bool { return metalFlags[f.(metal)] }
func (m metal) BitIndexString() string { return metalBitNames[m] }

func (m *metal) SetInt64(i int64)              { *m = metal(i) }
func (m *metal) SetFlag(on bool, f ...BitFlag) { SetFlag((*int64)(m), on, f...) }

func (m *metal) SetString(s string) error {
	if s == "Silver" {
		*m = 9
		return nil
	}
	return errors.New("unknown metal")
}

func (m *metal) SetStringOr(s string) error {
	if s == "Lead" {
		*m = 6
		return nil
	}
	return errors.New("unknown metal")
}

func TestString(t *testing.T) {
	m := map[metal]string{2: "Tin"}

	assert.Equal(t, "Tin", String(2, m))
	assert.Equal(t, "6", String(6, m))

	assert.Equal(t, "Tin", StringExtended[metal, metal](2, m))
	assert.Equal(t, "alloy", StringExtended[metal, metal](6, m))

	assert.Equal(t, "Tin", BitIndexStringExtended[metal, metal](2, m))
	assert.Equal(t, "metalBit", BitIndexStringExtended[metal, metal](6, m))

	assert.Equal(t, "", BitFlagString(0, []metal{}))
	assert.Equal(t, "", BitFlagString(0, []metal{4}))
	assert.Equal(t, "", BitFlagString(0, []metal{4, 1, 33}))
	assert.Equal(t, "metalBit", BitFlagString(0, []metal{6}))
	assert.Equal(t, "Tin", BitFlagString(0, []metal{2}))
	assert.Equal(t, "metalBit|Tin", BitFlagString(0, []metal{6, 2}))
	assert.Equal(t, "Tin|metalBit", BitFlagString(0, []metal{2, 6}))
	assert.Equal(t, "Tin|metalBit", BitFlagString(0, []metal{2, 4, 6}))

	assert.Equal(t, "", BitFlagStringExtended(0, []metal{}, []metal{}))
	assert.Equal(t, "", BitFlagStringExtended(0, []metal{4}, []metal{1, 4}))
	assert.Equal(t, "Tin", BitFlagStringExtended(0, []metal{2}, []metal{4}))
	assert.Equal(t, "metalBit", BitFlagStringExtended(0, []metal{}, []metal{6}))
	assert.Equal(t, "Tin|metalBit", BitFlagStringExtended(0, []metal{6}, []metal{2}))
	assert.Equal(t, "metalBit|Tin|metalBit", BitFlagStringExtended(0, []metal{6}, []metal{6, 2}))
	assert.Equal(t, "metalBit|Tin", BitFlagStringExtended(0, []metal{2, 4}, []metal{1, 6, 4}))
}

func TestSetString(t *testing.T) {
	valueMap := map[string]metal{"tin": 2}

	i := metal(0)
	assert.NoError(t, SetString(&i, "tin", valueMap, "Metals"))
	assert.Equal(t, metal(2), i)
	i = metal(1)
	err := SetString(&i, "Tin", valueMap, "Metals")
	if assert.Error(t, err) {
		assert.Equal(t, "Tin is not a valid value for type Metals", err.Error())
	}
	assert.Equal(t, metal(1), i)
	err = SetString(&i, "Silver", valueMap, "Metals")
	if assert.Error(t, err) {
		assert.Equal(t, "Silver is not a valid value for type Metals", err.Error())
	}
	assert.Equal(t, metal(1), i)

	assert.NoError(t, SetStringLower(&i, "tin", valueMap, "Metals"))
	assert.Equal(t, metal(2), i)
	i = metal(1)
	assert.NoError(t, SetStringLower(&i, "Tin", valueMap, "Metals"))
	assert.Equal(t, metal(2), i)
	i = metal(1)
	err = SetStringLower(&i, "Silver", valueMap, "Metals")
	if assert.Error(t, err) {
		assert.Equal(t, "Silver is not a valid value for type Metals", err.Error())
	}
	assert.Equal(t, metal(1), i)

	assert.NoError(t, SetStringExtended(&i, &i, "tin", valueMap))
	assert.Equal(t, metal(2), i)
	i = metal(1)
	assert.NoError(t, SetStringExtended(&i, &i, "Silver", valueMap))
	assert.Equal(t, metal(9), i)
	i = metal(1)
	err = SetStringExtended(&i, &i, "Tin", valueMap)
	if assert.Error(t, err) {
		assert.Equal(t, "unknown metal", err.Error())
	}
	assert.Equal(t, metal(1), i)

	assert.NoError(t, SetStringLowerExtended(&i, &i, "tin", valueMap))
	assert.Equal(t, metal(2), i)
	i = metal(1)
	assert.NoError(t, SetStringLowerExtended(&i, &i, "Tin", valueMap))
	assert.Equal(t, metal(2), i)
	i = metal(1)
	assert.NoError(t, SetStringLowerExtended(&i, &i, "Silver", valueMap))
	assert.Equal(t, metal(9), i)
	i = metal(1)
	err = SetStringLowerExtended(&i, &i, "Iron", valueMap)
	if assert.Error(t, err) {
		assert.Equal(t, "unknown metal", err.Error())
	}
	assert.Equal(t, metal(1), i)
}

func TestSetStringOr(t *testing.T) {
	valueMap := map[string]metal{"tin": 2, "Silver": 6}

	i := metal(0)
	assert.NoError(t, SetStringOr(&i, "tin", valueMap, "Metals"))
	assert.Equal(t, metal(4), i)
	assert.NoError(t, SetStringOr(&i, "Silver", valueMap, "Metals"))
	assert.Equal(t, metal(68), i)
	i = metal(0)
	assert.NoError(t, SetStringOr(&i, "tin|Silver", valueMap, "Metals"))
	assert.Equal(t, metal(68), i)
	assert.Error(t, SetStringOr(&i, "Tin", valueMap, "Metals"))
	assert.Error(t, SetStringOr(&i, "Tin|Silver", valueMap, "Metals"))
	assert.Error(t, SetStringOr(&i, "tin|Silver|Lead", valueMap, "Metals"))

	i = metal(0)
	assert.NoError(t, SetStringOrLower(&i, "tin", valueMap, "Metals"))
	assert.Equal(t, metal(4), i)
	assert.NoError(t, SetStringOrLower(&i, "Silver", valueMap, "Metals"))
	assert.Equal(t, metal(68), i)
	i = metal(0)
	assert.NoError(t, SetStringOrLower(&i, "tin|Silver", valueMap, "Metals"))
	assert.Equal(t, metal(68), i)
	i = metal(0)
	assert.NoError(t, SetStringOrLower(&i, "Tin", valueMap, "Metals"))
	assert.Equal(t, metal(4), i)
	i = metal(0)
	assert.NoError(t, SetStringOrLower(&i, "Tin|Silver", valueMap, "Metals"))
	assert.Equal(t, metal(68), i)
	assert.Error(t, SetStringOrLower(&i, "iron", valueMap, "Metals"))
	assert.Error(t, SetStringOrLower(&i, "tin|Silver|Lead", valueMap, "Metals"))

	i = metal(0)
	assert.NoError(t, SetStringOrExtended(&i, &i, "tin", valueMap))
	assert.Equal(t, metal(4), i)
	assert.NoError(t, SetStringOrExtended(&i, &i, "Silver", valueMap))
	assert.Equal(t, metal(68), i)
	i = metal(0)
	assert.NoError(t, SetStringOrExtended(&i, &i, "tin|Silver", valueMap))
	assert.Equal(t, metal(68), i)
	assert.NoError(t, SetStringOrExtended(&i, &i, "Lead", valueMap))
	assert.Equal(t, metal(6), i)
	assert.NoError(t, SetStringOrExtended(&i, &i, "Silver|Lead", valueMap))
	assert.Equal(t, metal(6), i)
	assert.Error(t, SetStringOrExtended(&i, &i, "Tin", valueMap))
	assert.Error(t, SetStringOrExtended(&i, &i, "Tin|Silver", valueMap))
	assert.Error(t, SetStringOrExtended(&i, &i, "tin|Silver|Iron", valueMap))

	i = metal(0)
	assert.NoError(t, SetStringOrLowerExtended(&i, &i, "tin", valueMap))
	assert.Equal(t, metal(4), i)
	assert.NoError(t, SetStringOrLowerExtended(&i, &i, "Silver", valueMap))
	assert.Equal(t, metal(68), i)
	i = metal(0)
	assert.NoError(t, SetStringOrLowerExtended(&i, &i, "tin|Silver", valueMap))
	assert.Equal(t, metal(68), i)
	assert.NoError(t, SetStringOrLowerExtended(&i, &i, "Lead", valueMap))
	assert.Equal(t, metal(6), i)
	assert.NoError(t, SetStringOrLowerExtended(&i, &i, "Silver|Lead", valueMap))
	assert.Equal(t, metal(6), i)
	i = metal(0)
	assert.NoError(t, SetStringOrLowerExtended(&i, &i, "Tin", valueMap))
	assert.Equal(t, metal(4), i)
	assert.NoError(t, SetStringOrLowerExtended(&i, &i, "Tin|Silver", valueMap))
	assert.Equal(t, metal(68), i)
	assert.Error(t, SetStringOrLowerExtended(&i, &i, "tin|Silver|Iron", valueMap))
}

func TestDesc(t *testing.T) {
	descMap := map[metal]string{2: "A soft metal"}

	assert.Equal(t, "A soft metal", Desc(metal(2), descMap))
	assert.Equal(t, "alloy", Desc(metal(6), descMap))

	assert.Equal(t, "A soft metal", DescExtended[metal, metal](metal(2), descMap))
	assert.Equal(t, "alloyDesc", DescExtended[metal, metal](metal(6), descMap))
}

func TestValues(t *testing.T) {
	assert.Equal(t, []metal{5, 2, 3, 1}, ValuesGlobalExtended([]metal{3, 1}, []metal{5, 2}))
	assert.Equal(t, []Enum{metal(8), metal(3)}, Values([]metal{8, 3}))
	assert.Equal(t, []Enum{metal(8), metal(3), metal(9), metal(2)}, ValuesExtended([]metal{9, 2}, []metal{8, 3}))
}

func TestHasFlag(t *testing.T) {
	i := metal(36)
	pi := (*int64)(&i)

	assert.True(t, HasFlag(pi, metal(2)))
	assert.True(t, HasFlag(pi, metal(5)))

	assert.False(t, HasFlag(pi, metal(0)))
	assert.False(t, HasFlag(pi, metal(1)))
	assert.False(t, HasFlag(pi, metal(4)))
}

func TestSetFlag(t *testing.T) {
	i := metal(0)
	pi := (*int64)(&i)

	SetFlag(pi, true, metal(3))
	assert.Equal(t, metal(8), i)

	SetFlag(pi, true, metal(1), metal(6))
	assert.Equal(t, metal(74), i)

	SetFlag(pi, false, metal(1), metal(6))
	assert.Equal(t, metal(8), i)

	SetFlag(pi, false, metal(3))
	assert.Equal(t, metal(0), i)
}

func TestUnmarshal(t *testing.T) {
	i := metal(0)

	assert.NoError(t, UnmarshalText(&i, []byte("Silver"), "Metals"))
	assert.Equal(t, metal(9), i)
	i = 1
	assert.NoError(t, UnmarshalText(&i, []byte("Tin"), "Metals"))
	assert.Equal(t, metal(1), i)

	assert.NoError(t, UnmarshalJSON(&i, []byte(`"Silver"`), "Metals"))
	assert.Equal(t, metal(9), i)
	i = 1
	assert.NoError(t, UnmarshalJSON(&i, []byte(`"Tin"`), "Metals"))
	assert.Equal(t, metal(1), i)
	assert.Error(t, UnmarshalJSON(&i, []byte(`42`), "Metals"))
	assert.Equal(t, metal(1), i)

	assert.NoError(t, UnmarshalYAML(&i, &yaml.Node{Kind: yaml.ScalarNode, Value: "Silver"}, "Metals"))
	assert.Equal(t, metal(9), i)
	i = 1
	assert.NoError(t, UnmarshalYAML(&i, &yaml.Node{Kind: yaml.ScalarNode, Value: "Tin"}, "Metals"))
	assert.Equal(t, metal(1), i)
	assert.Error(t, UnmarshalYAML(&i, &yaml.Node{Kind: yaml.SequenceNode}, "Metals"))
	assert.Equal(t, metal(1), i)

	assert.NoError(t, Scan(&i, []byte("Silver"), "Metals"))
	assert.Equal(t, metal(9), i)
	i = 1
	assert.NoError(t, Scan(&i, "Silver", "Metals"))
	assert.Equal(t, metal(9), i)
	i = 1
	assert.NoError(t, Scan(&i, nil, "Metals"))
	assert.Equal(t, metal(1), i)
	assert.Error(t, Scan(&i, metal(0), "Metals"))
	assert.Equal(t, metal(1), i)
	assert.Error(t, Scan(&i, 78, "Metals"))
	assert.Equal(t, metal(1), i)
}
