// Copyright (c) 2026, The Stringenum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stringenum provides common interfaces for enums with string
// representations, and the runtime helper functions that code generated
// by the stringenum tool delegates to.
package stringenum

import "fmt"

// Enum is the interface that all enum types satisfy.
// Enum types must be convertible to strings and int64s,
// must be able to return a description of their value,
// and must be able to return all possible enum values.
type Enum interface {
	fmt.Stringer

	// Int64 returns the enum value as an int64.
	Int64() int64

	// Desc returns the description of the enum value.
	Desc() string

	// Values returns all possible values this
	// enum type has. This slice will be in the
	// same order as those returned by Strings.
	Values() []Enum
}

// EnumSetter is an expanded interface that all pointers
// to enum types satisfy. Pointers to enum types must
// satisfy all of the methods of [Enum], and must also
// be settable from strings and int64s.
type EnumSetter interface {
	Enum

	// SetString sets the enum value from its
	// string representation, and returns an
	// error if the string is invalid.
	SetString(s string) error

	// SetInt64 sets the enum value from an int64.
	SetInt64(i int64)
}

// BitFlag is the interface that all bit flag enum types
// satisfy. Bit flag enum types support all of the operations
// that standard enums do, and additionally can check if they
// have a given bit flag.
type BitFlag interface {
	Enum

	// BitIndexString returns the string representation
	// of the bit flag when it is used as a bit index,
	// as opposed to a set of bit flags.
	BitIndexString() string

	// HasFlag returns whether these flags
	// have the given flag set.
	HasFlag(f BitFlag) bool
}

// BitFlagSetter is an expanded interface that all pointers
// to bit flag enum types satisfy. Pointers to bit flag
// enum types must satisfy all of the methods of [EnumSetter]
// and [BitFlag], and must also be able to set given bit flags.
type BitFlagSetter interface {
	EnumSetter
	BitFlag

	// SetFlag sets the value of the given
	// flags in these flags to the given value.
	SetFlag(on bool, f ...BitFlag)

	// SetStringOr sets the bit flags from their string
	// representation while preserving any bit flags
	// already set, and returns an error if the string
	// is invalid.
	SetStringOr(s string) error
}

// Constraint is the generic type constraint that all enum types satisfy.
type Constraint interface {
	Enum
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// BitFlagConstraint is the generic type constraint that all bit flag
// enum types satisfy. Bit flag enum types must have an int64 underlying
// type so that flag operations are well defined for all 64 bit indices.
type BitFlagConstraint interface {
	BitFlag
	~int64
}
