// Copyright (c) 2026, The Stringenum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testdata

import (
	"fmt"
	"strconv"
	"strings"
)

// Fruits is an enum containing fruits.
//
//stringenum:enum is-valid json sql yaml
type Fruits int32

const (
	// Apple is a round fruit.
	Apple Fruits = iota

	Orange

	// Blueberry is a small blue berry.
	//
	//stringenum:label Blueberry Sour-Berry
	Blueberry

	//stringenum:alias pear
	Pear
)

// Foods is an enum containing all foods, extending [Fruits].
//
//stringenum:enum
type Foods Fruits

const (
	Bread Foods = iota + 4
	Lettuce
)

// Days is a set of bit flags of the days of the week.
//
//stringenum:bitflag
type Days int64

const (
	// Sunday is the first day of the week.
	Sunday Days = iota

	Monday
	Tuesday
	Wednesday
)

// Temp is a temperature in degrees, stringified with a degree sign.
//
//stringenum:text json
type Temp float32

func (t Temp) String() string {
	return strconv.FormatFloat(float64(t), 'f', -1, 32) + "°"
}

func (t *Temp) SetString(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "°"), 32)
	if err != nil {
		return fmt.Errorf("%q is not a valid value for type Temp: %w", s, err)
	}
	*t = Temp(f)
	return nil
}
