// Copyright (c) 2026, The Stringenum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stringenum

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// String returns the string representation of the given
// enum value with the given string map. If the value is not
// in the map, it returns the formatted int64 representation.
func String[T Constraint](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(i.Int64(), 10)
}

// StringExtended returns the string representation of the given enum value
// with the given string map, with the enum type extending the other given
// enum type. If the value is not in the map, it returns the string
// representation of the value in the base enum type.
func StringExtended[T, E Constraint](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return E(i).String()
}

// BitIndexStringExtended returns the bit index string representation of the
// given bit flag value with the given string map, with the bit flag type
// extending the other given bit flag type. If the value is not in the map,
// it returns the bit index string representation of the value in the base
// bit flag type.
func BitIndexStringExtended[T, E BitFlagConstraint](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return E(i).BitIndexString()
}

// BitFlagString returns the string representation of the given bit flag
// value, composed of the bit index strings of all of the given values
// that it has set, joined by |.
func BitFlagString[T BitFlagConstraint](i T, values []T) string {
	str := ""
	for _, ie := range values {
		if i.HasFlag(ie) {
			ies := ie.BitIndexString()
			if str == "" {
				str = ies
			} else {
				str += "|" + ies
			}
		}
	}
	return str
}

// BitFlagStringExtended returns the string representation of the given bit
// flag value, with the bit flag type extending the other given bit flag type.
// The bit index strings of the extended values come before those of the
// values of the extending type.
func BitFlagStringExtended[T, E BitFlagConstraint](i T, values []T, extendedValues []E) string {
	str := ""
	for _, ie := range extendedValues {
		if i.HasFlag(ie) {
			ies := ie.BitIndexString()
			if str == "" {
				str = ies
			} else {
				str += "|" + ies
			}
		}
	}
	for _, ie := range values {
		if i.HasFlag(ie) {
			ies := ie.BitIndexString()
			if str == "" {
				str = ies
			} else {
				str += "|" + ies
			}
		}
	}
	return str
}

// SetString sets the given enum value from its string representation,
// using the given string-to-value map. It returns an error if the
// given string is not in the map, using the given type name.
func SetString[T Constraint](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// SetStringLower sets the given enum value from its string representation,
// using the given string-to-value map, falling back on the lowercase version
// of the given string. It returns an error if neither version of the string
// is in the map, using the given type name.
func SetStringLower[T Constraint](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := valueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// SetStringExtended sets the given enum value from its string representation,
// using the given string-to-value map, with the enum type extending the other
// given enum type. If the string is not in the map, it falls back on setting
// the value through the base enum type.
func SetStringExtended[T Constraint, P EnumSetter](i *T, p P, s string, valueMap map[string]T) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	return p.SetString(s)
}

// SetStringLowerExtended sets the given enum value from its string
// representation, using the given string-to-value map, falling back first on
// the lowercase version of the given string and then on setting the value
// through the base enum type.
func SetStringLowerExtended[T Constraint, P EnumSetter](i *T, p P, s string, valueMap map[string]T) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := valueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return p.SetString(s)
}

// SetStringOr sets the given bit flag value from its string representation,
// which is a sequence of flag names separated by |, while preserving any
// flags already set. It returns an error if any flag name is not in the
// given string-to-value map, using the given type name.
func SetStringOr[T BitFlagConstraint](i *T, s string, valueMap map[string]T, typeName string) error {
	flags := strings.Split(s, "|")
	for _, flag := range flags {
		if flag == "" {
			continue
		}
		val, ok := valueMap[flag]
		if !ok {
			return fmt.Errorf("%s is not a valid value for type %s", flag, typeName)
		}
		*i |= 1 << val
	}
	return nil
}

// SetStringOrLower sets the given bit flag value from its string
// representation while preserving any flags already set, falling back
// on the lowercase version of each flag name.
func SetStringOrLower[T BitFlagConstraint](i *T, s string, valueMap map[string]T, typeName string) error {
	flags := strings.Split(s, "|")
	for _, flag := range flags {
		if flag == "" {
			continue
		}
		val, ok := valueMap[flag]
		if !ok {
			val, ok = valueMap[strings.ToLower(flag)]
			if !ok {
				return fmt.Errorf("%s is not a valid value for type %s", flag, typeName)
			}
		}
		*i |= 1 << val
	}
	return nil
}

// SetStringOrExtended sets the given bit flag value from its string
// representation while preserving any flags already set, with the bit flag
// type extending the other given bit flag type. Flag names not in the map
// are set through the base bit flag type.
func SetStringOrExtended[T BitFlagConstraint, P BitFlagSetter](i *T, p P, s string, valueMap map[string]T) error {
	flags := strings.Split(s, "|")
	for _, flag := range flags {
		if flag == "" {
			continue
		}
		if val, ok := valueMap[flag]; ok {
			*i |= 1 << val
			continue
		}
		if err := p.SetStringOr(flag); err != nil {
			return err
		}
	}
	return nil
}

// SetStringOrLowerExtended sets the given bit flag value from its string
// representation while preserving any flags already set, falling back first
// on the lowercase version of each flag name and then on the base bit flag
// type.
func SetStringOrLowerExtended[T BitFlagConstraint, P BitFlagSetter](i *T, p P, s string, valueMap map[string]T) error {
	flags := strings.Split(s, "|")
	for _, flag := range flags {
		if flag == "" {
			continue
		}
		if val, ok := valueMap[flag]; ok {
			*i |= 1 << val
			continue
		}
		if val, ok := valueMap[strings.ToLower(flag)]; ok {
			*i |= 1 << val
			continue
		}
		if err := p.SetStringOr(flag); err != nil {
			return err
		}
	}
	return nil
}

// Desc returns the description of the given enum value with the given
// description map. If the value is not in the map, it returns the string
// representation of the value.
func Desc[T Constraint](i T, descMap map[T]string) string {
	if desc, ok := descMap[i]; ok {
		return desc
	}
	return i.String()
}

// DescExtended returns the description of the given enum value with the
// given description map, with the enum type extending the other given enum
// type. If the value is not in the map, it returns the description of the
// value in the base enum type.
func DescExtended[T, E Constraint](i T, descMap map[T]string) string {
	if desc, ok := descMap[i]; ok {
		return desc
	}
	return E(i).Desc()
}

// Values returns the given slice of enum values as a slice of [Enum].
func Values[T Constraint](values []T) []Enum {
	res := make([]Enum, len(values))
	for i, v := range values {
		res[i] = v
	}
	return res
}

// ValuesExtended returns the given slices of enum values as a single slice
// of [Enum], with the enum type extending the other given enum type. The
// extended values come before the values of the extending type.
func ValuesExtended[T, E Constraint](values []T, extendedValues []E) []Enum {
	res := make([]Enum, 0, len(extendedValues)+len(values))
	for _, v := range extendedValues {
		res = append(res, v)
	}
	for _, v := range values {
		res = append(res, v)
	}
	return res
}

// ValuesGlobalExtended returns a single slice with the given extended
// values followed by the given values, converted to the extending type.
// It is used for constructing global value lists of extending enum types.
func ValuesGlobalExtended[T, E Constraint](values []T, extendedValues []E) []T {
	res := make([]T, 0, len(extendedValues)+len(values))
	for _, v := range extendedValues {
		res = append(res, T(v))
	}
	res = append(res, values...)
	return res
}

// HasFlag returns whether the given flags have the given flag set.
// It is the implementation of the HasFlag method for bit flag types.
func HasFlag(i *int64, f BitFlag) bool {
	return atomic.LoadInt64(i)&(1<<uint32(f.Int64())) != 0
}

// SetFlag sets the value of the given flags in the given flags
// to the given value. It is the implementation of the SetFlag
// method for bit flag types.
func SetFlag(i *int64, on bool, f ...BitFlag) {
	var mask int64
	for _, v := range f {
		mask |= 1 << uint32(v.Int64())
	}
	in := atomic.LoadInt64(i)
	if on {
		in |= mask
	} else {
		in &^= mask
	}
	atomic.StoreInt64(i, in)
}

// UnmarshalText loads the given enum value from the given text.
// It logs any error instead of returning it to prevent one
// invalid enum value from tanking the loading of an entire object.
func UnmarshalText(i EnumSetter, text []byte, typeName string) error {
	if err := i.SetString(string(text)); err != nil {
		slog.Error("error loading "+typeName+" value from text", "err", err)
	}
	return nil
}

// UnmarshalJSON loads the given enum value from the given JSON string data.
// It returns an error if the data is not a JSON string; it logs an invalid
// enum value instead of returning it to prevent one invalid enum value from
// tanking the loading of an entire object.
func UnmarshalJSON(i EnumSetter, data []byte, typeName string) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%s should be a string, but got %s: %w", typeName, data, err)
	}
	if err := i.SetString(s); err != nil {
		slog.Error("error loading "+typeName+" value from JSON", "err", err)
	}
	return nil
}

// UnmarshalYAML loads the given enum value from the given YAML node.
// It returns an error if the node is not a string scalar; it logs an invalid
// enum value instead of returning it to prevent one invalid enum value from
// tanking the loading of an entire object.
func UnmarshalYAML(i EnumSetter, n *yaml.Node, typeName string) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return fmt.Errorf("%s should be a string: %w", typeName, err)
	}
	if err := i.SetString(s); err != nil {
		slog.Error("error loading "+typeName+" value from YAML", "err", err)
	}
	return nil
}

// Scan loads the given enum value from the given SQL value,
// which must be a string, byte slice, [fmt.Stringer], or nil.
func Scan(i EnumSetter, value any, typeName string) error {
	if value == nil {
		return nil
	}

	var str string
	switch v := value.(type) {
	case []byte:
		str = string(v)
	case string:
		str = v
	case fmt.Stringer:
		str = v.String()
	default:
		return fmt.Errorf("invalid value for type %s: %[2]T(%[2]v)", typeName, value)
	}

	return i.SetString(str)
}
