// Copyright 2020, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetview

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Kind is the type of a cell Value.
type Kind uint8

const (
	// Undefined marks a cell missing from the source row.
	Undefined Kind = iota
	String
	Number
	Bool
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "bool"
	default:
		return "undefined"
	}
}

// Value is a single cell value. The zero Value is Undefined.
type Value struct {
	s    string
	f    float64
	kind Kind
	b    bool
}

// StringValue returns a String Value.
func StringValue(s string) Value { return Value{kind: String, s: s} }

// NumberValue returns a Number Value.
func NumberValue(f float64) Value { return Value{kind: Number, f: f} }

// BoolValue returns a Bool Value.
func BoolValue(b bool) Value { return Value{kind: Bool, b: b} }

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsUndefined reports whether the cell was missing.
func (v Value) IsUndefined() bool { return v.kind == Undefined }

// Text returns the string content of a String Value.
func (v Value) Text() (string, bool) { return v.s, v.kind == String }

// Float returns the number of a Number Value.
func (v Value) Float() (float64, bool) { return v.f, v.kind == Number }

// Boolean returns the truth value of a Bool Value.
func (v Value) Boolean() (bool, bool) { return v.b, v.kind == Bool }

// String renders the value for display.
// Numbers use the shortest representation that round-trips; Undefined is empty.
func (v Value) String() string {
	switch v.kind {
	case String:
		return v.s
	case Number:
		return FormatNumber(v.f)
	case Bool:
		return strconv.FormatBool(v.b)
	default:
		return ""
	}
}

// FormatNumber formats f the way a browser prints a number:
// plain decimals, switching to exponent form only for very large or small magnitudes.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if a := math.Abs(f); a != 0 && (a >= 1e21 || a < 1e-6) {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		return strings.NewReplacer("e-0", "e-", "e+0", "e+").Replace(s)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// MarshalJSON encodes Undefined as null and the rest as their JSON counterparts.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case String:
		return json.Marshal(v.s)
	case Number:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return []byte("null"), nil
		}
		return json.Marshal(v.f)
	case Bool:
		return json.Marshal(v.b)
	default:
		return []byte("null"), nil
	}
}
