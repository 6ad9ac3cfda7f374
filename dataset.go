// Copyright 2020, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetview

import (
	"bytes"
	"encoding/json"
	"slices"
	"time"
)

// Column describes one sheet column. Accessor is the key of the column in each Row,
// and always equals Header: columns with the same header share one key.
type Column struct {
	Header   string `json:"header"`
	Accessor string `json:"accessor"`
}

// Row maps accessors to cell values, keeping the column order.
type Row struct {
	values map[string]Value
	keys   []string
}

// Get returns the value under key, Undefined if there is none.
func (r Row) Get(key string) Value { return r.values[key] }

// Lookup returns the value under key and whether the row has that key.
func (r Row) Lookup(key string) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the keys in column order.
func (r Row) Keys() []string { return slices.Clone(r.keys) }

// Len returns the number of keys.
func (r Row) Len() int { return len(r.keys) }

// MarshalJSON encodes the row as an object with keys in column order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i != 0 {
			buf.WriteByte(',')
		}
		b, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
		buf.WriteByte(':')
		if b, err = r.values[k].MarshalJSON(); err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Dataset is the normalized content of a sheet.
type Dataset struct {
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Normalizer converts a decoded sheet into a Dataset.
type Normalizer struct {
	// Location the serial dates are shown in. Nil means UTC.
	Location *time.Location
	// Locale selects the short-date layout.
	Locale Locale
}

// Normalize takes the first row of grid as the header and the rest as data.
//
// Numbers between SerialDateMin and SerialDateMax (exclusive) are replaced by
// their date in the short form of the Locale; everything else is kept as is.
// A header-only grid gives a Dataset without rows; an empty grid gives ErrEmptySheet.
func (n Normalizer) Normalize(grid [][]Value) (Dataset, error) {
	if len(grid) == 0 {
		return Dataset{}, ErrEmptySheet
	}
	columns := make([]Column, len(grid[0]))
	keys := make([]string, 0, len(columns))
	for i, v := range grid[0] {
		h := v.String()
		columns[i] = Column{Header: h, Accessor: h}
		if !slices.Contains(keys, h) {
			keys = append(keys, h)
		}
	}

	rows := make([]Row, 0, len(grid)-1)
	for _, src := range grid[1:] {
		values := make(map[string]Value, len(keys))
		for i, c := range columns {
			var v Value
			if i < len(src) {
				v = n.coerce(src[i])
			}
			values[c.Accessor] = v
		}
		rows = append(rows, Row{keys: keys, values: values})
	}
	return Dataset{Columns: columns, Rows: rows}, nil
}

func (n Normalizer) coerce(v Value) Value {
	if f, ok := v.Float(); ok && IsSerialDate(f) {
		loc := n.Location
		if loc == nil {
			loc = time.UTC
		}
		return StringValue(n.Locale.FormatDate(SerialTime(f).In(loc)))
	}
	if s, ok := v.Text(); ok && IsDateString(s) {
		// Dates typed as text are kept as entered.
		return v
	}
	return v
}
