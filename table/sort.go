// Copyright 2023 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"cmp"
	"math"
	"regexp"
	"slices"
	"strings"

	"github.com/UNO-SOFT/sheetview"
)

var rDigits = regexp.MustCompile(`[0-9]+`)

// Compare orders two cells alphanumerically.
//
// Both cells are taken as text (numbers in display form; booleans and
// undefined cells as empty text) and split into digit runs and the text
// between them. Runs are compared pairwise: two digit runs by numeric value,
// two text runs bytewise, and text sorts before a digit run.
// If one side runs out first, the shorter one is smaller.
func Compare(a, b sheetview.Value) int {
	as, bs := chunks(sortText(a)), chunks(sortText(b))
	for len(as) != 0 && len(bs) != 0 {
		x, y := as[0], bs[0]
		as, bs = as[1:], bs[1:]
		xd, yd := isDigits(x), isDigits(y)
		switch {
		case !xd && !yd:
			if c := strings.Compare(x, y); c != 0 {
				return c
			}
		case !xd:
			return -1
		case !yd:
			return 1
		default:
			if c := compareDigits(x, y); c != 0 {
				return c
			}
		}
	}
	return cmp.Compare(len(as), len(bs))
}

func sortText(v sheetview.Value) string {
	switch v.Kind() {
	case sheetview.String:
		s, _ := v.Text()
		return s
	case sheetview.Number:
		if f, _ := v.Float(); math.IsNaN(f) || math.IsInf(f, 0) {
			return ""
		}
		return v.String()
	default:
		return ""
	}
}

// chunks splits s into digit runs and the non-empty text between them.
func chunks(s string) []string {
	var parts []string
	last := 0
	for _, loc := range rDigits.FindAllStringIndex(s, -1) {
		if loc[0] > last {
			parts = append(parts, s[last:loc[0]])
		}
		parts = append(parts, s[loc[0]:loc[1]])
		last = loc[1]
	}
	if last < len(s) {
		parts = append(parts, s[last:])
	}
	return parts
}

func isDigits(s string) bool {
	return s != "" && strings.Trim(s, "0123456789") == ""
}

// compareDigits compares two digit runs by value, whatever their length.
func compareDigits(x, y string) int {
	x, y = strings.TrimLeft(x, "0"), strings.TrimLeft(y, "0")
	if c := cmp.Compare(len(x), len(y)); c != 0 {
		return c
	}
	return strings.Compare(x, y)
}

// SortRows returns the rows ordered by the column of key.
// Equal rows keep their sheet order when ascending and are reversed when descending.
func SortRows(rows []sheetview.Row, key SortKey) []sheetview.Row {
	idx := make([]int, len(rows))
	for i := range idx {
		idx[i] = i
	}
	slices.SortFunc(idx, func(i, j int) int {
		c := Compare(rows[i].Get(key.Accessor), rows[j].Get(key.Accessor))
		if c == 0 {
			c = cmp.Compare(i, j)
		}
		if key.Desc {
			return -c
		}
		return c
	})
	sorted := make([]sheetview.Row, len(rows))
	for k, i := range idx {
		sorted[k] = rows[i]
	}
	return sorted
}
