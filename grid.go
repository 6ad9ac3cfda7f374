// Copyright 2020, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetview

// TrimGrid cuts grid down to its used range: the empty rows above the first
// and below the last defined cell are dropped, and so are the columns left of
// the left-most defined cell. Empty rows inside the range are kept.
//
// The rows of the returned grid share memory with grid.
func TrimGrid(grid [][]Value) [][]Value {
	first, last, left := -1, -1, -1
	for i, row := range grid {
		for j, v := range row {
			if v.IsUndefined() {
				continue
			}
			if first < 0 {
				first = i
			}
			last = i
			if left < 0 || j < left {
				left = j
			}
			break
		}
	}
	if first < 0 {
		return nil
	}
	grid = grid[first : last+1]
	if left == 0 {
		return grid
	}
	out := make([][]Value, len(grid))
	for i, row := range grid {
		if len(row) > left {
			out[i] = row[left:]
		} else {
			out[i] = []Value{}
		}
	}
	return out
}
