// Copyright 2023 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package table

import "github.com/UNO-SOFT/sheetview"

// View is one rendered page of a Dataset.
type View struct {
	Columns   []sheetview.Column
	Rows      []sheetview.Row
	State     State
	PageCount int
	TotalRows int
}

// Apply sorts the rows of ds and cuts out the page selected by s.
// A sort on a column the dataset does not have is dropped,
// and the page index is clamped to the existing pages.
func Apply(ds sheetview.Dataset, s State) View {
	if s.PageSize <= 0 {
		s.PageSize = DefaultPageSize
	}
	s.Font = s.font()
	if s.Sort != nil && !hasColumn(ds.Columns, s.Sort.Accessor) {
		s.Sort = nil
	}
	rows := ds.Rows
	if s.Sort != nil {
		rows = SortRows(rows, *s.Sort)
	}
	pageCount := s.PageCount(len(rows))
	s = s.GotoPage(s.PageIndex, pageCount)
	start := min(s.PageIndex*s.PageSize, len(rows))
	end := min(start+s.PageSize, len(rows))
	return View{
		Columns:   ds.Columns,
		Rows:      rows[start:end:end],
		State:     s,
		PageCount: pageCount,
		TotalRows: len(rows),
	}
}

func hasColumn(cols []sheetview.Column, accessor string) bool {
	for _, c := range cols {
		if c.Accessor == accessor {
			return true
		}
	}
	return false
}

// CanPrevious reports whether there is a page before the current one.
func (v View) CanPrevious() bool { return v.State.PageIndex > 0 }

// CanNext reports whether there is a page after the current one.
func (v View) CanNext() bool { return v.State.PageIndex < v.PageCount-1 }

// LastPage is the index of the last page.
func (v View) LastPage() int { return max(0, v.PageCount-1) }
