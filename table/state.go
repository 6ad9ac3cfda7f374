// Copyright 2023 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package table holds the view state of a displayed Dataset:
// sorting, pagination and font size.
package table

import (
	"net/url"
	"slices"
	"strconv"
)

// FontSize is the body text size of the table.
type FontSize string

const (
	FontMedium  FontSize = "md"
	FontLarge   FontSize = "xl"
	FontXLarge  FontSize = "2xl"
	DefaultFont          = FontMedium

	DefaultPageSize = 20
)

var (
	// PageSizes are the selectable page sizes.
	PageSizes = []int{10, 20, 30, 40, 50}
	// FontSizes are the selectable font sizes.
	FontSizes = []FontSize{FontMedium, FontLarge, FontXLarge}
)

// SortKey orders the rows by one column.
type SortKey struct {
	Accessor string
	Desc     bool
}

// State is the display state of one table. Methods return a modified copy.
type State struct {
	// Sort is nil when the rows are in sheet order.
	Sort      *SortKey
	Font      FontSize
	PageIndex int
	PageSize  int
}

// NewState returns the initial state: first page, 20 rows, unsorted, medium font.
func NewState() State {
	return State{PageSize: DefaultPageSize, Font: DefaultFont}
}

// ToggleSort cycles the sort of the column: unsorted, ascending, descending, unsorted.
// Toggling another column than the sorted one starts it ascending.
// The view goes back to the first page.
func (s State) ToggleSort(accessor string) State {
	s.PageIndex = 0
	switch {
	case s.Sort == nil || s.Sort.Accessor != accessor:
		s.Sort = &SortKey{Accessor: accessor}
	case !s.Sort.Desc:
		s.Sort = &SortKey{Accessor: accessor, Desc: true}
	default:
		s.Sort = nil
	}
	return s
}

// SortState returns the sort direction of the column, if it is the sorted one.
func (s State) SortState(accessor string) (sorted, desc bool) {
	if s.Sort == nil || s.Sort.Accessor != accessor {
		return false, false
	}
	return true, s.Sort.Desc
}

// GotoPage moves to page index i, clamped to [0, pageCount-1].
func (s State) GotoPage(i, pageCount int) State {
	s.PageIndex = max(0, min(i, pageCount-1))
	return s
}

// SetPageSize changes the page size, keeping the first row of the current page on screen.
// Sizes not in PageSizes are ignored.
func (s State) SetPageSize(size int) State {
	if !slices.Contains(PageSizes, size) {
		return s
	}
	top := s.PageIndex * s.pageSize()
	s.PageSize = size
	s.PageIndex = top / size
	return s
}

// SetFont changes the font size. Sizes not in FontSizes are ignored.
func (s State) SetFont(f FontSize) State {
	if slices.Contains(FontSizes, f) {
		s.Font = f
	}
	return s
}

func (s State) pageSize() int {
	if s.PageSize <= 0 {
		return DefaultPageSize
	}
	return s.PageSize
}

// PageCount is the number of pages needed for n rows.
func (s State) PageCount(n int) int {
	ps := s.pageSize()
	return (n + ps - 1) / ps
}

// Query parameter names.
const (
	ParamPage = "page"
	ParamSize = "size"
	ParamSort = "sort"
	ParamDesc = "desc"
	ParamFont = "font"
)

// Values encodes the state as query parameters. The page number is 1-based.
func (s State) Values() url.Values {
	q := make(url.Values, 5)
	q.Set(ParamPage, strconv.Itoa(s.PageIndex+1))
	q.Set(ParamSize, strconv.Itoa(s.pageSize()))
	q.Set(ParamFont, string(s.font()))
	if s.Sort != nil {
		q.Set(ParamSort, s.Sort.Accessor)
		if s.Sort.Desc {
			q.Set(ParamDesc, "1")
		}
	}
	return q
}

// Encode returns the URL query form of the state.
func (s State) Encode() string { return s.Values().Encode() }

func (s State) font() FontSize {
	if s.Font == "" {
		return DefaultFont
	}
	return s.Font
}

// ParseState reads the state from query parameters.
// An empty or invalid page number means the first page; unknown sizes fall back to the defaults.
func ParseState(q url.Values) State {
	s := NewState()
	if n, err := strconv.Atoi(q.Get(ParamSize)); err == nil && slices.Contains(PageSizes, n) {
		s.PageSize = n
	}
	s = s.SetFont(FontSize(q.Get(ParamFont)))
	if n, err := strconv.Atoi(q.Get(ParamPage)); err == nil && n > 0 {
		s.PageIndex = n - 1
	}
	if q.Has(ParamSort) {
		s.Sort = &SortKey{Accessor: q.Get(ParamSort), Desc: q.Get(ParamDesc) == "1"}
	}
	return s
}
