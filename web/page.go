// Copyright 2023 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"slices"
	"strconv"

	"github.com/UNO-SOFT/sheetview/table"
)

//go:generate qtc -skipLineComments -file=templates.qtpl

// IndexData is rendered by the Index template.
type IndexData struct {
	// View is nil until a spreadsheet is uploaded.
	View     *table.View
	Notice   string
	FileName string
}

// Field is a hidden form field.
type Field struct{ Name, Value string }

// HasRows reports whether there is anything to show in the table.
func (d *IndexData) HasRows() bool { return d.View != nil && d.View.TotalRows != 0 }

func (d *IndexData) href(s table.State) string { return "?" + s.Encode() }

// SortHref links to the view with the sort of the column toggled.
func (d *IndexData) SortHref(accessor string) string {
	return d.href(d.View.State.ToggleSort(accessor))
}

// SortMark is the sort indicator of the column header.
func (d *IndexData) SortMark(accessor string) string {
	switch sorted, desc := d.View.State.SortState(accessor); {
	case !sorted:
		return "⇅"
	case desc:
		return "▼"
	default:
		return "▲"
	}
}

// PageHref links to page index i.
func (d *IndexData) PageHref(i int) string {
	return d.href(d.View.State.GotoPage(i, d.View.PageCount))
}

// SizeHref links to the view with n rows per page.
func (d *IndexData) SizeHref(n int) string { return d.href(d.View.State.SetPageSize(n)) }

// FontHref links to the view with font size f.
func (d *IndexData) FontHref(f table.FontSize) string { return d.href(d.View.State.SetFont(f)) }

// PageFields are the state fields the go-to-page form carries along.
func (d *IndexData) PageFields() []Field {
	q := d.View.State.Values()
	q.Del(table.ParamPage)
	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	fields := make([]Field, len(keys))
	for i, k := range keys {
		fields[i] = Field{Name: k, Value: q.Get(k)}
	}
	return fields
}

// PageSizes are the page size choices.
func (d *IndexData) PageSizes() []int { return table.PageSizes }

// FontSizes are the font size choices.
func (d *IndexData) FontSizes() []table.FontSize { return table.FontSizes }

// PageNumber is the 1-based number of the current page.
func (d *IndexData) PageNumber() string { return strconv.Itoa(d.View.State.PageIndex + 1) }

const style = `body{font-family:sans-serif;margin:1.25rem;background:#111;color:#eee}` +
	`form.upload{text-align:center;margin:1.25rem auto}` +
	`form.upload input{font-weight:bold;font-size:1.1rem;color:#ea580c;background:#000;border:1px solid #ccc;border-radius:.5rem;padding:.5rem}` +
	`.notice{text-align:center;color:#fca5a5}` +
	`.empty{text-align:center;font-size:1.5rem;color:#ea580c}` +
	`table{width:100%;margin-top:1.25rem;border-collapse:collapse;border:1px solid #ccc}` +
	`thead{background:#ea580c}thead a{color:#000;text-decoration:none}` +
	`th,td{padding:.75rem;text-align:center}tr{border-bottom:1px solid #444}` +
	`tbody.font-md{font-size:1rem}tbody.font-xl{font-size:1.25rem}tbody.font-2xl{font-size:1.5rem}` +
	`nav.pager{display:flex;flex-wrap:wrap;gap:.5rem;justify-content:space-between;margin-top:1.25rem}` +
	`nav.pager a,nav.pager span.off{padding:.25rem .75rem;border-radius:.375rem}` +
	`nav.pager a{background:#ea580c;color:#fff;text-decoration:none}nav.pager span.off{background:#ccc;color:#666}` +
	`nav.pager input,nav.pager select{background:#ea580c;color:#000;font-weight:bold;border:1px solid #fff;border-radius:.375rem}`
