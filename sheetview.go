// Copyright 2020, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package sheetview turns the first sheet of a spreadsheet into a Dataset:
// an ordered list of columns taken from the header row and one Row per
// following sheet row, keyed by column name.
package sheetview

import (
	"errors"
	"io"
)

var (
	// ErrParse is returned when the input is not a decodable workbook.
	ErrParse = errors.New("not a readable spreadsheet")
	// ErrEmptySheet is returned when the first sheet has no rows at all.
	ErrEmptySheet = errors.New("first sheet is empty")
	// ErrTooManyRows is returned by a Sheet when the format's row limit is reached.
	ErrTooManyRows = errors.New("too many rows")
)

// Writer writes the spreadsheet consisting of the sheets created
// with NewSheet. The write finishes when Close is called.
//
// The writer SHOULD allow writing to separate sheets concurrently,
// and document if it does not provide this functionality.
type Writer interface {
	io.Closer
	NewSheet(name string, cols []Heading) (Sheet, error)
}

// Sheet should be Closed when finished.
type Sheet interface {
	io.Closer
	AppendRow(values ...any) error
}

// Style is a style for a column/row/cell.
type Style struct {
	// Format is the number format
	Format string
	// FontBold is true if the font is bold
	FontBold bool
}

// Heading contains the Name of a written column and the header's and column's style.
type Heading struct {
	Name           string
	Header, Column Style
}
