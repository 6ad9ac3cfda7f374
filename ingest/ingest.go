// Copyright 2023 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package ingest recognizes a workbook by its content and normalizes its first sheet.
package ingest

import (
	"bytes"
	"context"
	"fmt"

	"github.com/UNO-SOFT/sheetview"
	"github.com/UNO-SOFT/sheetview/xls"
	"github.com/UNO-SOFT/sheetview/xlsx"
)

// Format is a recognized workbook container.
type Format string

const (
	FormatUnknown Format = ""
	FormatXLSX    Format = "xlsx"
	FormatXLS     Format = "xls"
)

var (
	zipMagic = []byte("PK\x03\x04")
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// Sniff tells the workbook format from the leading bytes; the file name is not consulted.
func Sniff(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, zipMagic):
		return FormatXLSX
	case bytes.HasPrefix(data, oleMagic):
		return FormatXLS
	default:
		return FormatUnknown
	}
}

// Decode returns the raw cell grid of the first sheet of the workbook in data.
func Decode(ctx context.Context, data []byte) ([][]sheetview.Value, error) {
	switch Sniff(data) {
	case FormatXLSX:
		return xlsx.ReadFirstSheet(ctx, bytes.NewReader(data))
	case FormatXLS:
		return xls.ReadFirstSheet(ctx, data)
	default:
		return nil, fmt.Errorf("%w: unrecognized file signature", sheetview.ErrParse)
	}
}

// Normalize decodes data and normalizes its first sheet with n.
//
// It fails with sheetview.ErrParse if data is not a workbook,
// and with sheetview.ErrEmptySheet if the first sheet has no rows.
func Normalize(ctx context.Context, data []byte, n sheetview.Normalizer) (sheetview.Dataset, error) {
	grid, err := Decode(ctx, data)
	if err != nil {
		return sheetview.Dataset{}, err
	}
	return n.Normalize(grid)
}
