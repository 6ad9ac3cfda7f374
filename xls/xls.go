// Copyright 2023 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package xls reads legacy BIFF (Excel 97-2003) workbooks.
package xls

import (
	"context"
	"fmt"
	"io"

	"github.com/yamitzky/xlrd-go/xlrd"

	"github.com/UNO-SOFT/sheetview"
)

// ReadFirstSheet decodes the first sheet of the BIFF workbook in data
// into a row-major grid of raw cell values.
//
// Number and date cells become sheetview.Number holding the stored serial,
// text cells sheetview.String as entered, boolean cells sheetview.Bool.
// Formula cells give their cached result. Empty, blank and error cells are Undefined.
// The grid is cut to the used range with sheetview.TrimGrid.
func ReadFirstSheet(ctx context.Context, data []byte) (grid [][]sheetview.Value, err error) {
	defer func() {
		if p := recover(); p != nil {
			grid, err = nil, fmt.Errorf("%w: %v", sheetview.ErrParse, p)
		}
	}()
	// The name is only used in messages when FileContents is given.
	bk, err := xlrd.OpenWorkbook("-", &xlrd.OpenWorkbookOptions{
		FileContents: data,
		Logfile:      io.Discard,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", sheetview.ErrParse, err)
	}
	if bk.NSheets == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", sheetview.ErrParse)
	}
	sheet, err := bk.SheetByIndex(0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", sheetview.ErrParse, err)
	}
	if sheet == nil {
		return nil, fmt.Errorf("%w: first sheet is unreadable", sheetview.ErrParse)
	}

	grid = make([][]sheetview.Value, 0, sheet.NRows)
	for rowx := 0; rowx < sheet.NRows; rowx++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row := make([]sheetview.Value, sheet.NCols)
		for colx := range row {
			row[colx] = cellValue(sheet.CellType(rowx, colx), sheet.CellValue(rowx, colx))
		}
		grid = append(grid, row)
	}
	return sheetview.TrimGrid(grid), nil
}

func cellValue(ctype int, v any) sheetview.Value {
	switch ctype {
	case xlrd.XL_CELL_NUMBER, xlrd.XL_CELL_DATE:
		if f, ok := toFloat(v); ok {
			return sheetview.NumberValue(f)
		}
	case xlrd.XL_CELL_TEXT:
		switch x := v.(type) {
		case string:
			return sheetview.StringValue(x)
		case nil:
			return sheetview.StringValue("")
		default:
			return sheetview.StringValue(fmt.Sprint(x))
		}
	case xlrd.XL_CELL_BOOLEAN:
		switch x := v.(type) {
		case bool:
			return sheetview.BoolValue(x)
		default:
			if f, ok := toFloat(x); ok {
				return sheetview.BoolValue(f != 0)
			}
		}
	}
	return sheetview.Value{}
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint8:
		return float64(x), true
	default:
		return 0, false
	}
}
