// Copyright 2020, 2023 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/UNO-SOFT/sheetview"
	"github.com/xuri/excelize/v2"
)

// ReadFirstSheet decodes the first sheet (in workbook order) of the OOXML workbook in r
// into a row-major grid of raw cell values.
//
// Number cells become sheetview.Number, boolean cells sheetview.Bool, empty cells Undefined;
// formula cells give their cached result. The grid is cut to the used range
// of the sheet with sheetview.TrimGrid, so it starts at the first used row and column.
func ReadFirstSheet(ctx context.Context, r io.Reader) ([][]sheetview.Value, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", sheetview.ErrParse, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", sheetview.ErrParse)
	}
	name := sheets[0]
	raw, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", sheetview.ErrParse, name, err)
	}

	grid := make([][]sheetview.Value, 0, len(raw))
	for i, cells := range raw {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row := make([]sheetview.Value, len(cells))
		for j, s := range cells {
			if s == "" {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, err
			}
			typ, err := f.GetCellType(name, axis)
			if err != nil {
				return nil, fmt.Errorf("%s[%s]: %w", name, axis, err)
			}
			row[j] = cellValue(typ, s)
		}
		grid = append(grid, row)
	}
	return sheetview.TrimGrid(grid), nil
}

func cellValue(typ excelize.CellType, s string) sheetview.Value {
	switch typ {
	case excelize.CellTypeBool:
		return sheetview.BoolValue(s == "1" || s == "TRUE" || s == "true")
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return sheetview.NumberValue(f)
		}
	}
	return sheetview.StringValue(s)
}
