// Copyright 2021 Tamas Gulacsi. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/UNO-SOFT/sheetview"
	"github.com/UNO-SOFT/sheetview/xlsx"
)

var sampleTeams = []string{"Apollo", "Gemini", "Mercury", "Skylab"}

// writeSample writes a workbook with n member rows.
// JoinDate holds serial day numbers formatted as dates, Since holds a typed date string.
func writeSample(w io.Writer, n int) error {
	xlw := xlsx.NewWriter(w)
	bold := sheetview.Style{FontBold: true}
	sh, err := xlw.NewSheet("Members", []sheetview.Heading{
		{Name: "Name", Header: bold},
		{Name: "Team", Header: bold},
		{Name: "JoinDate", Header: bold, Column: sheetview.Style{Format: "yyyy-mm-dd"}},
		{Name: "Since", Header: bold},
		{Name: "Score", Header: bold, Column: sheetview.Style{Format: "0.00"}},
		{Name: "Active", Header: bold},
	})
	if err != nil {
		return err
	}
	for i := range n {
		if err := sh.AppendRow(
			fmt.Sprintf("member%d", i+1),
			sampleTeams[i%len(sampleTeams)],
			sheetview.NumberValue(float64(44927+i*3)),
			fmt.Sprintf("%d-%d-2024", i%12+1, i%28+1),
			sheetview.NumberValue(float64((i*37)%1000)/10),
			sheetview.BoolValue(i%3 != 0),
		); err != nil {
			return err
		}
	}
	if err := sh.Close(); err != nil {
		return err
	}
	return xlw.Close()
}
