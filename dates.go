// Copyright 2020, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetview

import (
	"regexp"
	"time"
)

// Serial numbers strictly between SerialDateMin and SerialDateMax
// (roughly 1927 to 2064) are taken for dates.
const (
	SerialDateMin = 10000
	SerialDateMax = 60000

	// unixEpochSerial is the serial number of 1970-01-01.
	unixEpochSerial = 25569
	msPerDay        = 86400 * 1000
)

// IsSerialDate reports whether the number looks like a spreadsheet serial date.
func IsSerialDate(f float64) bool {
	return f > SerialDateMin && f < SerialDateMax
}

// SerialTime returns the UTC instant of the serial date f,
// counted in days from 1899-12-30 and truncated to milliseconds.
func SerialTime(f float64) time.Time {
	return time.UnixMilli(int64((f - unixEpochSerial) * msPerDay)).UTC()
}

var rDateString = regexp.MustCompile(`^(\d{1,2}[-/]\d{1,2}[-/]\d{4})$`)

// IsDateString reports whether s is an already formatted D-M-YYYY or D/M/YYYY date.
func IsDateString(s string) bool { return rDateString.MatchString(s) }
