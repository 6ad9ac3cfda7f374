// Copyright 2020, Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetview

import (
	"time"

	"golang.org/x/text/language"
)

// shortDates are the supported short-date layouts; the first is the fallback.
var shortDates = []struct {
	tag    language.Tag
	layout string
}{
	{language.AmericanEnglish, "1/2/2006"},
	{language.BritishEnglish, "02/01/2006"},
	{language.German, "2.1.2006"},
	{language.French, "02/01/2006"},
	{language.Hungarian, "2006. 01. 02."},
	{language.Japanese, "2006/1/2"},
	{language.Chinese, "2006/1/2"},
}

var dateMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(shortDates))
	for i, d := range shortDates {
		tags[i] = d.tag
	}
	return language.NewMatcher(tags)
}()

// Locale selects the short-date layout. The zero Locale is American English.
type Locale struct {
	tag    language.Tag
	layout string
}

// ParseLocale resolves a language tag or an Accept-Language header value
// to the closest supported Locale.
func ParseLocale(s string) Locale {
	tags, _, err := language.ParseAcceptLanguage(s)
	if err != nil || len(tags) == 0 {
		return Locale{}
	}
	_, i, _ := dateMatcher.Match(tags...)
	return Locale{tag: shortDates[i].tag, layout: shortDates[i].layout}
}

// Tag returns the matched language.
func (l Locale) Tag() language.Tag {
	if l.layout == "" {
		return shortDates[0].tag
	}
	return l.tag
}

// String returns the BCP 47 form of the matched language.
func (l Locale) String() string { return l.Tag().String() }

// FormatDate formats the calendar date of t in the locale's short form.
func (l Locale) FormatDate(t time.Time) string {
	layout := l.layout
	if layout == "" {
		layout = shortDates[0].layout
	}
	return t.Format(layout)
}
