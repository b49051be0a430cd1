// Copyright (c) 2026 Libris. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package date provides a calendar date without time-of-day or zone.

Birth dates and publication dates are DATE columns; over JSON they use the
ISO 8601 form "2006-01-02".
*/
package date

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Layout is the wire format of a [Date].
const Layout = "2006-01-02"

// Date is a calendar day. The embedded time is always midnight UTC.
type Date struct {
	time.Time
}

// Of truncates t to its calendar day.
func Of(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// New builds a date from its parts.
func New(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Parse reads "2006-01-02".
func Parse(raw string) (Date, error) {
	parsed, err := time.Parse(Layout, strings.TrimSpace(raw))
	if err != nil {
		return Date{}, fmt.Errorf("date: expected YYYY-MM-DD: %w", err)
	}
	return Of(parsed), nil
}

// FromPtr converts a nullable DATE scan target.
func FromPtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := Of(*t)
	return &d
}

// TimePtr converts d into a nullable DATE query argument.
func TimePtr(d *Date) *time.Time {
	if d == nil {
		return nil
	}
	return &d.Time
}

// String renders the date as "2006-01-02".
func (d Date) String() string {
	return d.Format(Layout)
}

// MarshalJSON encodes the date as a JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a "2006-01-02" JSON string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date: expected a string: %w", err)
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
