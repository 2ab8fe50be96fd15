// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DateLayout is the canonical wire and storage format of [Date].
const DateLayout = time.DateOnly

// ErrInvalidDate is returned when a value cannot be interpreted as a date.
var ErrInvalidDate = errors.New("invalid date")

// acceptedDateLayouts lists the layouts accepted on input, most specific last.
var acceptedDateLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// Date is a calendar date stored at UTC midnight.
//
// It marshals to JSON as "YYYY-MM-DD" and is persisted as TEXT in the same
// format, so ordering and equality work in both SQLite and PostgreSQL.
type Date struct {
	time.Time
}

// NewDate truncates the given year/month/day to a [Date].
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf drops the clock part of t, keeping its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses s using any of the accepted layouts.
func ParseDate(s string) (Date, error) {
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}

	return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// String returns the date in [DateLayout]. The zero date is rendered as an
// empty string.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}

	return d.Format(DateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(d.Format(DateLayout))
}

// UnmarshalJSON implements json.Unmarshaler. Null and empty strings leave
// the zero date.
func (d *Date) UnmarshalJSON(b []byte) error {
	var raw *string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}

	if raw == nil || *raw == "" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(*raw)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}

	return d.Format(DateLayout), nil
}

// Scan implements sql.Scanner. Drivers hand back TEXT columns either as
// string or []byte, and PostgreSQL DATE columns as time.Time.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidDate, src)
	}
}

func (d *Date) scanString(s string) error {
	if s == "" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
