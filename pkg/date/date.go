// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package date provides a calendar date type for DATE columns.

It serializes as "YYYY-MM-DD" in JSON and plugs into pgx through the
[pgtype.DateScanner] and [pgtype.DateValuer] interfaces, so repositories can
scan nullable DATE columns straight into *Date fields.
*/
package date

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Layout is the wire format of a [Date].
const Layout = "2006-01-02"

// Date is a day on the calendar, stored at midnight UTC.
type Date struct {
	time.Time
}

// New returns the date for the given year, month and day.
func New(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Parse reads a "YYYY-MM-DD" string.
func Parse(value string) (Date, error) {
	parsed, err := time.Parse(Layout, value)
	if err != nil {
		return Date{}, fmt.Errorf("date: invalid value %q: %w", value, err)
	}
	return Date{Time: parsed}, nil
}

// MustParse is [Parse] for literals in tests and fixtures.
func MustParse(value string) Date {
	d, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return d
}

// String implements [fmt.Stringer].
func (d Date) String() string {
	return d.Format(Layout)
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// MarshalJSON implements [json.Marshaler].
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements [json.Unmarshaler].
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

// # pgx integration

// ScanDate implements [pgtype.DateScanner].
func (d *Date) ScanDate(value pgtype.Date) error {
	if !value.Valid {
		*d = Date{}
		return nil
	}

	t := value.Time
	*d = New(t.Year(), t.Month(), t.Day())
	return nil
}

// DateValue implements [pgtype.DateValuer].
func (d Date) DateValue() (pgtype.Date, error) {
	if d.IsZero() {
		return pgtype.Date{}, nil
	}
	return pgtype.Date{Time: d.Time, Valid: true}, nil
}
