package kernel

import (
	"fmt"
	"time"

	"freightdesk/internal/pkg/errs"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// ErrDateIsNotConstructed indicates that a Date was not initialized through one
// of the constructor functions. It is returned when validating a zero-value Date.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError(
	"date must be created via NewDate, DateOf, DateFromString, or Today")

// Date is a value object representing a calendar date with no time-of-day
// component. Packages record the date they entered the system as a Date, and
// Loads schedule deliveries per city as Dates.
//
// Dates are normalized to UTC midnight, so two Dates constructed from different
// time zones but the same calendar day compare equal. The zero value is invalid
// and must be constructed via NewDate, DateOf, DateFromString, or Today.
//
// Example usage:
//
//	received := kernel.Today()
//	due, err := kernel.DateFromString("2025-03-14")
//	if err != nil {
//	    // handle parse error
//	}
//	if due.Before(received) {
//	    // schedule is in the past
//	}
type Date struct {
	t time.Time
}

// NewDate creates a Date from year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time.Time to its calendar date in UTC.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return NewDate(y, m, d)
}

// Today returns the current calendar date in UTC.
func Today() Date {
	return DateOf(time.Now())
}

// DateFromString parses a Date from its "2006-01-02" representation.
// Returns an error if the string does not match DateLayout.
func DateFromString(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date format: %w", err)
	}
	return DateOf(t), nil
}

// String returns the "2006-01-02" representation of the date.
// This is the canonical form used for index keys and persistence.
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// Time returns the date as a time.Time at UTC midnight.
func (d Date) Time() time.Time {
	return d.t
}

// IsEqual compares two dates for calendar equality.
func (d Date) IsEqual(other Date) bool {
	return d.t.Equal(other.t)
}

// Before reports whether the date is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// IsZero reports whether the date is the unconstructed zero value.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Validate checks if the Date is properly constructed.
// Returns ErrDateIsNotConstructed for the zero value.
func (d Date) Validate() error {
	if d.t.IsZero() {
		return ErrDateIsNotConstructed
	}
	return nil
}
