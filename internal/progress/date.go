package progress

import (
	"fmt"
	"time"
)

// DateLayout is the on-disk format of calendar dates.
const DateLayout = "2006-01-02"

// TimestampLayout is the on-disk format of history timestamps (local time).
const TimestampLayout = "2006-01-02 15:04:05"

// Date is a calendar date without time of day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a "2006-01-02" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// midnight returns the date at 00:00 UTC, used for date arithmetic only.
func (d Date) midnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.midnight().AddDate(0, 0, n))
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool {
	return d.midnight().Before(o.midnight())
}

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool {
	return d.midnight().After(o.midnight())
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.midnight().Weekday()
}

func (d Date) String() string {
	return d.midnight().Format(DateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Timestamp is a local wall-clock instant with second precision.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to the second and converts it to local time.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.Truncate(time.Second).In(time.Local)}
}

// Date returns the calendar date of the timestamp.
func (ts Timestamp) Date() Date {
	return DateOf(ts.Time)
}

func (ts Timestamp) String() string {
	return ts.Time.Format(TimestampLayout)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + ts.String() + `"`), nil
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("timestamp must be a JSON string, got %s", b)
	}
	t, err := time.ParseInLocation(TimestampLayout, string(b[1:len(b)-1]), time.Local)
	if err != nil {
		return fmt.Errorf("parse timestamp: %w", err)
	}
	ts.Time = t
	return nil
}
