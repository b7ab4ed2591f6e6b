package domain

import (
	"database/sql/driver"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

const DateLayout = "2006-01-02"

// Date is a calendar day with no time of day and no location. Arithmetic
// goes through civil.Date, so stepping from one day to the next never
// depends on the host time zone or DST transitions.
type Date struct {
	civil.Date
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{civil.Date{Year: year, Month: month, Day: day}}
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	return Date{civil.DateOf(t)}
}

// ParseDate parses YYYY-MM-DD and rejects impossible dates like 2026-02-30.
func ParseDate(s string) (Date, error) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{d}, nil
}

func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) AddDays(n int) Date {
	return Date{d.Date.AddDays(n)}
}

// DaysSince returns d - s in whole days.
func (d Date) DaysSince(s Date) int {
	return d.Date.DaysSince(s.Date)
}

func (d Date) Before(o Date) bool {
	return d.Date.Before(o.Date)
}

func (d Date) After(o Date) bool {
	return d.Date.After(o.Date)
}

// Within reports whether d lies in [start, end], both inclusive.
func (d Date) Within(start, end Date) bool {
	return !d.Before(start) && !d.After(end)
}

// GormDataType maps Date onto a postgres date column.
func (Date) GormDataType() string {
	return "date"
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into domain.Date", src)
	}
}
