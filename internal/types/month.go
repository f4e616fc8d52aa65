package types

import (
	"fmt"
	"time"
)

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// FirstDay returns the first day of the month.
func (m Month) FirstDay() Date {
	year, month, _ := time.Time(m).Date()
	return NewDate(year, month, 1)
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return MonthOf(time.Time(m).AddDate(years, months, 0))
}

// Contains reports whether the date is in the month.
func (m Month) Contains(d Date) bool {
	return time.Time(d).Year() == time.Time(m).Year() && time.Time(d).Month() == time.Time(m).Month()
}
