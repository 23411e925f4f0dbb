// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zodiacal

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/zodiacal/astronomy"
	"cloudeng.io/zodiacal/ephemeris"
	"cloudeng.io/zodiacal/hours"
)

// Calendar converts between Gregorian civil dates and zodiacal dates.
// Construct one with New; the zero value is not usable. A Calendar is
// safe for concurrent use.
type Calendar struct {
	table *ephemeris.Table
	sun   SunTimesFunc
}

// Option configures a Calendar.
type Option func(*Calendar)

// WithTable substitutes a prepared ingress table, typically one seeded
// from a persisted cache, for the table New builds from its source.
func WithTable(t *ephemeris.Table) Option {
	return func(c *Calendar) { c.table = t }
}

// WithSunTimes overrides the provider of sun events used for sunrise
// anchored month boundaries and for planetary hours.
func WithSunTimes(fn SunTimesFunc) Option {
	return func(c *Calendar) { c.sun = fn }
}

// New returns a Calendar computing ingress instants with src.
func New(src ephemeris.Source, opts ...Option) *Calendar {
	c := &Calendar{
		table: ephemeris.NewTable(src),
		sun:   astronomy.RiseAndSet,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ingresses returns the twelve ingress events of the zodiac year in
// chronological order. The first is the year's Aries ingress, near
// the March equinox.
func (c *Calendar) Ingresses(year int) ([]ephemeris.Event, error) {
	return c.table.Year(year)
}

// MonthStarts returns the civil dates on which the twelve months of
// the zodiac year begin at place, or on the UTC dates of the
// ingresses when place is nil.
func (c *Calendar) MonthStarts(year int, place *datetime.Place) ([12]datetime.CalendarDate, error) {
	var starts [12]datetime.CalendarDate
	evs, err := c.table.Year(year)
	if err != nil {
		return starts, err
	}
	for i, ev := range evs {
		starts[i] = c.monthStart(ev.Time(), place)
	}
	return starts, nil
}

// monthEnd returns the civil day the month after m begins on, which
// for Piscion is the first day of the following zodiac year. The
// calendar has no thirteenth month: Piscion always ends where the next
// year's Arieneum begins.
func (c *Calendar) monthEnd(year int, m Month, starts [12]datetime.CalendarDate, place *datetime.Place) (datetime.CalendarDate, error) {
	if m < Piscion {
		return starts[m], nil
	}
	next, err := c.MonthStarts(year+1, place)
	if err != nil {
		var zero datetime.CalendarDate
		return zero, err
	}
	return next[0], nil
}

// FromGregorian converts a civil date to its zodiacal date at place.
// The date belongs to the zodiac year of its own Gregorian year unless
// it falls before that year's first month, in which case it belongs to
// the previous zodiac year.
func (c *Calendar) FromGregorian(date datetime.CalendarDate, place *datetime.Place) (Date, error) {
	year := date.Year()
	starts, err := c.MonthStarts(year, place)
	if err != nil {
		return Date{}, err
	}
	if daysBetween(starts[0], date) < 0 {
		year--
		if starts, err = c.MonthStarts(year, place); err != nil {
			return Date{}, err
		}
	}
	for m := 11; m >= 0; m-- {
		if days := daysBetween(starts[m], date); days >= 0 {
			return Date{Year: year, Month: Month(m + 1), Day: days + 1}, nil
		}
	}
	return Date{}, fmt.Errorf("%v precedes the %v zodiac year", date, year)
}

// ToGregorian converts a zodiacal date to its civil date at place,
// validating the day against the month's length in that year.
func (c *Calendar) ToGregorian(zd Date, place *datetime.Place) (datetime.CalendarDate, error) {
	var zero datetime.CalendarDate
	if zd.Month < Arieneum || zd.Month > Piscion {
		return zero, fmt.Errorf("invalid zodiacal month %v", int(zd.Month))
	}
	starts, err := c.MonthStarts(zd.Year, place)
	if err != nil {
		return zero, err
	}
	end, err := c.monthEnd(zd.Year, zd.Month, starts, place)
	if err != nil {
		return zero, err
	}
	days := daysBetween(starts[zd.Month-1], end)
	if zd.Day < 1 || zd.Day > days {
		return zero, fmt.Errorf("no day %v in %v of %v, a month of %v days", zd.Day, zd.Month, EraLabel(zd.Year), days)
	}
	return addDays(starts[zd.Month-1], zd.Day-1), nil
}

// MonthLength returns the number of civil days in the month of the
// zodiac year at place, always 29 to 32.
func (c *Calendar) MonthLength(year int, month Month, place *datetime.Place) (int, error) {
	if month < Arieneum || month > Piscion {
		return 0, fmt.Errorf("invalid zodiacal month %v", int(month))
	}
	starts, err := c.MonthStarts(year, place)
	if err != nil {
		return 0, err
	}
	end, err := c.monthEnd(year, month, starts, place)
	if err != nil {
		return 0, err
	}
	return daysBetween(starts[month-1], end), nil
}

// YearLength returns the number of civil days in the zodiac year at
// place, 365 or 366.
func (c *Calendar) YearLength(year int, place *datetime.Place) (int, error) {
	starts, err := c.MonthStarts(year, place)
	if err != nil {
		return 0, err
	}
	next, err := c.MonthStarts(year+1, place)
	if err != nil {
		return 0, err
	}
	return daysBetween(starts[0], next[0]), nil
}

// Today returns the zodiacal date of the current UTC day at place.
func (c *Calendar) Today(place *datetime.Place) (Date, error) {
	return c.FromGregorian(utcDate(time.Now()), place)
}

// PlanetaryHours returns the twenty four planetary hours of the civil
// day at place, running from the day's sunrise to the next day's
// sunrise. Polar day or night on either day is an error: the hours
// are undefined without a sunrise and a sunset.
func (c *Calendar) PlanetaryHours(date datetime.CalendarDate, place datetime.Place) ([]hours.Hour, error) {
	st, err := c.sun(date, place)
	if err != nil {
		return nil, err
	}
	next, err := c.sun(addDays(date, 1), place)
	if err != nil {
		return nil, err
	}
	return hours.Compute(st.Rise, st.Set, next.Rise, midnight(date).Weekday())
}
