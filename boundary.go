// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zodiacal

import (
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/zodiacal/astronomy"
)

// SunTimesFunc returns the sun events of a civil day at a place. It
// must return an error only when the place sees no sunrise that day,
// under polar day or polar night. The calendar uses it to anchor
// month boundaries to local sunrise; tests substitute synthetic
// events.
type SunTimesFunc func(date datetime.CalendarDate, place datetime.Place) (astronomy.SunTimes, error)

// utcDate returns the UTC calendar date containing t.
func utcDate(t time.Time) datetime.CalendarDate {
	t = t.UTC()
	return datetime.NewCalendarDate(t.Year(), datetime.Month(t.Month()), t.Day())
}

func midnight(cd datetime.CalendarDate) time.Time {
	return cd.Time(datetime.NewTimeOfDay(0, 0, 0), time.UTC)
}

// addDays returns the calendar date days after cd.
func addDays(cd datetime.CalendarDate, days int) datetime.CalendarDate {
	t := midnight(cd).AddDate(0, 0, days)
	return datetime.NewCalendarDate(t.Year(), datetime.Month(t.Month()), t.Day())
}

// daysBetween returns b-a in whole civil days, negative when b
// precedes a.
func daysBetween(a, b datetime.CalendarDate) int {
	return int(midnight(b).Sub(midnight(a)) / (24 * time.Hour))
}

// monthStart resolves an ingress instant to the civil day its month
// begins on. Without a place the month begins on the UTC date of the
// ingress. With a place the day belongs to the new month only if the
// Sun had entered the sign by that day's local sunrise: an ingress at
// or before sunrise begins the month the same day, a later one the
// next day. On polar days and nights there is no sunrise to compare
// with and the UTC date is used.
func (c *Calendar) monthStart(ingress time.Time, place *datetime.Place) datetime.CalendarDate {
	day := utcDate(ingress)
	if place == nil {
		return day
	}
	st, err := c.sun(day, *place)
	if err != nil {
		return day
	}
	if !ingress.After(st.Rise) {
		return day
	}
	return addDays(day, 1)
}
