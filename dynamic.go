// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zodiacal

import "cloudeng.io/datetime"

// MonthRange implements datetime.DynamicDateRange for a month of the
// zodiacal calendar: evaluating it for a zodiac year yields the civil
// dates the month spans that year. Years outside the calendar's
// ephemeris range evaluate to the zero range.
type MonthRange struct {
	Calendar *Calendar
	Month    Month
	Place    *datetime.Place
}

func (m MonthRange) Name() string {
	return m.Month.String()
}

func (m MonthRange) Evaluate(year int) datetime.CalendarDateRange {
	var zero datetime.CalendarDateRange
	starts, err := m.Calendar.MonthStarts(year, m.Place)
	if err != nil {
		return zero
	}
	end, err := m.Calendar.monthEnd(year, m.Month, starts, m.Place)
	if err != nil {
		return zero
	}
	return datetime.NewCalendarDateRange(starts[m.Month-1], addDays(end, -1))
}
