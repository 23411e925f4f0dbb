// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"cloudeng.io/datetime"
	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/solstice"
)

// The equinoxes and solstices are the cardinal ingresses of the
// zodiacal calendar: the March equinox is the Aries ingress at 0°
// longitude, June is Cancer at 90°, September is Libra at 180° and
// December is Capricorn at 270°. They are computed here from
// polynomial fits, independently of the ephemeris package's root
// finder, which makes them useful as cross checks.

// JDEToCalendar returns the calendar date containing the given
// Julian ephemeris day.
func JDEToCalendar(jde float64) datetime.CalendarDate {
	y, m, d := julian.JDToCalendar(jde)
	return datetime.NewCalendarDate(y, datetime.Month(m), int(d))
}

// March returns the vernal/spring equinox.
func March(year int) datetime.CalendarDate {
	return JDEToCalendar(solstice.March(year))
}

// June returns the summer solstice.
func June(year int) datetime.CalendarDate {
	return JDEToCalendar(solstice.June(year))
}

// September returns the autumnal equinox.
func September(year int) datetime.CalendarDate {
	return JDEToCalendar(solstice.September(year))
}

// December returns the winter solstice.
func December(year int) datetime.CalendarDate {
	return JDEToCalendar(solstice.December(year))
}
