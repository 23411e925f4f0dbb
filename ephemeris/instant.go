// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ephemeris

import (
	"time"

	"github.com/mooncaker816/learnmeeus/v3/julian"
)

// TimeToJD returns t as a UT Julian day.
func TimeToJD(t time.Time) float64 {
	t = t.UTC()
	day := float64(t.Day()) +
		(float64(t.Hour())+
			float64(t.Minute())/60+
			(float64(t.Second())+float64(t.Nanosecond())/1e9)/3600)/24
	return julian.CalendarGregorianToJD(t.Year(), int(t.Month()), day)
}

// JDToTime returns the UTC time for a UT Julian day. The result is
// rounded to the nearest millisecond, which is well below the accuracy
// of any longitude source and absorbs the floating point noise of the
// day fraction.
func JDToTime(jd float64) time.Time {
	y, m, d := julian.JDToCalendar(jd)
	day := int(d)
	frac := time.Duration((d - float64(day)) * 24 * float64(time.Hour))
	return time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC).
		Add(frac).Round(time.Millisecond)
}
