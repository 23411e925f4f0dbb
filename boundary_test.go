// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zodiacal_test

import (
	"errors"
	"testing"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/zodiacal"
	"cloudeng.io/zodiacal/astronomy"
	"cloudeng.io/zodiacal/hours"
)

// riseAt returns a sun provider with sunrise at the given UTC clock
// time every day, sunset twelve hours later.
func riseAt(hour, min, sec int) zodiacal.SunTimesFunc {
	return func(date datetime.CalendarDate, _ datetime.Place) (astronomy.SunTimes, error) {
		rise := date.Time(datetime.NewTimeOfDay(hour, min, sec), time.UTC)
		return astronomy.SunTimes{Rise: rise, Set: rise.Add(12 * time.Hour), Noon: rise.Add(6 * time.Hour)}, nil
	}
}

func polarAllYear(datetime.CalendarDate, datetime.Place) (astronomy.SunTimes, error) {
	return astronomy.SunTimes{}, astronomy.ErrPolarNight
}

var testPlace = &datetime.Place{TimeLocation: time.UTC, Latitude: 51.5, Longitude: -0.13}

// The 2026 Aries ingress is at 14:45:50 UTC on March 20. Where that
// falls after the local sunrise, the twentieth still dawned in Pisces
// and Arieneum begins a day later.
func TestSunriseBoundary(t *testing.T) {
	for _, tc := range []struct {
		name string
		sun  zodiacal.SunTimesFunc
		want datetime.CalendarDate
	}{
		{"ingress after sunrise", riseAt(6, 0, 0), cd(2026, 3, 21)},
		{"ingress before sunrise", riseAt(15, 0, 0), cd(2026, 3, 20)},
		{"ingress at sunrise", riseAt(14, 45, 50), cd(2026, 3, 20)},
		{"polar fallback", polarAllYear, cd(2026, 3, 20)},
	} {
		cal := seededCalendar(zodiacal.WithSunTimes(tc.sun))
		starts, err := cal.MonthStarts(2026, testPlace)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := starts[0], tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.name, got, want)
		}
	}

	// Without a place the provider is never consulted and the UTC
	// date rules.
	cal := seededCalendar(zodiacal.WithSunTimes(riseAt(6, 0, 0)))
	starts, err := cal.MonthStarts(2026, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := starts[0], cd(2026, 3, 20); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

// Two places can disagree on a month's start by at most one civil day.
func TestBoundarySensitivity(t *testing.T) {
	early := seededCalendar(zodiacal.WithSunTimes(riseAt(0, 0, 1)))
	late := seededCalendar(zodiacal.WithSunTimes(riseAt(23, 59, 59)))
	none := seededCalendar()
	for year := 2025; year <= 2026; year++ {
		a, err := early.MonthStarts(year, testPlace)
		if err != nil {
			t.Fatal(err)
		}
		b, err := late.MonthStarts(year, testPlace)
		if err != nil {
			t.Fatal(err)
		}
		utc, err := none.MonthStarts(year, nil)
		if err != nil {
			t.Fatal(err)
		}
		for i := range a {
			// An early riser starts months on the UTC day or the next;
			// a pre-midnight sunrise always sees the ingress first.
			if got, want := b[i], utc[i]; got != want {
				t.Errorf("%v month %v: got %v, want %v", year, i+1, got, want)
			}
			switch d := midnightDays(utc[i], a[i]); d {
			case 0, 1:
			default:
				t.Errorf("%v month %v: starts %v and %v are %v days apart", year, i+1, utc[i], a[i], d)
			}
		}
	}
}

func midnightDays(a, b datetime.CalendarDate) int {
	ta := a.Time(datetime.NewTimeOfDay(0, 0, 0), time.UTC)
	tb := b.Time(datetime.NewTimeOfDay(0, 0, 0), time.UTC)
	return int(tb.Sub(ta) / (24 * time.Hour))
}

// With a sunrise anchored boundary the ingress day itself can belong
// to the closing month, and conversions must stay consistent.
func TestBoundaryRoundTrip(t *testing.T) {
	cal := seededCalendar(zodiacal.WithSunTimes(riseAt(6, 0, 0)))
	zd, err := cal.FromGregorian(cd(2026, 3, 20), testPlace)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := zd, (zodiacal.Date{Year: 2025, Month: zodiacal.Piscion, Day: 30}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	back, err := cal.ToGregorian(zd, testPlace)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := back, cd(2026, 3, 20); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	zd, err = cal.FromGregorian(cd(2026, 3, 21), testPlace)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := zd, (zodiacal.Date{Year: 2026, Month: zodiacal.Arieneum, Day: 1}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPlanetaryHours(t *testing.T) {
	cal := seededCalendar(zodiacal.WithSunTimes(riseAt(6, 0, 0)))
	date := cd(2026, 3, 22) // a Sunday
	hrs, err := cal.PlanetaryHours(date, *testPlace)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(hrs), 24; got != want {
		t.Fatalf("got %v hours, want %v", got, want)
	}
	if got, want := hrs[0].Start, time.Date(2026, 3, 22, 6, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := hrs[0].Ruler, hours.Sun; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := hrs[12].Ruler, hours.Jupiter; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := hrs[23].End, time.Date(2026, 3, 23, 6, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	polar := seededCalendar(zodiacal.WithSunTimes(polarAllYear))
	if _, err := polar.PlanetaryHours(date, *testPlace); !errors.Is(err, astronomy.ErrPolar) {
		t.Errorf("got %v, want %v", err, astronomy.ErrPolar)
	}
}
