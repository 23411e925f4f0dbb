// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zodiacal_test

import (
	"testing"
	"time"

	"cloudeng.io/zodiacal"
	"cloudeng.io/zodiacal/astronomy"
	"cloudeng.io/zodiacal/ephemeris"
)

// The tests in this file compute ingresses with the series source
// rather than a seeded table, exercising the full pipeline.

func TestLiveIngresses(t *testing.T) {
	cal := zodiacal.New(ephemeris.Series{})
	evs, err := cal.Ingresses(2026)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range ingresses2026 {
		got := evs[i].Time()
		if d := got.Sub(want); d < -30*time.Minute || d > 30*time.Minute {
			t.Errorf("sign %v: got %v, want within 30m of %v", i, got, want)
		}
	}
	// The year opens at the vernal equinox.
	if got, want := dateOf(evs[0].Time()), astronomy.March(2026); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLiveYearStarts(t *testing.T) {
	cal := zodiacal.New(ephemeris.Series{})
	for year := 2020; year <= 2030; year++ {
		evs, err := cal.Ingresses(year)
		if err != nil {
			t.Fatal(err)
		}
		first := evs[0].Time()
		zd, err := cal.FromGregorian(dateOf(first), nil)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := zd, (zodiacal.Date{Year: year, Month: zodiacal.Arieneum, Day: 1}); got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
		// The preceding day closes the previous zodiac year.
		length, err := cal.MonthLength(year-1, zodiacal.Piscion, nil)
		if err != nil {
			t.Fatal(err)
		}
		zd, err = cal.FromGregorian(dateOf(first.AddDate(0, 0, -1)), nil)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := zd, (zodiacal.Date{Year: year - 1, Month: zodiacal.Piscion, Day: length}); got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
	}
}

func TestLiveRoundTrip(t *testing.T) {
	cal := zodiacal.New(ephemeris.Series{})
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2028, 6, 1, 0, 0, 0, 0, time.UTC)
	for day := from; day.Before(to); day = day.AddDate(0, 0, 11) {
		date := dateOf(day)
		zd, err := cal.FromGregorian(date, nil)
		if err != nil {
			t.Fatal(err)
		}
		back, err := cal.ToGregorian(zd, nil)
		if err != nil {
			t.Fatalf("%v (%v): %v", date, zd, err)
		}
		if got, want := back, date; got != want {
			t.Errorf("got %v, want %v via %v", got, want, zd)
		}
	}
}

func TestLiveMonthLengths(t *testing.T) {
	cal := zodiacal.New(ephemeris.Series{})
	for year := 2024; year <= 2028; year++ {
		sum := 0
		for m := zodiacal.Arieneum; m <= zodiacal.Piscion; m++ {
			n, err := cal.MonthLength(year, m, nil)
			if err != nil {
				t.Fatal(err)
			}
			if n < 29 || n > 32 {
				t.Errorf("%v %v: implausible month of %v days", year, m, n)
			}
			sum += n
		}
		length, err := cal.YearLength(year, nil)
		if err != nil {
			t.Fatal(err)
		}
		if length != 365 && length != 366 {
			t.Errorf("%v: implausible year of %v days", year, length)
		}
		if got, want := sum, length; got != want {
			t.Errorf("%v: months sum to %v days, year has %v", year, got, want)
		}
	}
}

func TestLiveVernalIngress(t *testing.T) {
	cal := zodiacal.New(ephemeris.Series{})
	zd, err := cal.FromGregorian(cd(2026, 3, 20), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := zd, (zodiacal.Date{Year: 2026, Month: zodiacal.Arieneum, Day: 1}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	zd, err = cal.FromGregorian(cd(2026, 3, 19), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := zd, (zodiacal.Date{Year: 2025, Month: zodiacal.Piscion, Day: 30}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := zd.String(), "30 Piscion ♓, 0"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestYearOutOfRange(t *testing.T) {
	cal := zodiacal.New(ephemeris.Series{})
	if _, err := cal.FromGregorian(cd(1850, 6, 1), nil); err == nil {
		t.Errorf("expected an error")
	}
	if _, err := cal.Ingresses(2200); err == nil {
		t.Errorf("expected an error")
	}
}
