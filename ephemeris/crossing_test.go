// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ephemeris_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"cloudeng.io/zodiacal/ephemeris"
	"github.com/mooncaker816/learnmeeus/v3/solstice"
)

// linear is a Source advancing at a constant rate, for exercising the
// root finder against analytically known crossings.
type linear struct {
	jd0, lon0, rate float64
}

func (l linear) Longitude(jd float64) float64 {
	d := math.Mod(l.lon0+(jd-l.jd0)*l.rate, 360)
	if d < 0 {
		d += 360
	}
	return d
}

func (l linear) Years() (first, last int) { return 1, 9999 }

func TestCrossing(t *testing.T) {
	const jd0 = 2451545.0
	rate := 360.0 / 365.25
	src := linear{jd0: jd0, lon0: 10, rate: rate}
	for _, tc := range []struct {
		target float64
		days   float64 // after jd0
	}{
		{30, 20 / rate},
		{180, 170 / rate},
		{0, 350 / rate},  // wraps through 360
		{5, 355 / rate},  // wraps through 360
		{10, 360 / rate}, // already on target: a full cycle ahead
	} {
		got, err := ephemeris.Crossing(src, tc.target, jd0)
		if err != nil {
			t.Errorf("target %v: %v", tc.target, err)
			continue
		}
		if want := jd0 + tc.days; math.Abs(got-want) > 2e-4 {
			t.Errorf("target %v: got %v, want %v", tc.target, got, want)
		}
	}
}

// constant never crosses anything.
type constant float64

func (c constant) Longitude(jd float64) float64 { return float64(c) }
func (c constant) Years() (first, last int)     { return 1, 9999 }

func TestCrossingNoRoot(t *testing.T) {
	for _, target := range []float64{80, 180} {
		if _, err := ephemeris.Crossing(constant(90), target, 2451545); !errors.Is(err, ephemeris.ErrNoCrossing) {
			t.Errorf("target %v: got %v, want %v", target, err, ephemeris.ErrNoCrossing)
		}
	}
}

// The cardinal ingresses are the equinoxes and solstices, which the
// solstice package computes from an independent polynomial fit. It
// returns dynamical time, so the tolerance also covers ΔT.
func TestCrossingEquinoxes(t *testing.T) {
	src := ephemeris.Series{}
	for year := 2020; year <= 2028; year++ {
		for _, tc := range []struct {
			target float64
			anchor time.Month
			want   float64
		}{
			{0, time.February, solstice.March(year)},
			{90, time.May, solstice.June(year)},
			{180, time.August, solstice.September(year)},
			{270, time.November, solstice.December(year)},
		} {
			start := ephemeris.TimeToJD(time.Date(year, tc.anchor, 1, 0, 0, 0, 0, time.UTC))
			got, err := ephemeris.Crossing(src, tc.target, start)
			if err != nil {
				t.Errorf("%v at %v°: %v", year, tc.target, err)
				continue
			}
			if math.Abs(got-tc.want) > 0.05 {
				t.Errorf("%v at %v°: got %v, want %v", year, tc.target, got, tc.want)
			}
		}
	}
}
