// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package ephemeris locates the instants at which the Sun's apparent
// ecliptic longitude crosses the zodiacal sign boundaries (ingresses).
// It provides two interchangeable longitude sources, a root finder for
// longitude crossings and a cached per-year table of the twelve
// ingress events, together with a persisted JSON form of that table.
package ephemeris

import "errors"

// Source computes the Sun's apparent geocentric ecliptic longitude.
// Over the scale of days the longitude must increase monotonically,
// modulo 360. Implementations must be safe for concurrent use.
type Source interface {
	// Longitude returns degrees in [0, 360) for a UT Julian day.
	Longitude(jd float64) float64
	// Years returns the inclusive range of years the source supports.
	Years() (first, last int)
}

var (
	// ErrNoCrossing indicates that the bracket around the estimated
	// crossing did not contain a sign change, that is, the source is
	// not behaving monotonically there.
	ErrNoCrossing = errors.New("no longitude crossing within the search bracket")

	// ErrYearOutOfRange indicates a year outside of Source.Years().
	ErrYearOutOfRange = errors.New("year outside of the supported ephemeris range")
)
