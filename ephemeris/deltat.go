// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ephemeris

import "github.com/mooncaker816/learnmeeus/v3/base"

// deltaT estimates ΔT = TT - UT in seconds for a decimal year, using
// the polynomial fits published by Espenak and Meeus. The segments
// below cover 1900 through 2150, the span the longitude sources
// declare; the estimate is good to a few seconds, far below the
// accuracy of the sources themselves.
func deltaT(year float64) float64 {
	switch {
	case year < 1920:
		return base.Horner(year-1900, -2.79, 1.494119, -0.0598939, 0.0061966, -0.000197)
	case year < 1941:
		return base.Horner(year-1920, 21.20, 0.84493, -0.076100, 0.0020936)
	case year < 1961:
		t := year - 1950
		return 29.07 + 0.407*t - t*t/233 + t*t*t/2547
	case year < 1986:
		t := year - 1975
		return 45.45 + 1.067*t - t*t/260 - t*t*t/718
	case year < 2005:
		return base.Horner(year-2000, 63.86, 0.3345, -0.060374, 0.0017275, 0.000651814, 0.00002373599)
	case year < 2050:
		return base.Horner(year-2000, 62.92, 0.32217, 0.005589)
	default:
		u := (year - 1820) / 100
		return -20 + 32*u*u - 0.5628*(2150-year)
	}
}

// jdeFor converts a UT Julian day to the dynamical time argument the
// planetary theories expect.
func jdeFor(jd float64) float64 {
	year := 2000 + (jd-base.J2000)/base.JulianYear
	return jd + deltaT(year)/86400
}
