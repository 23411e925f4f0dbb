// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ephemeris

import (
	"fmt"
	"math"
)

// meanRate is the mean daily motion of the Sun in ecliptic longitude,
// in degrees per day, used to estimate where a crossing will fall.
const meanRate = 0.9856

const (
	// crossingTolerance is the angular tolerance, in degrees, at which
	// bisection stops. 1e-4° of solar motion is about 9 seconds of
	// time, well below the accuracy of either longitude source.
	crossingTolerance = 1e-4

	// maxBisections bounds the bisection; halving a 10 day bracket 50
	// times reaches the floating point floor long before the limit.
	maxBisections = 50

	// bracketHalfWidth is the half width, in days, of the bracket laid
	// around the estimated crossing. The linear estimate is off by at
	// most about 2 days over a quarter orbit, so ±5 always brackets.
	bracketHalfWidth = 5.0
)

// signedDelta returns lon-target normalized into (-180, 180], so that
// a crossing appears as a sign change and the wrap at 0/360 does not.
func signedDelta(lon, target float64) float64 {
	d := math.Mod(lon-target, 360)
	if d > 180 {
		d -= 360
	}
	if d <= -180 {
		d += 360
	}
	return d
}

// Crossing returns the UT Julian day at which src's longitude next
// reaches targetDeg degrees, searching forward from startJD. If the
// longitude at startJD already equals the target the crossing a full
// cycle ahead is found, never startJD itself.
//
// The crossing is bracketed around a linear estimate and located by
// bisection to within crossingTolerance degrees. If the bracket does
// not contain a sign change, which cannot happen for a well behaved
// source, Crossing returns ErrNoCrossing rather than a wrong root.
func Crossing(src Source, targetDeg, startJD float64) (float64, error) {
	ahead := math.Mod(targetDeg-src.Longitude(startJD), 360)
	if ahead < 0 {
		ahead += 360
	}
	if ahead == 0 {
		ahead = 360
	}
	est := startJD + ahead/meanRate
	lo, hi := est-bracketHalfWidth, est+bracketHalfWidth
	flo := signedDelta(src.Longitude(lo), targetDeg)
	fhi := signedDelta(src.Longitude(hi), targetDeg)
	if flo > 0 || fhi < 0 {
		return 0, fmt.Errorf("%w: %v° in days %v..%v", ErrNoCrossing, targetDeg, lo, hi)
	}
	for i := 0; i < maxBisections; i++ {
		mid := (lo + hi) / 2
		fmid := signedDelta(src.Longitude(mid), targetDeg)
		if math.Abs(fmid) < crossingTolerance {
			return mid, nil
		}
		if (fmid < 0) == (flo < 0) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, nil
}
