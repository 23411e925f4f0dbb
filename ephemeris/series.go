// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ephemeris

import (
	"github.com/mooncaker816/learnmeeus/v3/base"
	"github.com/mooncaker816/learnmeeus/v3/solar"
)

// Series computes the Sun's apparent longitude with the low accuracy
// series of Meeus, chapter 25. It is self contained, needs no data
// files and is good to about 0.01°, under a quarter of an hour in the
// timing of an ingress.
type Series struct{}

// Longitude implements Source.
func (s Series) Longitude(jd float64) float64 {
	T := base.J2000Century(jdeFor(jd))
	return solar.ApparentLongitude(T).Mod1().Deg()
}

// Years implements Source. The limits are those of the ΔT fit.
func (s Series) Years() (first, last int) {
	return 1900, 2150
}
