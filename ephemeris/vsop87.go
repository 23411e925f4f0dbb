// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ephemeris

import (
	pp "github.com/mooncaker816/learnmeeus/v3/planetposition"
	"github.com/mooncaker816/learnmeeus/v3/solar"
)

// VSOP87 computes the Sun's apparent longitude from the full VSOP87
// theory for the Earth, good to about an arc second. The theory's
// coefficients are read from the VSOP87 distribution files.
type VSOP87 struct {
	earth *pp.V87Planet
}

// NewVSOP87 loads the Earth theory from the directory named by the
// VSOP87 environment variable.
func NewVSOP87() (*VSOP87, error) {
	earth, err := pp.LoadPlanet(pp.Earth)
	if err != nil {
		return nil, err
	}
	return &VSOP87{earth: earth}, nil
}

// NewVSOP87Dir loads the Earth theory from the given directory.
func NewVSOP87Dir(dir string) (*VSOP87, error) {
	earth, err := pp.LoadPlanetPath(pp.Earth, dir)
	if err != nil {
		return nil, err
	}
	return &VSOP87{earth: earth}, nil
}

// Longitude implements Source.
func (v *VSOP87) Longitude(jd float64) float64 {
	lon, _, _ := solar.ApparentVSOP87(v.earth, jdeFor(jd))
	return lon.Mod1().Deg()
}

// Years implements Source. The limits are those of the ΔT fit.
func (v *VSOP87) Years() (first, last int) {
	return 1900, 2150
}
