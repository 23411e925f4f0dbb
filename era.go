// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package zodiacal

import "fmt"

// Epoch is the zodiac year immediately before the era: era year 1
// begins at the Aries ingress of Gregorian 2026.
const Epoch = 2025

// EraYear returns the era year of a zodiac year: positive after the
// era began, zero for the epoch year itself and negative before it.
func EraYear(zodiacYear int) int {
	return zodiacYear - Epoch
}

// ZodiacYear returns the zodiac year of an era year.
func ZodiacYear(eraYear int) int {
	return eraYear + Epoch
}

// EraLabel formats a zodiac year as an era string: "1 A.A." for the
// first year of the era, "0" for the epoch year and "5 p.A." for five
// years before it.
func EraLabel(zodiacYear int) string {
	switch era := EraYear(zodiacYear); {
	case era > 0:
		return fmt.Sprintf("%d A.A.", era)
	case era < 0:
		return fmt.Sprintf("%d p.A.", -era)
	default:
		return "0"
	}
}
