// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package zodiacal implements a solar calendar whose twelve months are
// the zodiacal signs: a month begins at the instant the Sun's apparent
// ecliptic longitude crosses a multiple of 30°. Month lengths follow
// from the ingress instants and run from 29 to 32 days.
//
// A zodiac year begins at the Aries ingress, near the March equinox of
// the Gregorian year it is named for, and its twelfth month reaches
// into the following Gregorian year. Month boundaries may be anchored
// to local sunrise at a place, in which case the same ingress can
// begin a month on civil days one apart at different longitudes.
// Without a place, boundaries fall on the UTC date of the ingress.
//
// Years are counted from an epoch: era year 1 begins at the Aries
// ingress of Gregorian 2026.
package zodiacal

import "fmt"

// Sign is one of the twelve zodiacal signs, which double as the
// months of the calendar.
type Sign struct {
	Index     int     // 0 (Aries) through 11 (Pisces)
	Name      string  // the calendar's month name
	Latin     string  // the traditional sign name
	Symbol    rune    // the sign's glyph
	Longitude float64 // ecliptic longitude of the sign's start, degrees
}

var signs = [12]Sign{
	{0, "Arieneum", "Aries", '♈', 0},
	{1, "Taureneum", "Taurus", '♉', 30},
	{2, "Geminion", "Gemini", '♊', 60},
	{3, "Cancerion", "Cancer", '♋', 90},
	{4, "Leon", "Leo", '♌', 120},
	{5, "Virgeon", "Virgo", '♍', 150},
	{6, "Libreon", "Libra", '♎', 180},
	{7, "Scorpion", "Scorpio", '♏', 210},
	{8, "Sagittarion", "Sagittarius", '♐', 240},
	{9, "Caprineum", "Capricorn", '♑', 270},
	{10, "Aquarion", "Aquarius", '♒', 300},
	{11, "Piscion", "Pisces", '♓', 330},
}

// Signs returns the twelve signs in longitude order.
func Signs() []Sign {
	all := signs
	return all[:]
}

// Month is a month of the zodiacal calendar, 1 (Arieneum) through 12
// (Piscion). Month n spans the sign with index n-1.
type Month int

const (
	Arieneum Month = iota + 1
	Taureneum
	Geminion
	Cancerion
	Leon
	Virgeon
	Libreon
	Scorpion
	Sagittarion
	Caprineum
	Aquarion
	Piscion
)

// Sign returns the sign the month spans.
func (m Month) Sign() Sign {
	return signs[m-1]
}

func (m Month) String() string {
	if m < Arieneum || m > Piscion {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return signs[m-1].Name
}

// Date is a date in the zodiacal calendar. Year is the zodiac year,
// named for the Gregorian year of its Aries ingress, and Day is one
// based within the month.
type Date struct {
	Year  int
	Month Month
	Day   int
}

// String formats as "12 Arieneum ♈, 1 A.A.".
func (d Date) String() string {
	return fmt.Sprintf("%d %s %c, %s", d.Day, d.Month, d.Month.Sign().Symbol, EraLabel(d.Year))
}

// Short formats as day.month.eraYear, eg. "12.01.1".
func (d Date) Short() string {
	return fmt.Sprintf("%02d.%02d.%d", d.Day, int(d.Month), EraYear(d.Year))
}

// Full formats as "12 Arieneum (♈ Aries), 1 A.A.".
func (d Date) Full() string {
	s := d.Month.Sign()
	return fmt.Sprintf("%d %s (%c %s), %s", d.Day, s.Name, s.Symbol, s.Latin, EraLabel(d.Year))
}
