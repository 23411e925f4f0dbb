// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package hours partitions a day into the twenty four traditional
// planetary hours. The twelve day hours divide sunrise to sunset
// evenly and the twelve night hours divide sunset to the next
// sunrise, so the two kinds are of equal length only at the
// equinoxes. Each hour is ruled by one of the seven classical planets
// in the Chaldean order, a cycle that runs unbroken from hour to hour
// and day to day.
package hours

import (
	"errors"
	"fmt"
	"time"
)

// Planet is one of the seven classical planets, ordered by the
// Chaldean sequence, slowest to fastest.
type Planet int

const (
	Saturn Planet = iota
	Jupiter
	Mars
	Sun
	Venus
	Mercury
	Moon
)

var planetNames = [...]string{"Saturn", "Jupiter", "Mars", "Sun", "Venus", "Mercury", "Moon"}

func (p Planet) String() string {
	if p < Saturn || p > Moon {
		return fmt.Sprintf("Planet(%d)", int(p))
	}
	return planetNames[p]
}

// firstRulers maps a time.Weekday to the planet ruling its first
// daylight hour, the planet the day is named for.
var firstRulers = [7]Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}

// FirstRuler returns the planet ruling the first daylight hour of the
// weekday.
func FirstRuler(day time.Weekday) Planet {
	return firstRulers[day]
}

// Hour is a single planetary hour. End equals the Start of the next
// hour, so the twenty four hours of a day tile [sunrise, next sunrise)
// without gaps.
type Hour struct {
	Ordinal int  // 1..24
	Day     bool // a daylight hour (ordinals 1..12) rather than night
	Ruler   Planet
	Start   time.Time // inclusive
	End     time.Time // exclusive
}

// ErrInvalidSpan indicates that sunrise, sunset and the next sunrise
// were not strictly increasing.
var ErrInvalidSpan = errors.New("sunrise, sunset and next sunrise must be strictly increasing")

// Compute returns the twenty four planetary hours of the day that
// begins at sunrise on the given weekday and ends at the next day's
// sunrise. Callers must resolve polar conditions beforehand: without
// both a sunrise and a sunset the hours are undefined, and spans that
// are not strictly increasing return ErrInvalidSpan.
func Compute(sunrise, sunset, nextSunrise time.Time, weekday time.Weekday) ([]Hour, error) {
	if !sunrise.Before(sunset) || !sunset.Before(nextSunrise) {
		return nil, fmt.Errorf("%w: %v, %v, %v", ErrInvalidSpan, sunrise, sunset, nextSunrise)
	}
	hrs := make([]Hour, 24)
	ruler := FirstRuler(weekday)
	for i := range hrs {
		var start, end time.Time
		if i < 12 {
			start = boundary(sunrise, sunset, i)
			end = boundary(sunrise, sunset, i+1)
		} else {
			start = boundary(sunset, nextSunrise, i-12)
			end = boundary(sunset, nextSunrise, i-11)
		}
		hrs[i] = Hour{
			Ordinal: i + 1,
			Day:     i < 12,
			Ruler:   ruler,
			Start:   start,
			End:     end,
		}
		ruler = (ruler + 1) % 7
	}
	return hrs, nil
}

// boundary returns the i'th of the twelve evenly spaced boundaries
// from a to b. Boundary 0 is exactly a and boundary 12 exactly b, so
// adjacent spans share their boundary instants exactly.
func boundary(a, b time.Time, i int) time.Time {
	return a.Add(b.Sub(a) * time.Duration(i) / 12)
}
