// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ephemeris

import (
	"fmt"
	"slices"
	"sync"
	"time"
)

// Event records a single ingress: the instant at which the Sun's
// longitude reaches Sign×30 degrees.
type Event struct {
	Sign int     // sign index, 0 (Aries) through 11 (Pisces)
	JD   float64 // UT Julian day of the crossing
}

// Time returns the ingress instant in UTC.
func (e Event) Time() time.Time {
	return JDToTime(e.JD)
}

// Longitude returns the crossed sign boundary in degrees.
func (e Event) Longitude() float64 {
	return float64(e.Sign) * 30
}

// Table caches ingress events by zodiac year. A zodiac year's twelve
// events run from its Aries ingress, around March 20 of the same
// Gregorian year, through the following Pisces ingress. Each year is
// computed at most once and the cached events are never mutated, so a
// Table may be shared freely between goroutines.
type Table struct {
	src   Source
	mu    sync.Mutex
	years map[int][]Event
}

// NewTable returns a Table drawing on src.
func NewTable(src Source) *Table {
	return &Table{src: src, years: map[int][]Event{}}
}

// Seed installs precomputed ingress events, typically read from a
// persisted cache, bypassing computation for those years. Seeded
// events are trusted as given; use ReadCache to validate external
// data first.
func (t *Table) Seed(years map[int][]Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for year, evs := range years {
		t.years[year] = slices.Clone(evs)
	}
}

// Year returns the twelve ingress events of the zodiac year in
// chronological order, computing and caching them if needed. The lock
// is held across the computation so that concurrent callers asking
// for the same year compute it once. Callers must not modify the
// returned slice.
func (t *Table) Year(year int) ([]Event, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if evs, ok := t.years[year]; ok {
		return evs, nil
	}
	if first, last := t.src.Years(); year < first || year > last {
		return nil, fmt.Errorf("%w: %v is not in %v..%v", ErrYearOutOfRange, year, first, last)
	}
	evs, err := t.compute(year)
	if err != nil {
		return nil, err
	}
	t.years[year] = evs
	return evs, nil
}

// signSearchOffset, in days, advances each search past the ingress
// just found. It must stay under the shortest zodiacal month, a little
// over 29 days.
const signSearchOffset = 25

func (t *Table) compute(year int) ([]Event, error) {
	// Anchor the Aries search well before the equinox so that the
	// initial bracket is consistent from year to year.
	start := TimeToJD(time.Date(year, time.February, 1, 0, 0, 0, 0, time.UTC))
	evs := make([]Event, 0, 12)
	for sign := 0; sign < 12; sign++ {
		jd, err := Crossing(t.src, float64(sign)*30, start)
		if err != nil {
			return nil, fmt.Errorf("sign %v of year %v: %w", sign, year, err)
		}
		evs = append(evs, Event{Sign: sign, JD: jd})
		start = jd + signSearchOffset
	}
	return evs, nil
}
