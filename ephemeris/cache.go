// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ephemeris

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"cloudeng.io/errors"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// cacheEntry is the wire form of an Event. The field names match the
// JSON written by earlier generations of the cache generator so that
// existing cache files remain readable.
type cacheEntry struct {
	Sign      int     `json:"sign_index"`
	Longitude float64 `json:"longitude"`
	UTC       string  `json:"utc_iso"`
}

// ReadCache decodes a year-keyed ingress cache. Every year must carry
// exactly twelve entries in chronological order, with sign indices
// 0 through 11 and each longitude on the sign's boundary. All invalid
// years are reported, not just the first.
func ReadCache(r io.Reader) (map[int][]Event, error) {
	var raw map[string][]cacheEntry
	if err := json.UnmarshalRead(r, &raw); err != nil {
		return nil, err
	}
	years := make(map[int][]Event, len(raw))
	var errs errors.M
	for key, entries := range raw {
		year, err := strconv.Atoi(key)
		if err != nil {
			errs.Append(fmt.Errorf("invalid year key %q", key))
			continue
		}
		evs, err := eventsForYear(entries)
		if err != nil {
			errs.Append(fmt.Errorf("year %v: %v", year, err))
			continue
		}
		years[year] = evs
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return years, nil
}

func eventsForYear(entries []cacheEntry) ([]Event, error) {
	if len(entries) != 12 {
		return nil, fmt.Errorf("%v ingress entries, need 12", len(entries))
	}
	evs := make([]Event, len(entries))
	prev := 0.0
	for i, entry := range entries {
		if entry.Sign != i {
			return nil, fmt.Errorf("entry %v: sign index %v out of order", i, entry.Sign)
		}
		if entry.Longitude != float64(i)*30 {
			return nil, fmt.Errorf("entry %v: longitude %v is not %v", i, entry.Longitude, i*30)
		}
		when, err := time.Parse(time.RFC3339, entry.UTC)
		if err != nil {
			return nil, fmt.Errorf("entry %v: %v", i, err)
		}
		jd := TimeToJD(when)
		if jd <= prev {
			return nil, fmt.Errorf("entry %v: ingress instants are not increasing", i)
		}
		prev = jd
		evs[i] = Event{Sign: entry.Sign, JD: jd}
	}
	return evs, nil
}

// WriteCache encodes years in the cache's JSON form: an object keyed
// by year, each year an array of twelve entries with RFC 3339 UTC
// instants.
func WriteCache(w io.Writer, years map[int][]Event) error {
	out := make(map[string][]cacheEntry, len(years))
	for year, evs := range years {
		entries := make([]cacheEntry, len(evs))
		for i, ev := range evs {
			entries[i] = cacheEntry{
				Sign:      ev.Sign,
				Longitude: ev.Longitude(),
				UTC:       ev.Time().Format(time.RFC3339Nano),
			}
		}
		out[strconv.Itoa(year)] = entries
	}
	return json.MarshalWrite(w, out, jsontext.WithIndent("  "))
}

// LoadCacheFile reads and validates a persisted ingress cache.
func LoadCacheFile(path string) (map[int][]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	years, err := ReadCache(f)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return years, nil
}

// WriteCacheFile writes years to path, creating or truncating it.
func WriteCacheFile(path string, years map[int][]Event) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCache(f, years); err != nil {
		f.Close()
		return fmt.Errorf("%v: %w", path, err)
	}
	return f.Close()
}
