// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package places provides named place lookups from a small gazetteer,
// mapping a place name to its coordinates and time zone.
package places

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

type DB struct {
	lookup map[string]datetime.Place
}

func NewDB() *DB {
	return &DB{lookup: make(map[string]datetime.Place)}
}

// Lookup returns the place with the given name. Names match case
// insensitively.
func (db *DB) Lookup(name string) (datetime.Place, bool) {
	p, ok := db.lookup[strings.ToLower(name)]
	return p, ok
}

// Len returns the number of places loaded.
func (db *DB) Len() int {
	return len(db.lookup)
}

// Load parses gazetteer data with one tab separated record per line:
// name, latitude, longitude and IANA time zone, eg:
//
//	London	51.5074	-0.1278	Europe/London
//
// Blank lines are ignored. A later record for the same name replaces
// the earlier one.
func (db *DB) Load(data []byte) error {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if len(strings.TrimSpace(scanner.Text())) == 0 {
			continue
		}
		parts := strings.Split(scanner.Text(), "\t")
		if len(parts) != 4 {
			return fmt.Errorf("invalid line, wrong number of fields: (%v != 4) %v", len(parts), scanner.Text())
		}
		lat, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return fmt.Errorf("invalid latitude: %v: %v", parts[1], err)
		}
		long, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return fmt.Errorf("invalid longitude: %v: %v", parts[2], err)
		}
		loc, err := time.LoadLocation(parts[3])
		if err != nil {
			return fmt.Errorf("invalid time zone: %v: %v", parts[3], err)
		}
		db.lookup[strings.ToLower(parts[0])] = datetime.Place{
			TimeLocation: loc,
			Latitude:     lat,
			Longitude:    long,
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read data: %v", err)
	}
	return nil
}

// LoadFile reads and parses the gazetteer file at path.
func (db *DB) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := db.Load(data); err != nil {
		return fmt.Errorf("%v: %v", path, err)
	}
	return nil
}
