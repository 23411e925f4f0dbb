// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
)

func planetaryHours(ctx context.Context, values interface{}, args []string) error {
	cl := values.(*hoursFlags)
	ctx, cfg, err := initCommand(ctx, cl.commonFlags)
	if err != nil {
		return err
	}
	cal, err := newCalendar(ctx, cfg)
	if err != nil {
		return err
	}
	place, err := cl.resolve(cfg)
	if err != nil {
		return err
	}
	if place == nil {
		return fmt.Errorf("planetary hours need a location, use --coords or --place")
	}
	date, err := parseDate(args[0])
	if err != nil {
		return err
	}
	hrs, err := cal.PlanetaryHours(date, *place)
	if err != nil {
		return err
	}
	loc := place.TimeLocation
	fmt.Printf("planetary hours for %v (%v)\n\n", args[0], loc)
	for _, h := range hrs {
		kind := "day"
		if !h.Day {
			kind = "night"
		}
		fmt.Printf("%2v  %-5v %-8v %v - %v\n", h.Ordinal, kind, h.Ruler,
			h.Start.In(loc).Format("15:04:05"), h.End.In(loc).Format("15:04:05"))
	}
	return nil
}
