// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/zodiacal/ephemeris"
)

type cacheGenerateFlags struct {
	commonFlags
	Start  int    `subcmd:"start,2000,'first year to compute'"`
	End    int    `subcmd:"end,2100,'last year to compute'"`
	Output string `subcmd:"output,ingress_cache.json,'file to write the cache to'"`
}

func cacheSubCmd() *subcmd.Command {
	generateCmd := subcmd.NewCommand("generate",
		subcmd.MustRegisterFlagStruct(&cacheGenerateFlags{}, nil, nil),
		cacheGenerate, subcmd.WithoutArguments())
	generateCmd.Document(`compute the ingress instants for a range of years and write them to a cache file`)

	summary := `manage the persisted ingress cache.`
	cacheCmds := subcmd.NewCommandSet(generateCmd)
	cacheCmds.Document(summary)
	cl := subcmd.NewCommandLevel("cache", cacheCmds)
	cl.Document(summary)
	return cl
}

func cacheGenerate(ctx context.Context, values interface{}, args []string) error {
	cl := values.(*cacheGenerateFlags)
	ctx, cfg, err := initCommand(ctx, cl.commonFlags)
	if err != nil {
		return err
	}
	if cl.End < cl.Start {
		return fmt.Errorf("end year %v precedes start year %v", cl.End, cl.Start)
	}
	src, err := newSource(cfg)
	if err != nil {
		return err
	}
	logger := ctxlog.Logger(ctx)
	table := ephemeris.NewTable(src)
	years := map[int][]ephemeris.Event{}
	start := time.Now()
	var errs errors.M
	for year := cl.Start; year <= cl.End; year++ {
		evs, err := table.Year(year)
		if err != nil {
			errs.Append(fmt.Errorf("year %v: %w", year, err))
			continue
		}
		years[year] = evs
		logger.Debug("computed ingresses", "year", year, "aries", evs[0].Time())
	}
	if len(years) == 0 {
		return errs.Err()
	}
	if err := ephemeris.WriteCacheFile(cl.Output, years); err != nil {
		errs.Append(err)
		return errs.Err()
	}
	logger.Info("wrote ingress cache", "file", cl.Output, "years", len(years), "took", time.Since(start))
	fmt.Printf("%v years (%v..%v), %v ingress instants: %v\n",
		len(years), cl.Start, cl.End, 12*len(years), cl.Output)
	return errs.Err()
}
