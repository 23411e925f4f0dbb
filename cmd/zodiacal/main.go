// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command zodiacal works with the solar ingress calendar: it converts
// dates between the Gregorian and zodiacal calendars, prints year and
// month tables, lists the planetary hours of a day and generates the
// persisted ingress cache.
package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/datetime"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/zodiacal"
	"cloudeng.io/zodiacal/ephemeris"
	"cloudeng.io/zodiacal/places"
)

var cmdSet *subcmd.CommandSet

type commonFlags struct {
	cmdutil.LoggingFlags
	Config string `subcmd:"config,,'yaml file configuring the ephemeris source, ingress cache and gazetteer'"`
}

type locationFlags struct {
	Coords string `subcmd:"coords,,'observer coordinates as latitude,longitude in decimal degrees'"`
	Place  string `subcmd:"place,,'observer place name, resolved via the configured gazetteer'"`
}

type todayFlags struct {
	commonFlags
	locationFlags
}

type convertFlags struct {
	commonFlags
	locationFlags
}

type yearFlags struct {
	commonFlags
	locationFlags
}

type monthFlags struct {
	commonFlags
	locationFlags
}

type hoursFlags struct {
	commonFlags
	locationFlags
}

func init() {
	todayCmd := subcmd.NewCommand("today",
		subcmd.MustRegisterFlagStruct(&todayFlags{}, nil, nil),
		today, subcmd.WithoutArguments())
	todayCmd.Document(`print today's date in the zodiacal calendar`)

	convertCmd := subcmd.NewCommand("convert",
		subcmd.MustRegisterFlagStruct(&convertFlags{}, nil, nil),
		convert, subcmd.ExactlyNumArguments(1))
	convertCmd.Document(`convert a Gregorian date to the zodiacal calendar`, "<yyyy-mm-dd>")

	yearCmd := subcmd.NewCommand("year",
		subcmd.MustRegisterFlagStruct(&yearFlags{}, nil, nil),
		yearTable, subcmd.ExactlyNumArguments(1))
	yearCmd.Document(`print the months of a zodiacal year with their ingress instants`, "<era-year>")

	monthCmd := subcmd.NewCommand("month",
		subcmd.MustRegisterFlagStruct(&monthFlags{}, nil, nil),
		monthTable, subcmd.ExactlyNumArguments(2))
	monthCmd.Document(`print the days of a zodiacal month with their Gregorian dates`, "<era-year> <month>")

	hoursCmd := subcmd.NewCommand("hours",
		subcmd.MustRegisterFlagStruct(&hoursFlags{}, nil, nil),
		planetaryHours, subcmd.ExactlyNumArguments(1))
	hoursCmd.Document(`print the planetary hours for a date at a location`, "<yyyy-mm-dd>")

	cmdSet = subcmd.NewCommandSet(todayCmd, convertCmd, yearCmd, monthCmd, hoursCmd, cacheSubCmd())
	cmdSet.Document(`work with the zodiacal calendar, a solar calendar whose months begin at the Sun's ingresses into the zodiacal signs.`)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

// config names the ephemeris source and the auxiliary files commands
// may use.
type config struct {
	Ephemeris struct {
		Source    string `yaml:"source"`     // series (the default) or vsop87
		VSOP87Dir string `yaml:"vsop87_dir"` // directory containing the VSOP87 data files
	} `yaml:"ephemeris"`
	Cache  string `yaml:"cache"`  // persisted ingress cache
	Places string `yaml:"places"` // gazetteer of named places
}

// initCommand attaches a logger to the context and loads the yaml
// configuration, if one was named.
func initCommand(ctx context.Context, cf commonFlags) (context.Context, *config, error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return nil, nil, err
	}
	cfg := &config{}
	if cf.Config != "" {
		if err := cmdutil.ParseYAMLConfigFile(cf.Config, cfg); err != nil {
			return nil, nil, err
		}
	}
	return ctxlog.Context(ctx, logger.Logger), cfg, nil
}

func newSource(cfg *config) (ephemeris.Source, error) {
	switch cfg.Ephemeris.Source {
	case "", "series":
		return ephemeris.Series{}, nil
	case "vsop87":
		if dir := cfg.Ephemeris.VSOP87Dir; dir != "" {
			return ephemeris.NewVSOP87Dir(dir)
		}
		return ephemeris.NewVSOP87()
	default:
		return nil, fmt.Errorf("unknown ephemeris source %q, use series or vsop87", cfg.Ephemeris.Source)
	}
}

func newCalendar(ctx context.Context, cfg *config) (*zodiacal.Calendar, error) {
	src, err := newSource(cfg)
	if err != nil {
		return nil, err
	}
	table := ephemeris.NewTable(src)
	if cfg.Cache != "" {
		years, err := ephemeris.LoadCacheFile(cfg.Cache)
		if err != nil {
			return nil, err
		}
		table.Seed(years)
		ctxlog.Logger(ctx).Debug("seeded ingress table", "file", cfg.Cache, "years", len(years))
	}
	return zodiacal.New(src, zodiacal.WithTable(table)), nil
}

// resolve returns the observer's place, nil when none was asked for.
func (lf locationFlags) resolve(cfg *config) (*datetime.Place, error) {
	if lf.Coords != "" && lf.Place != "" {
		return nil, fmt.Errorf("use either --coords or --place, not both")
	}
	switch {
	case lf.Coords != "":
		parts := strings.Split(lf.Coords, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid coordinates %q, expected latitude,longitude", lf.Coords)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude %q: %v", parts[0], err)
		}
		long, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude %q: %v", parts[1], err)
		}
		return &datetime.Place{TimeLocation: time.UTC, Latitude: lat, Longitude: long}, nil
	case lf.Place != "":
		if cfg.Places == "" {
			return nil, fmt.Errorf("--place requires a gazetteer in the configuration")
		}
		db := places.NewDB()
		if err := db.LoadFile(cfg.Places); err != nil {
			return nil, err
		}
		p, ok := db.Lookup(lf.Place)
		if !ok {
			return nil, fmt.Errorf("unknown place %q", lf.Place)
		}
		return &p, nil
	}
	return nil, nil
}

func parseDate(arg string) (datetime.CalendarDate, error) {
	t, err := time.Parse("2006-01-02", arg)
	if err != nil {
		var zero datetime.CalendarDate
		return zero, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", arg)
	}
	return datetime.NewCalendarDate(t.Year(), datetime.Month(t.Month()), t.Day()), nil
}

func parseEraYear(arg string) (int, error) {
	era, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid era year %q: %v", arg, err)
	}
	return zodiacal.ZodiacYear(era), nil
}
