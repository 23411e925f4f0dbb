// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/zodiacal"
)

func today(ctx context.Context, values interface{}, args []string) error {
	cl := values.(*todayFlags)
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
	zd, err := cal.Today(place)
	if err != nil {
		return err
	}
	fmt.Printf("%v\n", zd.Full())
	fmt.Printf("short:     %v\n", zd.Short())
	fmt.Printf("gregorian: %v\n", time.Now().UTC().Format("2006-01-02"))
	return nil
}

func convert(ctx context.Context, values interface{}, args []string) error {
	cl := values.(*convertFlags)
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
	date, err := parseDate(args[0])
	if err != nil {
		return err
	}
	zd, err := cal.FromGregorian(date, place)
	if err != nil {
		return err
	}
	fmt.Printf("%v\n", zd.Full())
	fmt.Printf("short: %v\n", zd.Short())
	return nil
}

func yearTable(ctx context.Context, values interface{}, args []string) error {
	cl := values.(*yearFlags)
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
	year, err := parseEraYear(args[0])
	if err != nil {
		return err
	}
	evs, err := cal.Ingresses(year)
	if err != nil {
		return err
	}
	fmt.Printf("zodiacal year %v (gregorian %v/%v)\n\n", zodiacal.EraLabel(year), year, year+1)
	fmt.Printf("%3v  %-12v %-2v %-17v %v\n", "nr", "month", "", "ingress (utc)", "days")
	total := 0
	for i, ev := range evs {
		m := zodiacal.Month(i + 1)
		n, err := cal.MonthLength(year, m, place)
		if err != nil {
			return err
		}
		total += n
		fmt.Printf("%3v  %-12v %-2c %-17v %4v\n",
			i+1, m, m.Sign().Symbol, ev.Time().Format("02 Jan 2006 15:04"), n)
	}
	fmt.Printf("\n%v days\n", total)
	return nil
}

func monthTable(ctx context.Context, values interface{}, args []string) error {
	cl := values.(*monthFlags)
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
	year, err := parseEraYear(args[0])
	if err != nil {
		return err
	}
	num, err := strconv.Atoi(args[1])
	if err != nil || num < 1 || num > 12 {
		return fmt.Errorf("invalid month %q, expected 1..12", args[1])
	}
	month := zodiacal.Month(num)
	length, err := cal.MonthLength(year, month, place)
	if err != nil {
		return err
	}
	sign := month.Sign()
	span := zodiacal.MonthRange{Calendar: cal, Month: month, Place: place}
	fmt.Printf("%c %v (%v), %v: %v days, %v° to %v° solar longitude\n",
		sign.Symbol, sign.Name, sign.Latin, zodiacal.EraLabel(year), length,
		sign.Longitude, sign.Longitude+30)
	fmt.Printf("gregorian %v\n\n", span.Evaluate(year))
	for day := 1; day <= length; day++ {
		date, err := cal.ToGregorian(zodiacal.Date{Year: year, Month: month, Day: day}, place)
		if err != nil {
			return err
		}
		when := date.Time(datetime.NewTimeOfDay(0, 0, 0), time.UTC)
		fmt.Printf("%3v  %v %v\n", day, when.Format("2006-01-02"), when.Weekday())
	}
	return nil
}
