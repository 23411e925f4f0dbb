// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package astronomy provides the sun events the zodiacal calendar is
// anchored to: sunrise, sunset and solar noon for a date and place,
// with polar day and polar night detection, and the equinox and
// solstice dates.
package astronomy

import (
	"errors"
	"fmt"
	"time"

	"cloudeng.io/datetime"
	"github.com/nathan-osman/go-sunrise"
)

var (
	// ErrPolar matches both polar conditions via errors.Is.
	ErrPolar = errors.New("the sun does not cross the horizon")

	// ErrPolarDay indicates the sun stays above the horizon all day.
	ErrPolarDay = fmt.Errorf("polar day: %w", ErrPolar)

	// ErrPolarNight indicates the sun stays below the horizon all day.
	ErrPolarNight = fmt.Errorf("polar night: %w", ErrPolar)
)

// SunTimes are the sun events of a single civil day at a place, in the
// place's time location.
type SunTimes struct {
	Rise, Set, Noon time.Time
}

// RiseAndSet returns the sunrise, sunset and solar noon for the date
// at place. Noon is the midpoint of rise and set. On days the sun
// never crosses the horizon there are no events and the error is
// ErrPolarDay or ErrPolarNight.
func RiseAndSet(date datetime.CalendarDate, place datetime.Place) (SunTimes, error) {
	rise, set := sunrise.SunriseSunset(
		place.Latitude, place.Longitude,
		date.Year(), time.Month(date.Month()), date.Day())
	if rise.IsZero() || set.IsZero() {
		return SunTimes{}, polarCondition(date, place)
	}
	noon := rise.Add(set.Sub(rise) / 2)
	return SunTimes{
		Rise: inLocation(rise, place),
		Set:  inLocation(set, place),
		Noon: inLocation(noon, place),
	}, nil
}

// polarCondition classifies a day without sun events: when the sun's
// declination falls in the observer's hemisphere it never sets, and
// otherwise it never rises.
func polarCondition(date datetime.CalendarDate, place datetime.Place) error {
	d := sunrise.MeanSolarNoon(place.Longitude, date.Year(), time.Month(date.Month()), date.Day())
	anomaly := sunrise.SolarMeanAnomaly(d)
	center := sunrise.EquationOfCenter(anomaly)
	lon := sunrise.EclipticLongitude(anomaly, center, d)
	if decl := sunrise.Declination(lon); (decl >= 0) == (place.Latitude >= 0) {
		return ErrPolarDay
	}
	return ErrPolarNight
}

func inLocation(t time.Time, place datetime.Place) time.Time {
	if place.TimeLocation == nil {
		return t
	}
	return t.In(place.TimeLocation)
}
