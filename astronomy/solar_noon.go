// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package astronomy

import (
	"time"

	"cloudeng.io/datetime"
	"github.com/nathan-osman/go-sunrise"
)

// ApparentSolarNoon returns the midpoint of sunrise and sunset for the
// date at place, in the place's time location. Use RiseAndSet when the
// place may be in polar day or night.
func ApparentSolarNoon(date datetime.CalendarDate, place datetime.Place) time.Time {
	rise, set := sunrise.SunriseSunset(
		place.Latitude, place.Longitude, date.Year(), time.Month(date.Month()), date.Day())
	return inLocation(rise.Add(set.Sub(rise)/2), place)
}

// SolarNoon implements datetime.DynamicTimeOfDay for the solar noon (aka Zenith).
type SolarNoon struct{}

func (s SolarNoon) Name() string {
	return "SolarNoon"
}

func (s SolarNoon) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	return datetime.TimeOfDayFromTime(ApparentSolarNoon(cd, place))
}

// Sunrise implements datetime.DynamicTimeOfDay for the local sunrise.
type Sunrise struct{}

func (s Sunrise) Name() string {
	return "Sunrise"
}

func (s Sunrise) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	rise, _ := sunrise.SunriseSunset(
		place.Latitude, place.Longitude, cd.Year(), time.Month(cd.Month()), cd.Day())
	return datetime.TimeOfDayFromTime(inLocation(rise, place))
}

// Sunset implements datetime.DynamicTimeOfDay for the local sunset.
type Sunset struct{}

func (s Sunset) Name() string {
	return "Sunset"
}

func (s Sunset) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	_, set := sunrise.SunriseSunset(
		place.Latitude, place.Longitude, cd.Year(), time.Month(cd.Month()), cd.Day())
	return datetime.TimeOfDayFromTime(inLocation(set, place))
}
