// Package oadate converts between OLE automation dates and time.Time.
//
// An OA date is a double counting days since 1899-12-30; the fractional
// part is the time of day. The ERP emits several date columns in this
// format. For negative values the fraction still represents a forward
// time of day, which is why it is folded in twice when converting.
package oadate

import (
	"math"
	"time"
)

const (
	msDayOffset     = 25569 // days between 1899-12-30 and the Unix epoch
	dayMilliseconds = 86400000
	minuteMillis    = 60 * 1000
)

func oaDateToMillis(oaDate float64) float64 {
	ms := (oaDate - msDayOffset) * dayMilliseconds
	if oaDate < 0 {
		frac := (oaDate - math.Trunc(oaDate)) * dayMilliseconds
		if frac != 0 {
			ms -= frac * 2
		}
	}
	return ms
}

func millisToOADate(ms float64) float64 {
	oad := (ms / dayMilliseconds) + msDayOffset
	if oad < 0 {
		frac := oad - math.Trunc(oad)
		if frac != 0 {
			oad = math.Ceil(oad) - frac - 2
		}
	}
	return oad
}

// FromOADate converts a UTC OA date to a UTC time.
func FromOADate(oaDate float64) time.Time {
	return FromOADateOffset(oaDate, 0)
}

// FromOADateOffset converts an OA date expressed in a zone that is
// offsetToUTCMinutes away from UTC into a UTC time.
func FromOADateOffset(oaDate float64, offsetToUTCMinutes int) time.Time {
	ms := oaDateToMillis(oaDate) + float64(offsetToUTCMinutes*minuteMillis)
	return time.UnixMilli(int64(math.Round(ms))).UTC()
}

// FromOADateTime converts a UTC OA datetime, guarding against the
// sub-second truncation the doubles arrive with.
func FromOADateTime(oaDate float64) time.Time {
	return FromOADate(oaDate + 0.00001157404)
}

// ToOADate converts a time to a UTC OA date.
func ToOADate(t time.Time) float64 {
	return millisToOADate(float64(t.UnixMilli()))
}

// DatePart strips the time of day, leaving the whole-day count.
func DatePart(oaDate float64) float64 {
	return math.Trunc(oaDate)
}

// TimePart strips the day, leaving only the fractional time of day.
func TimePart(oaDate float64) float64 {
	v := math.Abs(oaDate)
	return v - math.Floor(v)
}

// FirstMonthDayOADate returns the OA date of the first day of t's month.
func FirstMonthDayOADate(t time.Time) float64 {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return ToOADate(first)
}

// LastMonthDayOADate returns the OA date of the last day of t's month.
func LastMonthDayOADate(t time.Time) float64 {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return ToOADate(last)
}
