// Package timeline converts between calendar time-of-day and vertical pixel
// position on a 24-hour day tracker, with snapping to a fixed granularity.
package timeline

import (
	"math"
	"time"
)

const (
	// HourHeight is the default pixels-per-hour scale of the day tracker.
	HourHeight = 60.0
	// SnapInterval is the time granularity drop positions are rounded to.
	SnapInterval = 15 * time.Minute
	// DefaultActivityDuration is the length of an activity created by drop.
	DefaultActivityDuration = 60 * time.Minute
	// MinActivityDuration is the shortest activity the tracker renders.
	MinActivityDuration = 15 * time.Minute
	// QuickExitWindow is how far ahead of now a quick exit marks an
	// activity as ending soon.
	QuickExitWindow = 5 * time.Minute

	HoursPerDay   = 24
	minutesPerDay = 24 * 60
)

// YToTime maps a vertical pixel offset to a time on the given day, snapped to
// SnapInterval. The snapped minute is folded into total minutes first so that
// a minute value of 60 carries into the next hour instead of clamping.
func YToTime(y, hourHeight float64, day time.Time) time.Time {
	hour := int(math.Floor(y / hourHeight))
	remaining := y - float64(hour)*hourHeight

	snap := int(SnapInterval / time.Minute)
	minute := int(math.Round(remaining/hourHeight*60/float64(snap))) * snap

	total := hour*60 + minute
	if total < 0 {
		total = 0
	}
	if total > minutesPerDay {
		total = minutesPerDay
	}

	return StartOfDay(day).Add(time.Duration(total) * time.Minute)
}

// TimeToY maps a time-of-day to a vertical pixel offset. It is the exact
// inverse of YToTime for times already aligned to SnapInterval.
func TimeToY(t time.Time, hourHeight float64) float64 {
	return float64(t.Hour())*hourHeight + float64(t.Minute())/60*hourHeight
}

// SnapY rounds a pixel offset to the nearest quarter-hour increment, used for
// the drop preview while dragging.
func SnapY(y, hourHeight float64) float64 {
	quarter := hourHeight / 4
	return math.Round(y/quarter) * quarter
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
