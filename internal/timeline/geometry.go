package timeline

import (
	"time"

	"github.com/mkrause/bethere/internal/model"
)

// Block is the rendered position of an activity on the tracker.
type Block struct {
	Top          float64
	Height       float64
	IsEndingSoon bool
}

// BlockFor computes where an activity sits on the tracker and whether it is
// currently in its ending-soon window.
func BlockFor(a model.Activity, hourHeight float64, now time.Time) Block {
	return Block{
		Top:          TimeToY(a.StartTime, hourHeight),
		Height:       a.EndTime.Sub(a.StartTime).Minutes() / 60 * hourHeight,
		IsEndingSoon: EndingSoon(a, now),
	}
}

// EndingSoon reports whether the activity's owner has signaled imminent
// departure and the window has not yet elapsed.
func EndingSoon(a model.Activity, now time.Time) bool {
	return a.EndingSoonAt != nil && now.Before(*a.EndingSoonAt)
}
