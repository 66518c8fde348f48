// Package schedule turns pointer gestures and form input into activities:
// the drag-to-schedule controller, the quick-schedule path, and the activity
// lifecycle operations.
package schedule

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mkrause/bethere/internal/model"
	"github.com/mkrause/bethere/internal/store"
	"github.com/mkrause/bethere/internal/timeline"
)

var (
	// ErrDragActive rejects starting a drag while one is in flight. The
	// active gesture keeps going; the new start is ignored.
	ErrDragActive = errors.New("a drag is already active")
	// ErrNoActiveDrag rejects move/drop input outside a drag.
	ErrNoActiveDrag = errors.New("no drag in progress")
	// ErrNoUser rejects scheduling with nobody signed in.
	ErrNoUser = errors.New("no current user")
)

type State string

const (
	StateIdle     State = "idle"
	StateDragging State = "dragging"
)

// Bounds is the horizontal extent of the tracker's drop zone. A release
// outside it cancels the drag.
type Bounds struct {
	Left  float64
	Right float64
}

// Preview is the live drop indicator shown while dragging: the snapped top
// position and the height of the would-be activity.
type Preview struct {
	Template model.StatusTemplate
	Y        float64
	Height   float64
}

// Controller coordinates dragging a status template from the palette onto
// the day tracker. Only one drag may be active at a time.
type Controller struct {
	activities *store.ActivityStore
	users      *store.UserStore
	logger     *slog.Logger
	hourHeight float64
	now        func() time.Time

	mu       sync.Mutex
	state    State
	template model.StatusTemplate
	startY   float64
	currentY float64
}

func NewController(activities *store.ActivityStore, users *store.UserStore, logger *slog.Logger) *Controller {
	return &Controller{
		activities: activities,
		users:      users,
		logger:     logger,
		hourHeight: timeline.HourHeight,
		now:        time.Now,
	}
}

// Start begins a drag of the given template from the initial pointer Y.
func (c *Controller) Start(template model.StatusTemplate, y float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateDragging {
		return ErrDragActive
	}
	c.state = StateDragging
	c.template = template
	c.startY = y
	c.currentY = y
	return nil
}

// Move updates the pointer position and returns the recomputed drop preview.
func (c *Controller) Move(y float64) (Preview, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateDragging {
		return Preview{}, ErrNoActiveDrag
	}
	c.currentY = y
	return c.preview(), nil
}

// Preview returns the current drop preview, if a drag is active.
func (c *Controller) Preview() (Preview, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateDragging {
		return Preview{}, false
	}
	return c.preview(), true
}

func (c *Controller) preview() Preview {
	return Preview{
		Template: c.template,
		Y:        timeline.SnapY(c.currentY, c.hourHeight),
		Height:   timeline.DefaultActivityDuration.Minutes() / 60 * c.hourHeight,
	}
}

// Drop releases the drag at the given pointer position. When x falls inside
// the tracker bounds a new activity is committed at the snapped time with
// the default duration; otherwise the drag is cancelled. Either way the
// controller returns to idle.
func (c *Controller) Drop(x, y float64, bounds Bounds) (model.Activity, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateDragging {
		return model.Activity{}, false, ErrNoActiveDrag
	}
	template := c.template
	c.reset()

	if x < bounds.Left || x > bounds.Right {
		return model.Activity{}, false, nil
	}

	start := timeline.YToTime(y, c.hourHeight, c.activities.SelectedDate())
	a, err := c.commit(template, start, start.Add(timeline.DefaultActivityDuration))
	if err != nil {
		return model.Activity{}, false, err
	}
	return a, true, nil
}

// Cancel abandons the active drag, if any.
func (c *Controller) Cancel() {
	c.mu.Lock()
	c.reset()
	c.mu.Unlock()
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) reset() {
	c.state = StateIdle
	c.template = model.StatusTemplate{}
	c.startY = 0
	c.currentY = 0
}

// QuickSchedule creates an activity from the time-selection form, bypassing
// the drag. An end at or before the start is clamped to one hour after it.
func (c *Controller) QuickSchedule(template model.StatusTemplate, start, end time.Time) (model.Activity, error) {
	if !end.After(start) {
		end = start.Add(time.Hour)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.commit(template, start, end)
}

// NextFullHourSlot returns the prefill for the quick-schedule form: the next
// full wall-clock hour through one hour later. Built from calendar components
// rather than Truncate, which rounds absolute time and misses the hour line
// in zones with fractional UTC offsets.
func NextFullHourSlot(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), now.Day(), now.Hour()+1, 0, 0, 0, now.Location())
	return start, start.Add(time.Hour)
}

// commit builds and stores the activity. Callers hold c.mu.
func (c *Controller) commit(template model.StatusTemplate, start, end time.Time) (model.Activity, error) {
	user, ok := c.users.CurrentUser()
	if !ok {
		return model.Activity{}, ErrNoUser
	}

	now := c.now()
	a := model.Activity{
		ID:                        uuid.NewString(),
		TrackerID:                 c.activities.SelectedTrackerID(),
		OwnerID:                   user.ID,
		StatusTemplateID:          template.ID,
		StartTime:                 start,
		EndTime:                   end,
		UseGroupDefaultVisibility: true,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}
	if err := c.activities.AddActivity(a); err != nil {
		return model.Activity{}, err
	}
	c.logger.Debug("activity scheduled", "activity_id", a.ID, "template", template.Label, "start", start)
	return a, nil
}
