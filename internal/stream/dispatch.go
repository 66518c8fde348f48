package stream

import (
	"encoding/json"
	"log/slog"

	"github.com/mkrause/bethere/internal/store"
)

// Dispatcher maps inbound envelopes to store mutations. Parse failures and
// mutations against ids the client no longer holds are logged and dropped;
// the next successful event or reconnect recovers the state.
type Dispatcher struct {
	activities    *store.ActivityStore
	friends       *store.FriendStore
	notifications *store.NotificationStore
	logger        *slog.Logger
}

func NewDispatcher(activities *store.ActivityStore, friends *store.FriendStore, notifications *store.NotificationStore, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		activities:    activities,
		friends:       friends,
		notifications: notifications,
		logger:        logger,
	}
}

// Handle applies one inbound envelope to the stores.
func (d *Dispatcher) Handle(env Envelope) {
	switch env.Event {
	case EventActivityCreated:
		var a ActivityData
		if !d.decode(env, &a) {
			return
		}
		if err := d.activities.AddActivity(a); err != nil {
			d.drop(env, err)
		}

	case EventActivityUpdated:
		var p ActivityPatch
		if !d.decode(env, &p) {
			return
		}
		_, err := d.activities.UpdateActivity(p.ID, store.ActivityUpdate{
			Title:                     p.Title,
			StartTime:                 p.StartTime,
			EndTime:                   p.EndTime,
			UseGroupDefaultVisibility: p.UseGroupDefaultVisibility,
		})
		if err != nil {
			d.drop(env, err)
		}

	case EventActivityDeleted:
		var ref ActivityRef
		if !d.decode(env, &ref) {
			return
		}
		if err := d.activities.RemoveActivity(ref.ID); err != nil {
			d.drop(env, err)
		}

	case EventActivityEndingSoon:
		var e EndingSoonData
		if !d.decode(env, &e) {
			return
		}
		if err := d.activities.SetActivityEndingSoon(e.ActivityID, e.EndingSoonAt); err != nil {
			d.drop(env, err)
		}

	case EventParticipantJoined:
		var p ParticipantData
		if !d.decode(env, &p) {
			return
		}
		if err := d.activities.AddParticipant(p.ActivityID, p); err != nil {
			d.drop(env, err)
		}

	case EventParticipantLeft:
		var p ParticipantLeftData
		if !d.decode(env, &p) {
			return
		}
		if err := d.activities.RemoveParticipant(p.ActivityID, p.UserID); err != nil {
			d.drop(env, err)
		}

	case EventPresenceUpdated:
		var p PresenceData
		if !d.decode(env, &p) {
			return
		}
		if err := d.friends.SetFriendOnline(p.UserID, p.IsOnline); err != nil {
			d.drop(env, err)
		}

	case EventNotification:
		var n NotificationData
		if !d.decode(env, &n) {
			return
		}
		d.notifications.Add(n)

	default:
		d.logger.Debug("ignoring unknown stream event", "event", string(env.Event))
	}
}

func (d *Dispatcher) decode(env Envelope, v any) bool {
	if err := json.Unmarshal(env.Data, v); err != nil {
		d.logger.Warn("bad stream payload", "event", string(env.Event), "error", err)
		return false
	}
	return true
}

func (d *Dispatcher) drop(env Envelope, err error) {
	d.logger.Debug("dropped stream event", "event", string(env.Event), "error", err)
}
