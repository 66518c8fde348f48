package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mkrause/bethere/internal/config"
	"github.com/mkrause/bethere/internal/demo"
	"github.com/mkrause/bethere/internal/logging"
	"github.com/mkrause/bethere/internal/prefs"
	"github.com/mkrause/bethere/internal/schedule"
	"github.com/mkrause/bethere/internal/store"
	"github.com/mkrause/bethere/internal/stream"
	"github.com/mkrause/bethere/internal/timeline"
)

func main() {
	cfg := config.Load()
	logger := logging.Setup(cfg.LogLevel, nil)

	preferences, err := prefs.Open(cfg.PrefsPath, logger)
	if err != nil {
		log.Fatalf("failed to open preferences: %v", err)
	}
	defer preferences.Close()

	activities := store.NewActivityStore()
	friends := store.NewFriendStore()
	notifications := store.NewNotificationStore()
	users := store.NewUserStore()

	if err := demo.Seed(demo.Build(time.Now()), activities, friends, users); err != nil {
		log.Fatalf("failed to seed demo data: %v", err)
	}

	// A user persisted from a previous session wins over the demo user.
	if u, ok := preferences.CurrentUser(); ok {
		users.SetCurrentUser(u)
	}
	if tracker := preferences.String(prefs.KeySelectedTracker, ""); tracker != "" {
		if err := activities.SelectTracker(tracker); err != nil {
			logger.Debug("stored tracker selection no longer exists", "tracker_id", tracker)
		}
	}

	currentUser, _ := users.CurrentUser()
	userID := currentUser.ID
	if cfg.UserID != "" {
		userID = cfg.UserID
	}

	// Pencil in a status at the next full hour so the demo day has something
	// upcoming in it.
	controller := schedule.NewController(activities, users, logger)
	if templates := activities.StatusTemplates(); len(templates) > 0 {
		start, end := schedule.NextFullHourSlot(time.Now())
		if a, err := controller.QuickSchedule(templates[0], start, end); err != nil {
			logger.Warn("quick schedule demo activity", "error", err)
		} else {
			logger.Info("scheduled demo activity", "activity_id", a.ID, "start", a.StartTime)
		}
	}

	dispatcher := stream.NewDispatcher(activities, friends, notifications, logger)
	client := stream.NewClient(cfg.StreamURL, userID, dispatcher, logger)

	ctx := context.Background()
	client.Start(ctx)
	defer client.Stop()

	indicator := timeline.NewNowIndicator(timeline.HourHeight, func(y float64) {
		logger.Debug("now indicator", "y", y)
	})
	indicator.Start(ctx)
	defer indicator.Stop()

	fmt.Printf("bethere connected to %s as %s\n", cfg.StreamURL, userID)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down...")
	if u, ok := users.CurrentUser(); ok {
		if err := preferences.SetCurrentUser(u); err != nil {
			logger.Warn("persist user record", "error", err)
		}
	}
	if tracker := activities.SelectedTrackerID(); tracker != "" {
		if err := preferences.SetString(prefs.KeySelectedTracker, tracker); err != nil {
			logger.Warn("persist tracker selection", "error", err)
		}
	}
}
