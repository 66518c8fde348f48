package timeline

import (
	"testing"
	"time"
)

var day = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

func TestYToTimeDropScenario(t *testing.T) {
	// Dropping at y=540 with 60px hours lands on 09:00.
	got := YToTime(540, 60, day)
	want := day.Add(9 * time.Hour)
	if !got.Equal(want) {
		t.Errorf("YToTime(540) = %v, want %v", got, want)
	}
}

func TestYToTimeSnapsToQuarterHour(t *testing.T) {
	tests := []struct {
		y    float64
		want time.Duration
	}{
		{0, 0},
		{7, 0},                 // rounds down to :00
		{8, 15 * time.Minute},  // rounds up to :15
		{30, 30 * time.Minute}, // exact half hour
		{59, time.Hour},        // minute rounds to 60 and carries
		{90, time.Hour + 30*time.Minute},
		{605, 10 * time.Hour},
	}
	for _, tt := range tests {
		got := YToTime(tt.y, 60, day)
		want := day.Add(tt.want)
		if !got.Equal(want) {
			t.Errorf("YToTime(%v) = %v, want %v", tt.y, got, want)
		}
	}
}

func TestYToTimeHourBoundaryCarry(t *testing.T) {
	// y just below an hour line rounds its minutes to 60; the result must be
	// the next hour boundary, not hour:59 or a clamped value.
	got := YToTime(119, 60, day)
	want := day.Add(2 * time.Hour)
	if !got.Equal(want) {
		t.Errorf("YToTime(119) = %v, want %v", got, want)
	}
}

func TestRoundTripAtSnappedTimes(t *testing.T) {
	for _, hourHeight := range []float64{40, 60, 80, 120} {
		for minutes := 0; minutes < 24*60; minutes += 15 {
			want := day.Add(time.Duration(minutes) * time.Minute)
			got := YToTime(TimeToY(want, hourHeight), hourHeight, day)
			if !got.Equal(want) {
				t.Fatalf("round trip at %v (hourHeight=%v): got %v", want, hourHeight, got)
			}
		}
	}
}

func TestYToTimeMonotonic(t *testing.T) {
	prev := YToTime(0, 60, day)
	for y := 1.0; y <= 24*60; y++ {
		cur := YToTime(y, 60, day)
		if cur.Before(prev) {
			t.Fatalf("YToTime not monotonic at y=%v: %v < %v", y, cur, prev)
		}
		prev = cur
	}
}

func TestYToTimeClampsToDay(t *testing.T) {
	if got := YToTime(-10, 60, day); !got.Equal(day) {
		t.Errorf("negative y = %v, want start of day", got)
	}
	endOfDay := day.Add(24 * time.Hour)
	if got := YToTime(24*60+100, 60, day); !got.Equal(endOfDay) {
		t.Errorf("overflow y = %v, want end of day", got)
	}
}

func TestSnapY(t *testing.T) {
	tests := []struct {
		y, want float64
	}{
		{0, 0},
		{7, 0},
		{8, 15},
		{22, 15},
		{23, 30},
		{540, 540},
	}
	for _, tt := range tests {
		if got := SnapY(tt.y, 60); got != tt.want {
			t.Errorf("SnapY(%v) = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestTimeToY(t *testing.T) {
	at := day.Add(9*time.Hour + 30*time.Minute)
	if got := TimeToY(at, 60); got != 570 {
		t.Errorf("TimeToY(09:30) = %v, want 570", got)
	}
}
