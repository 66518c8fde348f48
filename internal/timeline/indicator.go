package timeline

import (
	"context"
	"sync"
	"time"
)

// NowIndicator periodically recomputes the current-time marker position and
// hands it to a callback. The tracker view uses it to keep the "now" line in
// place without re-rendering on every frame.
type NowIndicator struct {
	mu         sync.Mutex
	hourHeight float64
	interval   time.Duration
	onTick     func(y float64)
	cancel     context.CancelFunc
	done       chan struct{}
}

// NewNowIndicator creates an indicator ticking once per minute.
func NewNowIndicator(hourHeight float64, onTick func(y float64)) *NowIndicator {
	return &NowIndicator{
		hourHeight: hourHeight,
		interval:   time.Minute,
		onTick:     onTick,
	}
}

// Start begins the tick loop. The callback fires immediately once, then on
// every interval until Stop or context cancellation.
func (n *NowIndicator) Start(ctx context.Context) {
	n.mu.Lock()
	ctx, n.cancel = context.WithCancel(ctx)
	n.done = make(chan struct{})
	interval := n.interval
	n.mu.Unlock()

	go func() {
		defer close(n.done)
		n.onTick(TimeToY(time.Now(), n.hourHeight))

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				n.onTick(TimeToY(time.Now(), n.hourHeight))
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop cancels the tick loop and waits for it to exit.
func (n *NowIndicator) Stop() {
	n.mu.Lock()
	cancel, done := n.cancel, n.done
	n.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
