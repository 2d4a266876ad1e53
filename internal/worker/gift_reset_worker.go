package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/DisruptPoints_Go/internal/event"
	"github.com/osse101/DisruptPoints_Go/internal/logger"
	"github.com/osse101/DisruptPoints_Go/internal/repository"
)

// GiftResetWorker zeroes every account's daily gift counter at local
// midnight, re-arming itself after each run.
type GiftResetWorker struct {
	repo     repository.Account
	bus      event.Bus
	location *time.Location
	timer    *time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewGiftResetWorker creates a worker resetting at midnight in the
// given location. A nil location means time.Local.
func NewGiftResetWorker(repo repository.Account, bus event.Bus, location *time.Location) *GiftResetWorker {
	if location == nil {
		location = time.Local
	}
	return &GiftResetWorker{
		repo:     repo,
		bus:      bus,
		location: location,
		shutdown: make(chan struct{}),
	}
}

// Start schedules the first reset.
func (w *GiftResetWorker) Start() {
	w.scheduleNext()
}

func (w *GiftResetWorker) scheduleNext() {
	duration := w.timeUntilNextReset()

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		// Timers can fire a hair early; if midnight is still clearly
		// ahead, re-arm instead of resetting twice in one day.
		rem := w.timeUntilNextReset()
		if rem > 10*time.Second && rem < 23*time.Hour {
			w.scheduleNext()
			return
		}

		w.executeReset()
		w.scheduleNext()
	})
	w.mu.Unlock()

	logger.FromContext(context.Background()).Info(LogMsgGiftResetScheduled,
		"next_reset_in", duration.Round(time.Second).String())
}

func (w *GiftResetWorker) executeReset() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx := context.Background()
		log := logger.FromContext(ctx)
		log.Info(LogMsgGiftResetStarting)

		affected, err := w.repo.ResetDailyGiftTotals(ctx)
		if err != nil {
			log.Error(LogMsgGiftResetFailed, "error", err)
			return
		}

		log.Info(LogMsgGiftResetCompleted, "accounts_reset", affected)

		if w.bus != nil {
			evt := event.Event{
				Version: event.EventSchemaVersion,
				Type:    event.GiftTotalsReset,
				Payload: map[string]interface{}{
					"reset_time":     time.Now().In(w.location),
					"accounts_reset": affected,
				},
			}
			if err := w.bus.Publish(ctx, evt); err != nil {
				log.Warn("Failed to publish gift reset event", "error", err)
			}
		}
	}()
}

// Shutdown cancels the pending timer and waits for an in-flight reset.
func (w *GiftResetWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)

	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Gift reset worker shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn("Gift reset worker shutdown timeout")
		return ctx.Err()
	}
}

func (w *GiftResetWorker) timeUntilNextReset() time.Duration {
	now := time.Now().In(w.location)
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, w.location)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
