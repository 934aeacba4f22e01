package workers

import (
	"context"
	"log/slog"
	"mahjong-rooms/contract"
	"time"
)

var _ contract.Worker = (*DailyResetWorker)(nil)

// DailyResetWorker clears the permanent rooms and the completion log of
// every group once per calendar day, at local midnight. Custom rooms are
// out of its reach: the expiry sweep alone decides when those die.
type DailyResetWorker struct {
	registry contract.IRegistry
	log      *slog.Logger
}

func NewDailyResetWorker(log *slog.Logger, registry contract.IRegistry) *DailyResetWorker {
	return &DailyResetWorker{registry: registry, log: log}
}

func (w *DailyResetWorker) Run(ctx context.Context) error {
	w.log.Info("Starting daily reset worker")
	for {
		timer := time.NewTimer(time.Until(nextMidnight(time.Now())))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
			groups := w.registry.ResetDailyAll()
			w.log.Info("Daily reset done", "groups", groups)
		}
	}
}
