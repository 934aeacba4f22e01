package workers

import (
	"context"
	"log/slog"
	"mahjong-rooms/contract"
	"mahjong-rooms/observability"
	"time"
)

var _ contract.Worker = (*ExpirySweepWorker)(nil)

// ExpirySweepWorker deletes custom rooms older than the configured
// lifespan, occupants included. Eviction is silent at this layer.
type ExpirySweepWorker struct {
	registry   contract.IRegistry
	interval   time.Duration
	ttl        time.Duration
	monitoring *observability.MonitoringManager
	log        *slog.Logger
}

func NewExpirySweepWorker(
	log *slog.Logger,
	registry contract.IRegistry,
	interval, ttl time.Duration,
	monitoring *observability.MonitoringManager,
) *ExpirySweepWorker {
	return &ExpirySweepWorker{registry: registry, interval: interval, ttl: ttl, monitoring: monitoring, log: log}
}

func (w *ExpirySweepWorker) Run(ctx context.Context) error {
	w.log.Info("Starting expiry sweep worker", "interval", w.interval, "ttl", w.ttl)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			evicted := w.registry.SweepExpiredAll(time.Now(), w.ttl)
			for groupID, ids := range evicted {
				w.monitoring.AddRoomsExpired(uint64(len(ids)))
				w.log.Info("Expired rooms removed", "group", groupID, "rooms", ids)
			}
		}
	}
}
