package workers

import (
	"context"
	"log/slog"
	"mahjong-rooms/contract"
	"mahjong-rooms/observability"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

var _ contract.Worker = (*MonitorWorker)(nil)

// MonitorWorker periodically logs process health (CPU, RSS) next to the
// membership counters, so a stalled gateway or a leak shows up in the logs
// without any external tooling.
type MonitorWorker struct {
	registry   contract.IRegistry
	monitoring *observability.MonitoringManager
	interval   time.Duration
	log        *slog.Logger
}

func NewMonitorWorker(
	log *slog.Logger,
	registry contract.IRegistry,
	monitoring *observability.MonitoringManager,
	interval time.Duration,
) *MonitorWorker {
	return &MonitorWorker{registry: registry, monitoring: monitoring, interval: interval, log: log}
}

func (w *MonitorWorker) Run(ctx context.Context) error {
	w.log.Info("Starting monitor worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			stats := w.monitoring.GetLatest()
			w.log.Info("Health",
				"cpu_percent", cpu,
				"ram_bytes", rss,
				"groups", len(w.registry.GroupIDs()),
				"rooms", w.registry.RoomCount(),
				"joins", stats.Joins,
				"leaves", stats.Leaves,
				"swaps", stats.Swaps,
				"completed", stats.RoomsCompleted,
				"expired", stats.RoomsExpired,
				"broadcasts", stats.Broadcasts,
				"delivery_failures", stats.DeliveryFailures,
			)
		}
	}
}

// selfStats retrieves memory and CPU figures for the given process.
func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
