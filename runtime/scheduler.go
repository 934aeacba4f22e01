package runtime

import (
	"context"
	"log/slog"
	"mahjong-rooms/contract"
	"mahjong-rooms/domain"
	"mahjong-rooms/observability"
	"mahjong-rooms/runtime/workers"
	"time"
)

// SchedulerConfig carries the knobs of the three periodic processes.
type SchedulerConfig struct {
	BroadcastTargets []domain.GroupID
	PushWindowStart  int // inclusive hour
	PushWindowEnd    int // exclusive hour
	SweepInterval    time.Duration
	RoomTTL          time.Duration
	MonitorInterval  time.Duration
	RestartInterval  time.Duration
}

// Scheduler bundles the daily reset, hourly broadcast and expiry sweep
// (plus the health monitor) under one supervisor so callers start and
// stop them as a unit.
type Scheduler struct {
	sup  *workers.Supervisor
	done chan struct{}
	log  *slog.Logger
}

func NewScheduler(
	log *slog.Logger,
	registry *Registry,
	gateway contract.BroadcastGateway,
	render workers.RenderFunc,
	monitoring *observability.MonitoringManager,
	cfg SchedulerConfig,
) *Scheduler {
	sup := workers.NewSupervisor(log, cfg.RestartInterval)
	sup.Add(
		workers.NewDailyResetWorker(log, registry),
		workers.NewHourlyBroadcastWorker(log, registry, gateway, render,
			cfg.BroadcastTargets, cfg.PushWindowStart, cfg.PushWindowEnd, monitoring),
		workers.NewExpirySweepWorker(log, registry, cfg.SweepInterval, cfg.RoomTTL, monitoring),
	)
	if cfg.MonitorInterval > 0 {
		sup.Add(workers.NewMonitorWorker(log, registry, monitoring, cfg.MonitorInterval))
	}
	return &Scheduler{sup: sup, done: make(chan struct{}), log: log}
}

// Start launches every worker. It returns immediately; the workers run
// until ctx is canceled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) {
	go func() {
		defer close(s.done)
		s.sup.Run(ctx)
	}()
}

// Stop cancels the workers and waits for in-flight ticks to finish,
// bounded by the given timeout.
func (s *Scheduler) Stop(timeout time.Duration) {
	s.sup.Stop()
	select {
	case <-s.done:
		s.log.Info("Scheduler stopped")
	case <-time.After(timeout):
		s.log.Warn("Scheduler stop timed out", "timeout", timeout)
	}
}
