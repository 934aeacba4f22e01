package workers

import (
	"context"
	"log/slog"
	"mahjong-rooms/contract"
	"mahjong-rooms/domain"
	"mahjong-rooms/observability"
	"time"
)

var _ contract.Worker = (*HourlyBroadcastWorker)(nil)

// RenderFunc turns a room snapshot into the text pushed to a group.
// Injected so this worker stays ignorant of message formatting.
type RenderFunc func(rooms []domain.Room) string

// HourlyBroadcastWorker pushes the status board to each configured group
// at the top of every hour inside the active window. The snapshot is taken
// under the group's section, the send happens after it is released, and a
// failing target never blocks the remaining ones.
type HourlyBroadcastWorker struct {
	registry   contract.IRegistry
	gateway    contract.BroadcastGateway
	render     RenderFunc
	targets    []domain.GroupID
	startHour  int
	endHour    int
	monitoring *observability.MonitoringManager
	log        *slog.Logger
}

func NewHourlyBroadcastWorker(
	log *slog.Logger,
	registry contract.IRegistry,
	gateway contract.BroadcastGateway,
	render RenderFunc,
	targets []domain.GroupID,
	startHour, endHour int,
	monitoring *observability.MonitoringManager,
) *HourlyBroadcastWorker {
	return &HourlyBroadcastWorker{
		registry:   registry,
		gateway:    gateway,
		render:     render,
		targets:    targets,
		startHour:  startHour,
		endHour:    endHour,
		monitoring: monitoring,
		log:        log,
	}
}

func (w *HourlyBroadcastWorker) Run(ctx context.Context) error {
	w.log.Info("Starting hourly broadcast worker",
		"targets", len(w.targets), "window_start", w.startHour, "window_end", w.endHour)
	for {
		timer := time.NewTimer(time.Until(nextHourTop(time.Now())))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case fired := <-timer.C:
			if !inWindow(fired.Hour(), w.startHour, w.endHour) {
				continue
			}
			w.broadcast(ctx)
		}
	}
}

// broadcast renders and delivers one status push per target group.
// Delivery errors are logged and swallowed: a dead target must not starve
// the others, and nothing here is fatal.
func (w *HourlyBroadcastWorker) broadcast(ctx context.Context) {
	for _, groupID := range w.targets {
		if ctx.Err() != nil {
			return
		}
		text := w.render(w.registry.Snapshot(groupID))
		if err := w.gateway.Send(ctx, groupID, domain.Reply{Text: text}); err != nil {
			w.monitoring.IncrDeliveryFailures()
			w.log.Error("Status push failed", "group", groupID, "err", err)
			continue
		}
		w.monitoring.IncrBroadcasts()
	}
}
