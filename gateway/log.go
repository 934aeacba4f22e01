package gateway

import (
	"context"
	"log/slog"
	"mahjong-rooms/contract"
	"mahjong-rooms/domain"
)

var _ contract.BroadcastGateway = (*LogGateway)(nil)

// LogGateway writes deliveries to the log instead of a platform.
// Used for local runs and by the simulator.
type LogGateway struct {
	log *slog.Logger
}

func NewLogGateway(log *slog.Logger) *LogGateway {
	return &LogGateway{log: log}
}

func (g *LogGateway) Send(_ context.Context, groupID domain.GroupID, reply domain.Reply) error {
	g.log.Info("Broadcast", "group", groupID, "mentions", reply.Mentions, "text", reply.Text)
	return nil
}

func (g *LogGateway) Close() error {
	return nil
}
