package internal

import (
	"fmt"
	"mahjong-rooms/domain"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL,required=true"`

	GatewayURL      string        `env:"GATEWAY_URL,required=true"`
	DeliveryTimeout time.Duration `env:"DELIVERY_TIMEOUT,required=true"`

	// BroadcastGroups is a comma-separated list of group ids receiving the
	// hourly status push.
	BroadcastGroups string `env:"BROADCAST_GROUPS,required=true"`
	PushWindowStart int    `env:"PUSH_WINDOW_START,required=true"`
	PushWindowEnd   int    `env:"PUSH_WINDOW_END,required=true"`

	DefaultCapacity int `env:"DEFAULT_CAPACITY,required=true"`
	PermanentRooms  int `env:"PERMANENT_ROOMS,required=true"`

	SweepInterval   time.Duration `env:"SWEEP_INTERVAL,required=true"`
	RoomTTL         time.Duration `env:"ROOM_TTL,required=true"`
	MonitorInterval time.Duration `env:"MONITOR_INTERVAL"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,required=true"`
	StopTimeout     time.Duration `env:"STOP_TIMEOUT,required=true"`
}

// Groups parses BROADCAST_GROUPS into group ids.
func (c Config) Groups() ([]domain.GroupID, error) {
	var out []domain.GroupID
	for _, part := range strings.Split(c.BroadcastGroups, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("BROADCAST_GROUPS entry %q: %w", part, err)
		}
		out = append(out, domain.GroupID(id))
	}
	return out, nil
}

// Validate rejects configurations the schedulers cannot run with.
func (c Config) Validate() error {
	if c.PushWindowStart < 0 || c.PushWindowStart > 23 || c.PushWindowEnd < 0 || c.PushWindowEnd > 24 {
		return fmt.Errorf("push window [%d,%d) out of range", c.PushWindowStart, c.PushWindowEnd)
	}
	if c.DefaultCapacity < 1 {
		return fmt.Errorf("DEFAULT_CAPACITY must be >= 1, got %d", c.DefaultCapacity)
	}
	if c.PermanentRooms < 1 {
		return fmt.Errorf("PERMANENT_ROOMS must be >= 1, got %d", c.PermanentRooms)
	}
	if c.SweepInterval <= 0 || c.RoomTTL <= 0 {
		return fmt.Errorf("SWEEP_INTERVAL and ROOM_TTL must be positive")
	}
	return nil
}
