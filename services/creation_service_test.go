package services

import (
	"log/slog"
	"mahjong-rooms/domain"
	"mahjong-rooms/errors"
	"mahjong-rooms/observability"
	"mahjong-rooms/runtime"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newCreationFixture() (*CreationService, *MembershipService, *runtime.Registry) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := runtime.NewRegistry(log, 5, 4)
	monitoring := observability.NewMonitoringManager()
	return NewCreationService(log, registry, monitoring),
		NewMembershipService(log, registry, monitoring),
		registry
}

func TestCreation_TwoStepFlow(t *testing.T) {
	req := require.New(t)
	creation, _, _ := newCreationFixture()

	// Idle at first
	req.False(creation.Active(1, "A"))

	// Begin moves the user to awaiting-params
	creation.Begin(1, "A")
	req.True(creation.Active(1, "A"))

	// Params create room 6 and the session ends
	id, params, err := creation.Submit(1, "A", "3 2")
	req.NoError(err)
	req.Equal(domain.RoomID(6), id)
	req.Equal(RoomParams{TileCount: 3, Capacity: 2}, params)
	req.False(creation.Active(1, "A"))
}

func TestCreation_BadParamsStillEndTheSession(t *testing.T) {
	tests := []struct {
		description string
		input       string
	}{
		{"wrong arity", "3"},
		{"too many numbers", "3 2 1"},
		{"not numeric", "three two"},
		{"zero capacity", "3 0"},
		{"negative tiles", "-3 2"},
		{"free text", "加入 1"},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			creation, _, registry := newCreationFixture()
			creation.Begin(1, "A")

			_, _, err := creation.Submit(1, "A", tt.input)

			// The user must never stay stuck awaiting params
			req.ErrorIs(err, errors.ErrMalformedParams)
			req.False(creation.Active(1, "A"))
			req.Len(registry.Snapshot(1), 5)
		})
	}
}

func TestCreation_BeginTwiceKeepsOneSession(t *testing.T) {
	req := require.New(t)
	creation, _, _ := newCreationFixture()

	creation.Begin(1, "A")
	creation.Begin(1, "A")

	id, _, err := creation.Submit(1, "A", "3 4")
	req.NoError(err)
	req.Equal(domain.RoomID(6), id)
	req.False(creation.Active(1, "A"))
}

func TestCreation_SessionsAreScopedPerUserAndGroup(t *testing.T) {
	req := require.New(t)
	creation, _, _ := newCreationFixture()

	creation.Begin(1, "A")

	req.False(creation.Active(1, "B"))
	req.False(creation.Active(2, "A"))
}

func TestCreation_CustomRoomFillsLikeAPermanentOne(t *testing.T) {
	req := require.New(t)
	creation, membership, registry := newCreationFixture()

	creation.Begin(1, "A")
	id, _, err := creation.Submit(1, "A", "3 2")
	req.NoError(err)
	req.Equal(domain.RoomID(6), id)

	_, err = membership.Join(1, id, "A", "A")
	req.NoError(err)
	res, err := membership.Join(1, id, "B", "B")

	// Two joins fill and reset the 2-seat room exactly like a permanent one
	req.NoError(err)
	req.True(res.Completed)
	req.Len(res.Filled, 2)
	rooms := registry.Snapshot(1)
	req.Equal(0, rooms[5].Occupancy())
	_ = registry.WithGroup(1, func(g *domain.GroupState) error {
		req.Len(g.CompletedLog(), 1)
		req.Equal(2, g.CompletedLog()[0].ParticipantCount)
		return nil
	})
}
