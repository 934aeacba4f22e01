package services

import (
	"log/slog"
	"mahjong-rooms/domain"
	"mahjong-rooms/errors"
	"mahjong-rooms/observability"
	"mahjong-rooms/runtime"
	"testing"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newMembershipFixture() (*MembershipService, *runtime.Registry) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := runtime.NewRegistry(log, 5, 4)
	return NewMembershipService(log, registry, observability.NewMonitoringManager()), registry
}

func TestMembership_Join_FillsAndResets(t *testing.T) {
	req := require.New(t)
	service, registry := newMembershipFixture()
	group := domain.GroupID(1)

	// Given A, B, C already seated in room 1
	for _, name := range []string{"A", "B", "C"} {
		res, err := service.Join(group, 1, name, name)
		req.NoError(err)
		req.False(res.Completed)
	}

	// When D takes the last seat
	res, err := service.Join(group, 1, "D", "D")

	// Then the room completes: occupancy reported as 4, snapshot of all
	// four players returned, room immediately emptied
	req.NoError(err)
	req.True(res.Completed)
	req.Equal(4, res.Occupancy)
	req.Len(res.Filled, 4)
	req.Equal("A", res.Filled[0].UserID)
	req.Equal("D", res.Filled[3].UserID)
	req.Equal(0, registry.Snapshot(group)[0].Occupancy())

	// And exactly one completion record exists
	_ = registry.WithGroup(group, func(g *domain.GroupState) error {
		completedLog := g.CompletedLog()
		req.Len(completedLog, 1)
		req.Equal(domain.RoomID(1), completedLog[0].RoomID)
		req.Equal(4, completedLog[0].ParticipantCount)
		return nil
	})

	// And E can join the freshly reset room right away
	res, err = service.Join(group, 1, "E", "E")
	req.NoError(err)
	req.Equal(1, res.Occupancy)
}

func TestMembership_Join_SecondJoinIsRejected(t *testing.T) {
	req := require.New(t)
	service, registry := newMembershipFixture()
	userID := uuid.NewString()

	_, err := service.Join(1, 2, userID, "A")
	req.NoError(err)

	_, err = service.Join(1, 2, userID, "A")

	req.ErrorIs(err, errors.ErrAlreadyMember)
	req.Equal(1, registry.Snapshot(1)[1].Occupancy())
}

func TestMembership_Join_UnknownRoom(t *testing.T) {
	req := require.New(t)
	service, _ := newMembershipFixture()

	_, err := service.Join(1, 99, "A", "A")

	req.ErrorIs(err, errors.ErrRoomNotFound)
}

func TestMembership_Leave_NotMemberLeavesStateUntouched(t *testing.T) {
	req := require.New(t)
	service, registry := newMembershipFixture()

	_, err := service.Join(1, 1, "A", "A")
	req.NoError(err)

	_, err = service.Leave(1, 1, "B")

	req.ErrorIs(err, errors.ErrNotMember)
	req.Equal(1, registry.Snapshot(1)[0].Occupancy())
}

func TestMembership_LeaveAny(t *testing.T) {
	req := require.New(t)
	service, _ := newMembershipFixture()

	// Not seated anywhere
	_, err := service.LeaveAny(1, "A")
	req.ErrorIs(err, errors.ErrNotMember)

	// Seated in exactly one room
	_, err = service.Join(1, 3, "A", "A")
	req.NoError(err)
	res, err := service.LeaveAny(1, "A")
	req.NoError(err)
	req.Equal(domain.RoomID(3), res.RoomID)

	// Seated in two rooms: ambiguous, nothing removed
	_, _ = service.Join(1, 2, "A", "A")
	_, _ = service.Join(1, 4, "A", "A")
	_, err = service.LeaveAny(1, "A")
	req.ErrorIs(err, errors.ErrAmbiguousMembership)
}

func TestMembership_Swap_TargetFullLeavesSourceUntouched(t *testing.T) {
	req := require.New(t)
	service, registry := newMembershipFixture()
	group := domain.GroupID(1)

	// Given A sits in room 2 and room 3 holds 3 of 4
	_, err := service.Join(group, 2, "A", "A")
	req.NoError(err)
	for _, name := range []string{"w", "x", "y"} {
		_, err = service.Join(group, 3, name, name)
		req.NoError(err)
	}
	// Top up room 3 via a direct mutation so it sits full without resetting
	_ = registry.WithGroup(group, func(g *domain.GroupState) error {
		room, _ := g.Room(3)
		return room.Join(domain.Player{UserID: "z"})
	})

	// When A tries to swap into the full room
	_, err = service.Swap(group, 2, 3, "A")

	// Then the target rejects and A still sits in room 2
	req.ErrorIs(err, errors.ErrRoomFull)
	rooms := registry.Snapshot(group)
	req.True(rooms[1].IsMember("A"))
	req.Equal(4, rooms[2].Occupancy())
}

func TestMembership_Swap_NotInSource(t *testing.T) {
	req := require.New(t)
	service, _ := newMembershipFixture()

	_, err := service.Swap(1, 2, 3, "A")

	req.ErrorIs(err, errors.ErrNotInSource)
}

func TestMembership_Swap_MovesAndKeepsDisplayName(t *testing.T) {
	req := require.New(t)
	service, registry := newMembershipFixture()

	_, err := service.Join(1, 2, "A", "Alice")
	req.NoError(err)

	res, err := service.Swap(1, 2, 5, "A")

	req.NoError(err)
	req.Equal(domain.RoomID(2), res.From)
	req.Equal(domain.RoomID(5), res.To)
	rooms := registry.Snapshot(1)
	req.False(rooms[1].IsMember("A"))
	seat, ok := rooms[4].Member("A")
	req.True(ok)
	req.Equal("Alice", seat.DisplayName)
}

func TestMembership_Swap_CanCompleteTarget(t *testing.T) {
	req := require.New(t)
	service, registry := newMembershipFixture()
	group := domain.GroupID(1)

	for _, name := range []string{"w", "x", "y"} {
		_, err := service.Join(group, 4, name, name)
		req.NoError(err)
	}
	_, err := service.Join(group, 1, "A", "A")
	req.NoError(err)

	// A's swap takes the last seat of room 4
	res, err := service.Swap(group, 1, 4, "A")

	req.NoError(err)
	req.True(res.Join.Completed)
	req.Len(res.Join.Filled, 4)
	rooms := registry.Snapshot(group)
	req.Equal(0, rooms[3].Occupancy())
	req.False(rooms[0].IsMember("A"))
}
