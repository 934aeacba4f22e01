//go:generate go run go.uber.org/mock/mockgen -source=membership_service.go -destination=../mocks/mock_membership_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"mahjong-rooms/contract"
	"mahjong-rooms/domain"
	"mahjong-rooms/errors"
	"mahjong-rooms/observability"
	"time"

	"github.com/google/uuid"
)

type IMembershipService interface {
	Join(groupID domain.GroupID, roomID domain.RoomID, userID, displayName string) (domain.JoinResult, error)
	Leave(groupID domain.GroupID, roomID domain.RoomID, userID string) (domain.LeaveResult, error)
	LeaveAny(groupID domain.GroupID, userID string) (domain.LeaveResult, error)
	Swap(groupID domain.GroupID, from, to domain.RoomID, userID string) (domain.SwapResult, error)
}

// MembershipService owns every join/leave/swap invariant. Each operation
// runs inside the group's critical section and either fully succeeds or
// leaves the state untouched.
type MembershipService struct {
	registry   contract.IRegistry
	monitoring *observability.MonitoringManager
	log        *slog.Logger
}

func NewMembershipService(log *slog.Logger, registry contract.IRegistry, monitoring *observability.MonitoringManager) *MembershipService {
	return &MembershipService{registry: registry, monitoring: monitoring, log: log}
}

// Join seats the user in the room. When the seat taken is the last one the
// room fills: the membership snapshot is captured, a completion record is
// appended, and the room is emptied before anyone else can observe it full.
func (s *MembershipService) Join(groupID domain.GroupID, roomID domain.RoomID, userID, displayName string) (domain.JoinResult, error) {
	var res domain.JoinResult
	err := s.registry.WithGroup(groupID, func(g *domain.GroupState) error {
		room, ok := g.Room(roomID)
		if !ok {
			return fmt.Errorf("room %d: %w", roomID, errors.ErrRoomNotFound)
		}
		now := time.Now()
		if err := room.Join(domain.Player{UserID: userID, DisplayName: displayName, JoinedAt: now}); err != nil {
			return fmt.Errorf("room %d: %w", roomID, err)
		}
		res = domain.JoinResult{RoomID: roomID, Occupancy: room.Occupancy()}
		if room.IsFull() {
			s.complete(g, room, now, &res)
		}
		return nil
	})
	if err != nil {
		return domain.JoinResult{}, err
	}
	s.monitoring.IncrJoins()
	s.log.Info("Player joined", "group", groupID, "room", roomID, "user", userID, "occupancy", res.Occupancy, "completed", res.Completed)
	return res, nil
}

// complete resets a freshly filled room and logs the completion.
// Must be called inside the group's section.
func (s *MembershipService) complete(g *domain.GroupState, room *domain.Room, now time.Time, res *domain.JoinResult) {
	filled := room.Reset()
	g.LogCompleted(domain.CompletedRecord{
		ID:               uuid.New(),
		RoomID:           room.ID,
		ParticipantCount: len(filled),
		CompletedAt:      now,
	})
	res.Completed = true
	res.Filled = filled
	s.monitoring.IncrRoomsCompleted()
}

func (s *MembershipService) Leave(groupID domain.GroupID, roomID domain.RoomID, userID string) (domain.LeaveResult, error) {
	var res domain.LeaveResult
	err := s.registry.WithGroup(groupID, func(g *domain.GroupState) error {
		room, ok := g.Room(roomID)
		if !ok {
			return fmt.Errorf("room %d: %w", roomID, errors.ErrRoomNotFound)
		}
		if err := room.Leave(userID); err != nil {
			return fmt.Errorf("room %d: %w", roomID, err)
		}
		res = domain.LeaveResult{RoomID: roomID, Occupancy: room.Occupancy()}
		return nil
	})
	if err != nil {
		return domain.LeaveResult{}, err
	}
	s.monitoring.IncrLeaves()
	s.log.Info("Player left", "group", groupID, "room", roomID, "user", userID, "occupancy", res.Occupancy)
	return res, nil
}

// LeaveAny removes the user from the one room they sit in, for commands
// that omit the room id. Membership in several rooms is ambiguous and the
// user is asked to be explicit.
func (s *MembershipService) LeaveAny(groupID domain.GroupID, userID string) (domain.LeaveResult, error) {
	var res domain.LeaveResult
	err := s.registry.WithGroup(groupID, func(g *domain.GroupState) error {
		ids := g.RoomsOf(userID)
		switch {
		case len(ids) == 0:
			return errors.ErrNotMember
		case len(ids) > 1:
			return errors.ErrAmbiguousMembership
		}
		room, _ := g.Room(ids[0])
		if err := room.Leave(userID); err != nil {
			return err
		}
		res = domain.LeaveResult{RoomID: ids[0], Occupancy: room.Occupancy()}
		return nil
	})
	if err != nil {
		return domain.LeaveResult{}, err
	}
	s.monitoring.IncrLeaves()
	s.log.Info("Player left", "group", groupID, "room", res.RoomID, "user", userID, "occupancy", res.Occupancy)
	return res, nil
}

// Swap moves the user between two rooms of the same group. The source
// membership is verified first without mutating, then the target join is
// attempted; the source seat is only given up once the target join has
// succeeded, so a TargetFull failure leaves everything as it was. The
// whole sequence holds one critical section, so nobody can grab the
// target seat between the check and the move.
func (s *MembershipService) Swap(groupID domain.GroupID, from, to domain.RoomID, userID string) (domain.SwapResult, error) {
	var res domain.SwapResult
	err := s.registry.WithGroup(groupID, func(g *domain.GroupState) error {
		src, ok := g.Room(from)
		if !ok {
			return fmt.Errorf("room %d: %w", from, errors.ErrRoomNotFound)
		}
		dst, ok := g.Room(to)
		if !ok {
			return fmt.Errorf("room %d: %w", to, errors.ErrRoomNotFound)
		}
		seat, ok := src.Member(userID)
		if !ok {
			return fmt.Errorf("room %d: %w", from, errors.ErrNotInSource)
		}
		now := time.Now()
		if err := dst.Join(domain.Player{UserID: userID, DisplayName: seat.DisplayName, JoinedAt: now}); err != nil {
			return fmt.Errorf("room %d: %w", to, err)
		}
		// The join above is the point of no return: the source removal
		// cannot fail because membership was just verified.
		_ = src.Leave(userID)
		res = domain.SwapResult{
			From: from,
			To:   to,
			Join: domain.JoinResult{RoomID: to, Occupancy: dst.Occupancy()},
		}
		if dst.IsFull() {
			s.complete(g, dst, now, &res.Join)
		}
		return nil
	})
	if err != nil {
		return domain.SwapResult{}, err
	}
	s.monitoring.IncrSwaps()
	s.log.Info("Player swapped", "group", groupID, "from", from, "to", to, "user", userID, "completed", res.Join.Completed)
	return res, nil
}
