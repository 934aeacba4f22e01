package services

import (
	"fmt"
	"log/slog"
	"mahjong-rooms/contract"
	"mahjong-rooms/domain"
	"mahjong-rooms/errors"
	"mahjong-rooms/observability"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RoomParams are the two numbers a user supplies to open a custom room.
type RoomParams struct {
	TileCount int `validate:"required,gt=0"`
	Capacity  int `validate:"required,gt=0"`
}

type sessionKey struct {
	group domain.GroupID
	user  string
}

// CreationService drives the two-step room creation flow. A "create room"
// intent parks the user in an awaiting-params session; the very next
// message from that user is consumed as parameters and the session ends,
// whether parsing worked or not. A user can never stay stuck in a session.
type CreationService struct {
	registry   contract.IRegistry
	monitoring *observability.MonitoringManager
	log        *slog.Logger

	mu       sync.Mutex
	sessions map[sessionKey]struct{}
}

func NewCreationService(log *slog.Logger, registry contract.IRegistry, monitoring *observability.MonitoringManager) *CreationService {
	return &CreationService{
		registry:   registry,
		monitoring: monitoring,
		log:        log,
		sessions:   make(map[sessionKey]struct{}),
	}
}

// Begin moves the user to awaiting-params. Beginning again while already
// awaiting just re-arms the same session, there is never more than one.
func (s *CreationService) Begin(groupID domain.GroupID, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionKey{groupID, userID}] = struct{}{}
}

// Active reports whether the user's next message should be read as params.
func (s *CreationService) Active(groupID domain.GroupID, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[sessionKey{groupID, userID}]
	return ok
}

// Submit consumes the awaiting-params session and tries to create the room.
// The session is cleared before anything else so a format error still
// returns the user to idle.
func (s *CreationService) Submit(groupID domain.GroupID, userID, text string) (domain.RoomID, RoomParams, error) {
	s.mu.Lock()
	delete(s.sessions, sessionKey{groupID, userID})
	s.mu.Unlock()

	params, err := parseRoomParams(text)
	if err != nil {
		return 0, RoomParams{}, err
	}

	var id domain.RoomID
	err = s.registry.WithGroup(groupID, func(g *domain.GroupState) error {
		id = g.CreateCustomRoom(params.TileCount, params.Capacity, time.Now())
		return nil
	})
	if err != nil {
		return 0, RoomParams{}, err
	}
	s.monitoring.IncrRoomsCreated()
	s.log.Info("Custom room created", "group", groupID, "room", id, "user", userID,
		"tiles", params.TileCount, "capacity", params.Capacity)
	return id, params, nil
}

// parseRoomParams accepts exactly two positive integers: "tileCount capacity".
func parseRoomParams(text string) (RoomParams, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return RoomParams{}, fmt.Errorf("expected 2 numbers, got %d: %w", len(fields), errors.ErrMalformedParams)
	}
	tiles, err := strconv.Atoi(fields[0])
	if err != nil {
		return RoomParams{}, fmt.Errorf("tile count %q: %w", fields[0], errors.ErrMalformedParams)
	}
	capacity, err := strconv.Atoi(fields[1])
	if err != nil {
		return RoomParams{}, fmt.Errorf("capacity %q: %w", fields[1], errors.ErrMalformedParams)
	}
	params := RoomParams{TileCount: tiles, Capacity: capacity}
	if err := validate.Struct(params); err != nil {
		return RoomParams{}, fmt.Errorf("%v: %w", err, errors.ErrMalformedParams)
	}
	return params, nil
}
