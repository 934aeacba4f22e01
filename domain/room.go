package domain

import (
	"mahjong-rooms/errors"
	"time"
)

type GroupID int64

type RoomID int

// Status describes how much space is left in a room.
// A room never stays Full: reaching capacity immediately resets it,
// so Full is only ever observed on the occupancy that triggered the reset.
type Status int

const (
	StatusEmpty Status = iota
	StatusOpen
	StatusNearlyFull
	StatusFull
)

func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "empty"
	case StatusOpen:
		return "open"
	case StatusNearlyFull:
		return "nearly_full"
	case StatusFull:
		return "full"
	default:
		return "unknown"
	}
}

// StatusOf maps an occupancy count to a Status for the given capacity.
func StatusOf(count, capacity int) Status {
	switch {
	case count == capacity:
		return StatusFull
	case count == 0:
		return StatusEmpty
	case count == capacity-1:
		return StatusNearlyFull
	default:
		return StatusOpen
	}
}

// Player is a membership record inside one room, not a global identity.
// DisplayName is a snapshot taken when the player joined.
type Player struct {
	UserID      string
	DisplayName string
	JoinedAt    time.Time
}

type Room struct {
	ID        RoomID
	Capacity  int
	TileCount int
	Permanent bool
	CreatedAt time.Time
	players   []Player
}

// NewPermanentRoom builds one of the always-present rooms. Its tile label
// mirrors its id, which is how the status board has always rendered them.
func NewPermanentRoom(id RoomID, capacity int) *Room {
	return &Room{ID: id, Capacity: capacity, TileCount: int(id), Permanent: true}
}

func NewCustomRoom(id RoomID, tileCount, capacity int, createdAt time.Time) *Room {
	return &Room{
		ID:        id,
		Capacity:  capacity,
		TileCount: tileCount,
		CreatedAt: createdAt,
	}
}

// Join appends a player in arrival order. The caller is responsible for
// checking IsFull afterwards and resetting the room when capacity is reached.
func (r *Room) Join(p Player) error {
	if r.IsMember(p.UserID) {
		return errors.ErrAlreadyMember
	}
	if len(r.players) == r.Capacity {
		return errors.ErrRoomFull
	}
	r.players = append(r.players, p)
	return nil
}

// Leave removes the player, keeping the relative order of everyone else.
func (r *Room) Leave(userID string) error {
	for i, p := range r.players {
		if p.UserID == userID {
			r.players = append(r.players[:i], r.players[i+1:]...)
			return nil
		}
	}
	return errors.ErrNotMember
}

func (r *Room) IsMember(userID string) bool {
	_, ok := r.Member(userID)
	return ok
}

func (r *Room) Member(userID string) (Player, bool) {
	for _, p := range r.players {
		if p.UserID == userID {
			return p, true
		}
	}
	return Player{}, false
}

func (r *Room) IsFull() bool {
	return len(r.players) == r.Capacity
}

func (r *Room) Occupancy() int {
	return len(r.players)
}

func (r *Room) Status() Status {
	return StatusOf(len(r.players), r.Capacity)
}

// Players returns a copy of the membership list, safe to hold after
// the group's critical section is released.
func (r *Room) Players() []Player {
	out := make([]Player, len(r.players))
	copy(out, r.players)
	return out
}

// Reset empties the room and returns the players that were seated.
func (r *Room) Reset() []Player {
	seated := r.players
	r.players = nil
	return seated
}

// Expired reports whether a custom room has outlived its lifespan.
// Permanent rooms never expire.
func (r *Room) Expired(now time.Time, ttl time.Duration) bool {
	return !r.Permanent && now.Sub(r.CreatedAt) > ttl
}

// Snapshot returns a detached copy of the room, including players.
func (r *Room) Snapshot() Room {
	cp := *r
	cp.players = r.Players()
	return cp
}
