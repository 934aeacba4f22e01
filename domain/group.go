package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// CompletedRecord is an append-only history entry written when a room
// reaches capacity and is reset. The log is wiped by the daily reset.
type CompletedRecord struct {
	ID               uuid.UUID
	RoomID           RoomID
	ParticipantCount int
	CompletedAt      time.Time
}

// GroupState holds every room of one chat group plus its completion history.
// It carries no lock of its own: all access goes through the registry's
// per-group critical section.
type GroupState struct {
	ID           GroupID
	rooms        map[RoomID]*Room
	completedLog []CompletedRecord
	nextCustomID RoomID
}

// NewGroupState initializes a group with its permanent rooms 1..permanentRooms.
// Custom ids start right after the permanent range and never go backwards.
func NewGroupState(id GroupID, permanentRooms, defaultCapacity int) *GroupState {
	g := &GroupState{
		ID:           id,
		rooms:        make(map[RoomID]*Room, permanentRooms),
		nextCustomID: RoomID(permanentRooms) + 1,
	}
	for i := 1; i <= permanentRooms; i++ {
		g.rooms[RoomID(i)] = NewPermanentRoom(RoomID(i), defaultCapacity)
	}
	return g
}

func (g *GroupState) Room(id RoomID) (*Room, bool) {
	room, ok := g.rooms[id]
	return room, ok
}

// CreateCustomRoom allocates the next custom id and inserts a
// non-permanent room. Ids are never reused, even after expiry.
func (g *GroupState) CreateCustomRoom(tileCount, capacity int, now time.Time) RoomID {
	id := g.nextCustomID
	g.nextCustomID++
	g.rooms[id] = NewCustomRoom(id, tileCount, capacity, now)
	return id
}

// RoomsInOrder returns the live rooms sorted by ascending id.
// Only call while holding the group's section.
func (g *GroupState) RoomsInOrder() []*Room {
	out := make([]*Room, 0, len(g.rooms))
	for _, room := range g.rooms {
		out = append(out, room)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Snapshot returns detached copies of every room, sorted by id,
// safe to render after the section is released.
func (g *GroupState) Snapshot() []Room {
	rooms := g.RoomsInOrder()
	out := make([]Room, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, room.Snapshot())
	}
	return out
}

func (g *GroupState) LogCompleted(rec CompletedRecord) {
	g.completedLog = append(g.completedLog, rec)
}

func (g *GroupState) CompletedLog() []CompletedRecord {
	out := make([]CompletedRecord, len(g.completedLog))
	copy(out, g.completedLog)
	return out
}

// ResetDaily clears the permanent rooms and the completion history.
// Custom rooms are deliberately left alone: they live and die by the
// 24h expiry sweep only.
func (g *GroupState) ResetDaily() {
	for _, room := range g.rooms {
		if room.Permanent {
			room.Reset()
		}
	}
	g.completedLog = nil
}

// SweepExpired deletes custom rooms older than ttl and returns their ids.
// Evicted occupants disappear with the room.
func (g *GroupState) SweepExpired(now time.Time, ttl time.Duration) []RoomID {
	var evicted []RoomID
	for id, room := range g.rooms {
		if room.Expired(now, ttl) {
			delete(g.rooms, id)
			evicted = append(evicted, id)
		}
	}
	sort.Slice(evicted, func(i, j int) bool { return evicted[i] < evicted[j] })
	return evicted
}

// RoomsOf lists the ids of every room the user currently sits in, ascending.
func (g *GroupState) RoomsOf(userID string) []RoomID {
	var ids []RoomID
	for id, room := range g.rooms {
		if room.IsMember(userID) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
