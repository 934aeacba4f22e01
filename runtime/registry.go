package runtime

import (
	"log/slog"
	"mahjong-rooms/domain"
	"sort"
	"sync"
	"time"
)

// groupEntry pairs one group's state with the exclusive section guarding it.
// The entry lock is held for every read and write of the state; the registry
// lock only protects the group map itself, so two groups never contend.
type groupEntry struct {
	mu    sync.Mutex
	state *domain.GroupState
}

type Registry struct {
	mu              sync.RWMutex
	groups          map[domain.GroupID]*groupEntry
	permanentRooms  int
	defaultCapacity int
	log             *slog.Logger
}

func NewRegistry(log *slog.Logger, permanentRooms, defaultCapacity int) *Registry {
	return &Registry{
		groups:          make(map[domain.GroupID]*groupEntry),
		permanentRooms:  permanentRooms,
		defaultCapacity: defaultCapacity,
		log:             log,
	}
}

// entry returns the group's entry, creating the state with its permanent
// rooms on first touch. Fast path is a read lock; creation double-checks
// under the write lock.
func (r *Registry) entry(id domain.GroupID) *groupEntry {
	r.mu.RLock()
	e, ok := r.groups[id]
	r.mu.RUnlock()
	if ok {
		return e
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok = r.groups[id]; ok {
		return e
	}
	e = &groupEntry{state: domain.NewGroupState(id, r.permanentRooms, r.defaultCapacity)}
	r.groups[id] = e
	r.log.Debug("Group state created", "group", id, "permanent_rooms", r.permanentRooms)
	return e
}

// WithGroup runs fn inside the group's critical section. fn must not block
// on I/O; anything to deliver is taken out as a snapshot and sent after
// this returns.
func (r *Registry) WithGroup(id domain.GroupID, fn func(*domain.GroupState) error) error {
	e := r.entry(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.state)
}

// Snapshot returns detached copies of the group's rooms, ascending by id.
func (r *Registry) Snapshot(id domain.GroupID) []domain.Room {
	var rooms []domain.Room
	_ = r.WithGroup(id, func(g *domain.GroupState) error {
		rooms = g.Snapshot()
		return nil
	})
	return rooms
}

// GroupIDs lists the groups known so far, ascending. The list is a moment's
// view; callers iterating it take each group's section in turn.
func (r *Registry) GroupIDs() []domain.GroupID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]domain.GroupID, 0, len(r.groups))
	for id := range r.groups {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ResetDailyAll clears the permanent rooms and completion log of every
// known group. Returns how many groups were touched.
func (r *Registry) ResetDailyAll() int {
	ids := r.GroupIDs()
	for _, id := range ids {
		_ = r.WithGroup(id, func(g *domain.GroupState) error {
			g.ResetDaily()
			return nil
		})
	}
	return len(ids)
}

// SweepExpiredAll deletes custom rooms older than ttl across all groups
// and returns the evicted ids per group (only groups that lost rooms).
func (r *Registry) SweepExpiredAll(now time.Time, ttl time.Duration) map[domain.GroupID][]domain.RoomID {
	evicted := make(map[domain.GroupID][]domain.RoomID)
	for _, id := range r.GroupIDs() {
		_ = r.WithGroup(id, func(g *domain.GroupState) error {
			if ids := g.SweepExpired(now, ttl); len(ids) > 0 {
				evicted[id] = ids
			}
			return nil
		})
	}
	return evicted
}

// RoomCount reports the live room total across groups, for monitoring.
func (r *Registry) RoomCount() int {
	var total int
	for _, id := range r.GroupIDs() {
		_ = r.WithGroup(id, func(g *domain.GroupState) error {
			total += len(g.RoomsInOrder())
			return nil
		})
	}
	return total
}
