//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"mahjong-rooms/domain"
	"reflect"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker,
// sparing the Worker interface from a manual naming method.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// BroadcastGateway delivers a rendered text to one chat group.
// A failed delivery is logged by the caller and never treated as fatal;
// implementations must bound how long Send can block.
type BroadcastGateway interface {
	Send(ctx context.Context, groupID domain.GroupID, reply domain.Reply) error
	Close() error
}

// IRegistry is the room registry surface the services and schedulers rely on.
type IRegistry interface {
	WithGroup(id domain.GroupID, fn func(*domain.GroupState) error) error
	Snapshot(id domain.GroupID) []domain.Room
	GroupIDs() []domain.GroupID
	RoomCount() int
	ResetDailyAll() int
	SweepExpiredAll(now time.Time, ttl time.Duration) map[domain.GroupID][]domain.RoomID
}
