package observability

import (
	"sync/atomic"
)

// Stats aggregates the counters the monitor worker reports.
type Stats struct {
	Joins            uint64 `json:"joins"`
	Leaves           uint64 `json:"leaves"`
	Swaps            uint64 `json:"swaps"`
	RoomsCreated     uint64 `json:"rooms_created"`
	RoomsCompleted   uint64 `json:"rooms_completed"`
	RoomsExpired     uint64 `json:"rooms_expired"`
	Broadcasts       uint64 `json:"broadcasts"`
	DeliveryFailures uint64 `json:"delivery_failures"`
}

// MonitoringManager collects membership and delivery counters with atomic
// increments so the hot path never takes a lock for telemetry.
type MonitoringManager struct {
	joins            uint64
	leaves           uint64
	swaps            uint64
	roomsCreated     uint64
	roomsCompleted   uint64
	roomsExpired     uint64
	broadcasts       uint64
	deliveryFailures uint64
}

func NewMonitoringManager() *MonitoringManager {
	return &MonitoringManager{}
}

func (mm *MonitoringManager) IncrJoins()            { atomic.AddUint64(&mm.joins, 1) }
func (mm *MonitoringManager) IncrLeaves()           { atomic.AddUint64(&mm.leaves, 1) }
func (mm *MonitoringManager) IncrSwaps()            { atomic.AddUint64(&mm.swaps, 1) }
func (mm *MonitoringManager) IncrRoomsCreated()     { atomic.AddUint64(&mm.roomsCreated, 1) }
func (mm *MonitoringManager) IncrRoomsCompleted()   { atomic.AddUint64(&mm.roomsCompleted, 1) }
func (mm *MonitoringManager) IncrBroadcasts()       { atomic.AddUint64(&mm.broadcasts, 1) }
func (mm *MonitoringManager) IncrDeliveryFailures() { atomic.AddUint64(&mm.deliveryFailures, 1) }

func (mm *MonitoringManager) AddRoomsExpired(n uint64) {
	atomic.AddUint64(&mm.roomsExpired, n)
}

// GetLatest returns a consistent-enough snapshot of all counters.
func (mm *MonitoringManager) GetLatest() Stats {
	return Stats{
		Joins:            atomic.LoadUint64(&mm.joins),
		Leaves:           atomic.LoadUint64(&mm.leaves),
		Swaps:            atomic.LoadUint64(&mm.swaps),
		RoomsCreated:     atomic.LoadUint64(&mm.roomsCreated),
		RoomsCompleted:   atomic.LoadUint64(&mm.roomsCompleted),
		RoomsExpired:     atomic.LoadUint64(&mm.roomsExpired),
		Broadcasts:       atomic.LoadUint64(&mm.broadcasts),
		DeliveryFailures: atomic.LoadUint64(&mm.deliveryFailures),
	}
}
