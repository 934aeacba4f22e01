package domain

// JoinResult is what a successful join hands back to the caller.
// Occupancy is the count right after the join, so it equals the room's
// capacity when Completed is set even though the room itself is already
// back to zero.
type JoinResult struct {
	RoomID    RoomID
	Occupancy int
	Completed bool
	// Filled holds the membership snapshot taken at the instant the room
	// filled, so the caller can mention everyone in the completion notice.
	Filled []Player
}

type LeaveResult struct {
	RoomID    RoomID
	Occupancy int
}

type SwapResult struct {
	From RoomID
	To   RoomID
	// Join carries the outcome of entering the target room, including a
	// possible completion of that room.
	Join JoinResult
}
