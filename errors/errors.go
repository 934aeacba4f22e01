package errors

import "fmt"

var (
	ErrInvalidRoomID       = fmt.Errorf("invalid room id")
	ErrRoomNotFound        = fmt.Errorf("room not found")
	ErrRoomFull            = fmt.Errorf("room is full")
	ErrAlreadyMember       = fmt.Errorf("already a member of this room")
	ErrNotMember           = fmt.Errorf("not a member of this room")
	ErrNotInSource         = fmt.Errorf("not a member of the source room")
	ErrAmbiguousMembership = fmt.Errorf("member of more than one room")
	ErrMalformedParams     = fmt.Errorf("malformed room parameters")
	ErrDelivery            = fmt.Errorf("delivery failed")
	ErrGatewayClosed       = fmt.Errorf("gateway connection closed")
	ErrWorkerPanic         = fmt.Errorf("worker panic")
)
