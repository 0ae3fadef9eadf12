package domain

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle             UserState = "idle"
	StateWaitingCode      UserState = "waiting_code"
	StateWaitingVideo     UserState = "waiting_video"
	StateWaitingBroadcast UserState = "waiting_broadcast"
)

// StateData holds temporary data for user's current state
type StateData struct {
	State UserState
	// PendingCode is the code collected in the first add-video step
	PendingCode string
}
