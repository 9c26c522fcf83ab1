package service

// Broadcaster pushes interview events to connected monitors (avoids an
// import cycle with the websocket transport). Implementations must never
// block the caller.
type Broadcaster interface {
	BroadcastEvent(event string, payload interface{})
}

// Monitor event names.
const (
	EventSessionCreated    = "session_created"
	EventResponseEvaluated = "response_evaluated"
	EventInterviewComplete = "interview_complete"
)
