package hermes

import "time"

// OptionsUpdatedEvent carries the publishing instance in Origin so a
// subscriber can skip its own updates.
type OptionsUpdatedEvent struct {
	Origin    string    `json:"origin"`
	Action    string    `json:"action"`
	Index     *int      `json:"index,omitempty"`
	Count     int       `json:"count"`
	Total     int       `json:"total_weight"`
	Timestamp time.Time `json:"timestamp"`
}

type SpinStartedEvent struct {
	SessionID string    `json:"session_id"`
	Options   int       `json:"options"`
	Frames    int       `json:"frames"`
	Timestamp time.Time `json:"timestamp"`
}

type SpinCompletedEvent struct {
	SessionID string    `json:"session_id"`
	Index     int       `json:"index"`
	Name      string    `json:"name"`
	Target    float64   `json:"target"`
	Timestamp time.Time `json:"timestamp"`
}

type SpinCancelledEvent struct {
	SessionID string    `json:"session_id"`
	Frame     int       `json:"frame"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}
