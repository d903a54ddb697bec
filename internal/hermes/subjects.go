package hermes

const (
	SubjectOptionsUpdated = "wheel.options.updated"
	SubjectSpinStarted    = "wheel.spin.started"
	SubjectSpinCompleted  = "wheel.spin.completed"
	SubjectSpinCancelled  = "wheel.spin.cancelled"

	StreamName   = "WHEEL_EVENTS"
	StreamMaxAge = "168h" // 7 days
)

var streamSubjects = []string{"wheel.>"}
