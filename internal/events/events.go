package events

// Lifecycle events emitted by the CEPS session core. The payload set is
// closed: one struct per event kind, so the analytics contract stays
// statically checkable.

type Event interface {
	EventType() string
	EventKey() string // natural key, the session owner's user id
}

type SessionStarted struct {
	UserID    string `json:"user_id"`
	Mode      string `json:"mode"`
	Questions int    `json:"questions"`
}

func (e SessionStarted) EventType() string { return "ceps.session_started" }
func (e SessionStarted) EventKey() string  { return e.UserID }

type ProgressMilestone struct {
	UserID   string `json:"user_id"`
	Answered int    `json:"answered"`
	Progress int    `json:"progress"`
	Streak   int    `json:"streak"`
}

func (e ProgressMilestone) EventType() string { return "ceps.progress_milestone" }
func (e ProgressMilestone) EventKey() string  { return e.UserID }

type SessionCompleted struct {
	UserID       string `json:"user_id"`
	Mode         string `json:"mode"`
	TotalScore   int    `json:"total_score"`
	OverallLevel string `json:"overall_level"`
	DurationSec  int64  `json:"duration_sec"`
}

func (e SessionCompleted) EventType() string { return "ceps.session_completed" }
func (e SessionCompleted) EventKey() string  { return e.UserID }
