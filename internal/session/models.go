package session

import "github.com/mundero/ceps-service/internal/ceps"

// Session modes.
const (
	ModeUser      = "user"
	ModeCorporate = "corporate"
)

// Session statuses.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// KeyPrefix namespaces session keys in the document store; one CEPS session
// per user at a time.
const KeyPrefix = "ceps|"

func Key(userID string) string { return KeyPrefix + userID }

// Session is the durable record of one quiz attempt. Answers are the source
// of truth; scores are always recomputed from them.
type Session struct {
	UserID      string         `json:"user_id"`
	Mode        string         `json:"mode"` // user|corporate
	Status      string         `json:"status"`
	Answers     ceps.AnswerMap `json:"answers"`
	Order       []int          `json:"order"` // presentation order, fixed at start
	Cursor      int            `json:"cursor"`
	Streak      int            `json:"streak"`
	Progress    int            `json:"progress"` // percent answered, 0..100
	StartedAt   int64          `json:"started_at"`
	LastSavedAt int64          `json:"last_saved_at"`
	CompletedAt *int64         `json:"completed_at,omitempty"`

	// Corporate-solution fields; empty for mode=user.
	CompanyID   string `json:"company_id,omitempty"`
	CompanyArea string `json:"company_area,omitempty"`
}

// AnsweredCount returns how many distinct questions have an answer.
func (s Session) AnsweredCount() int { return len(s.Answers) }

// CurrentQuestion returns the question id at the cursor position.
func (s Session) CurrentQuestion() int {
	if len(s.Order) == 0 {
		return 0
	}
	return s.Order[s.Cursor]
}

// clone deep-copies the session so checkpoint writes never race the single
// in-memory writer.
func (s Session) clone() Session {
	out := s
	out.Answers = make(ceps.AnswerMap, len(s.Answers))
	for k, v := range s.Answers {
		out.Answers[k] = v
	}
	out.Order = append([]int(nil), s.Order...)
	if s.CompletedAt != nil {
		t := *s.CompletedAt
		out.CompletedAt = &t
	}
	return out
}
