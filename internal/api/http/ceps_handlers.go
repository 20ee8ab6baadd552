package http

import (
	"encoding/json"
	"errors"
	"net/http"

	authmw "github.com/mundero/ceps-service/internal/auth/middleware"
	"github.com/mundero/ceps-service/internal/ceps"
	"github.com/mundero/ceps-service/internal/session"
)

// sessionView is the wire shape for session state: the stored record plus the
// statement at the cursor, so the client never needs the whole catalog to
// render the current screen.
type sessionView struct {
	session.Session
	Question *ceps.Question `json:"question,omitempty"`
}

func viewOf(s session.Session) sessionView {
	v := sessionView{Session: s}
	if q, ok := ceps.QuestionByID(s.CurrentQuestion()); ok {
		v.Question = &q
	}
	return v
}

// POST /ceps/sessions  { "mode": "user"|"corporate", "company_id": ..., "company_area": ... }
// Starts a fresh session, discarding any prior one for this user.
func StartSessionHandler(mgr *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := authmw.SubjectFromContext(r.Context())
		if userID == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		var req struct {
			Mode        string `json:"mode"`
			CompanyID   string `json:"company_id"`
			CompanyArea string `json:"company_area"`
		}
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&req) // empty body = defaults
		}
		if req.Mode != "" && req.Mode != session.ModeUser && req.Mode != session.ModeCorporate {
			http.Error(w, "mode must be user or corporate", http.StatusBadRequest)
			return
		}
		s, err := mgr.Start(r.Context(), userID, session.StartOpts{
			Mode:        req.Mode,
			CompanyID:   req.CompanyID,
			CompanyArea: req.CompanyArea,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(viewOf(s))
	}
}

// GET /ceps/sessions/me — resumes the caller's session. 404 means no usable
// session (none, or expired) and the client should offer a fresh start.
func GetSessionHandler(mgr *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := authmw.SubjectFromContext(r.Context())
		s, err := mgr.Resume(r.Context(), userID)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) || errors.Is(err, session.ErrExpired) {
				http.Error(w, "no active session", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(viewOf(s))
	}
}

// POST /ceps/sessions/me/answers  { "question_id": 1..55, "value": 1..5 }
func SaveAnswerHandler(mgr *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := authmw.SubjectFromContext(r.Context())
		var req struct {
			QuestionID int `json:"question_id"`
			Value      int `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		s, err := mgr.Answer(r.Context(), userID, req.QuestionID, req.Value)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		_ = json.NewEncoder(w).Encode(viewOf(s))
	}
}

// POST /ceps/sessions/me/navigate  { "direction": "next"|"prev" }
func NavigateHandler(mgr *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := authmw.SubjectFromContext(r.Context())
		var req struct {
			Direction string `json:"direction"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		var (
			s   session.Session
			err error
		)
		switch req.Direction {
		case "next":
			s, err = mgr.Next(r.Context(), userID)
		case "prev":
			s, err = mgr.Prev(r.Context(), userID)
		default:
			http.Error(w, "direction must be next or prev", http.StatusBadRequest)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		_ = json.NewEncoder(w).Encode(viewOf(s))
	}
}

// GET /ceps/sessions/me/preview — partial scores over answered questions;
// never a final report.
func PreviewHandler(mgr *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := authmw.SubjectFromContext(r.Context())
		res, err := mgr.Preview(r.Context(), userID)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		_ = json.NewEncoder(w).Encode(res)
	}
}

// GET /ceps/catalog — questions and competency metadata for rendering.
func CatalogHandler() http.HandlerFunc {
	type catalog struct {
		Questions    []ceps.Question   `json:"questions"`
		Competencies []ceps.Competency `json:"competencies"`
		ScaleMin     int               `json:"scale_min"`
		ScaleMax     int               `json:"scale_max"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(catalog{
			Questions:    ceps.Questions(),
			Competencies: ceps.Competencies(),
			ScaleMin:     ceps.ScaleMin,
			ScaleMax:     ceps.ScaleMax,
		})
	}
}

// GET /ceps/recommendations — the full guidance tables, so a client can render
// report text without another round trip per competency.
func RecommendationsHandler() http.HandlerFunc {
	type payload struct {
		Recommendations map[string]map[string]string `json:"recommendations"` // competency -> level -> text
		Profiles        map[string]string            `json:"profiles"`        // archetype -> description
	}
	levels := []string{ceps.LevelBajo, ceps.LevelPromedio, ceps.LevelAlto}
	profiles := []string{
		ceps.ProfileLeader, ceps.ProfilePerfectionist, ceps.ProfileRiskTaker,
		ceps.ProfileNetworker, ceps.ProfileBalanced, ceps.ProfileDeveloping,
	}
	return func(w http.ResponseWriter, r *http.Request) {
		out := payload{
			Recommendations: make(map[string]map[string]string),
			Profiles:        make(map[string]string, len(profiles)),
		}
		for _, c := range ceps.Competencies() {
			byLevel := make(map[string]string, len(levels))
			for _, lvl := range levels {
				byLevel[lvl] = ceps.CompetencyRecommendation(c.Key, lvl)
			}
			out.Recommendations[c.Key] = byLevel
		}
		for _, p := range profiles {
			out.Profiles[p] = ceps.ProfileDescription(p)
		}
		_ = json.NewEncoder(w).Encode(out)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrNotFound), errors.Is(err, session.ErrExpired):
		return http.StatusNotFound
	case errors.Is(err, session.ErrInvalidQuestion),
		errors.Is(err, session.ErrInvalidValue),
		errors.Is(err, session.ErrIncomplete):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrAlreadyCompleted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
