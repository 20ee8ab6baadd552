package http

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	authmw "github.com/mundero/ceps-service/internal/auth/middleware"
	"github.com/mundero/ceps-service/internal/ceps"
	"github.com/mundero/ceps-service/internal/session"
	"github.com/mundero/ceps-service/internal/storage"
)

// Report is the completion payload: the score result plus the lookup-driven
// guidance the report renderer needs. Recomputable from the answer map at any
// time; the archived copy is a convenience, not the source of truth.
type Report struct {
	UserID          string            `json:"user_id"`
	Mode            string            `json:"mode"`
	CompletedAt     int64             `json:"completed_at"`
	Result          ceps.ScoreResult  `json:"result"`
	Profile         string            `json:"profile"`
	ProfileText     string            `json:"profile_text"`
	Recommendations map[string]string `json:"recommendations"` // competency key -> guidance
	ArchiveURL      string            `json:"archive_url,omitempty"`
}

func buildReport(s session.Session, res ceps.ScoreResult) Report {
	recs := make(map[string]string, len(res.Scores))
	for key, level := range res.LevelByComp {
		recs[key] = ceps.CompetencyRecommendation(key, level)
	}
	profile := ceps.OverallProfile(res.Scores)
	var completedAt int64
	if s.CompletedAt != nil {
		completedAt = *s.CompletedAt
	}
	return Report{
		UserID:          s.UserID,
		Mode:            s.Mode,
		CompletedAt:     completedAt,
		Result:          res,
		Profile:         profile,
		ProfileText:     ceps.ProfileDescription(profile),
		Recommendations: recs,
	}
}

// POST /ceps/sessions/me/complete — finalizes the session. A failed final
// save returns an error so the client can retry; nothing is archived until
// the completion write has been durably applied.
func CompleteHandler(mgr *session.Manager, bs storage.BlobStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := authmw.SubjectFromContext(r.Context())
		res, s, err := mgr.Complete(r.Context(), userID)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		report := buildReport(s, res)

		// Archive snapshot is best-effort: the session row already holds the
		// answers the report can be rebuilt from.
		if bs != nil {
			if buf, err := json.Marshal(report); err == nil {
				key := storage.ReportKey(userID)
				if _, err := bs.PutBytes(key, buf); err != nil {
					log.Printf("report: archive %s: %v", userID, err)
				} else if u, err := bs.SignedURL(key); err == nil {
					report.ArchiveURL = u
				}
			}
		}
		_ = json.NewEncoder(w).Encode(report)
	}
}

// GET /reports/{userID} — serves the archived report snapshot.
func GetReportHandler(bs storage.BlobStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		rc, err := bs.Get(storage.ReportKey(userID))
		if err != nil {
			http.Error(w, "report not found", http.StatusNotFound)
			return
		}
		defer rc.Close()
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.Copy(w, rc)
	}
}
