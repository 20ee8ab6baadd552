package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// SQLStore persists sessions to the ceps_sessions table, one row per user,
// answers and presentation order as JSON columns.
type SQLStore struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db, ttl: ExpireAfter, now: time.Now}
}

func (s *SQLStore) Save(ctx context.Context, sess Session) error {
	aj, err := json.Marshal(sess.Answers)
	if err != nil {
		return err
	}
	oj, err := json.Marshal(sess.Order)
	if err != nil {
		return err
	}
	var completedAt sql.NullInt64
	if sess.CompletedAt != nil {
		completedAt = sql.NullInt64{Int64: *sess.CompletedAt, Valid: true}
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO ceps_sessions
		   (key, user_id, mode, status, answers_json, order_json, cursor, streak, progress,
		    started_at, last_saved_at, completed_at, company_id, company_area)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		 ON CONFLICT (key) DO UPDATE SET
		   mode=EXCLUDED.mode, status=EXCLUDED.status,
		   answers_json=EXCLUDED.answers_json, order_json=EXCLUDED.order_json,
		   cursor=EXCLUDED.cursor, streak=EXCLUDED.streak, progress=EXCLUDED.progress,
		   started_at=EXCLUDED.started_at, last_saved_at=EXCLUDED.last_saved_at,
		   completed_at=EXCLUDED.completed_at,
		   company_id=EXCLUDED.company_id, company_area=EXCLUDED.company_area`,
		Key(sess.UserID), sess.UserID, sess.Mode, sess.Status, string(aj), string(oj),
		sess.Cursor, sess.Streak, sess.Progress,
		sess.StartedAt, sess.LastSavedAt, completedAt, sess.CompanyID, sess.CompanyArea)
	return err
}

// Load returns the stored session, enforcing the 24h inactivity TTL: a stale
// row is deleted and reported as ErrExpired so the caller starts fresh.
func (s *SQLStore) Load(ctx context.Context, userID string) (Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT user_id, mode, status, answers_json, order_json, cursor, streak, progress,
		        started_at, last_saved_at, completed_at, company_id, company_area
		 FROM ceps_sessions WHERE key=$1`, Key(userID))

	var sess Session
	var aj, oj string
	var completedAt sql.NullInt64
	err := row.Scan(&sess.UserID, &sess.Mode, &sess.Status, &aj, &oj,
		&sess.Cursor, &sess.Streak, &sess.Progress,
		&sess.StartedAt, &sess.LastSavedAt, &completedAt, &sess.CompanyID, &sess.CompanyArea)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}
	if err := json.Unmarshal([]byte(aj), &sess.Answers); err != nil {
		return Session{}, err
	}
	if err := json.Unmarshal([]byte(oj), &sess.Order); err != nil {
		return Session{}, err
	}
	if completedAt.Valid {
		sess.CompletedAt = &completedAt.Int64
	}

	if s.now().Unix()-sess.LastSavedAt > int64(s.ttl.Seconds()) {
		_ = s.Delete(ctx, userID)
		return Session{}, ErrExpired
	}
	return sess, nil
}

func (s *SQLStore) Delete(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM ceps_sessions WHERE key=$1`, Key(userID))
	return err
}
