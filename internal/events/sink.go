package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"time"
)

// Sink receives lifecycle events fire-and-forget: implementations must never
// propagate failures back to the session core.
type Sink interface {
	Emit(ctx context.Context, e Event)
}

// SQLSink appends events to the event_log table.
type SQLSink struct {
	db     *sql.DB
	siteID string
}

func NewSQLSink(db *sql.DB, siteID string) *SQLSink {
	if siteID == "" {
		siteID = "local"
	}
	return &SQLSink{db: db, siteID: siteID}
}

func (s *SQLSink) Emit(ctx context.Context, e Event) {
	data, err := json.Marshal(e)
	if err != nil {
		log.Printf("events: marshal %s: %v", e.EventType(), err)
		return
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO event_log (site_id, typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		s.siteID, e.EventType(), e.EventKey(), string(data), time.Now().Unix())
	if err != nil {
		log.Printf("events: append %s: %v", e.EventType(), err)
	}
}

// NopSink discards events; used when analytics is disabled and in tests.
type NopSink struct{}

func (NopSink) Emit(context.Context, Event) {}
