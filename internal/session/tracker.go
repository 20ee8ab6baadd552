package session

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/mundero/ceps-service/internal/ceps"
	"github.com/mundero/ceps-service/internal/events"
)

var (
	ErrInvalidQuestion  = errors.New("question id out of range")
	ErrInvalidValue     = errors.New("answer value out of range")
	ErrIncomplete       = errors.New("session has unanswered questions")
	ErrAlreadyCompleted = errors.New("session already completed")
)

// streakEvery: every Nth distinct answered question bumps the streak counter.
// Gamification bookkeeping only; scoring never reads it.
const streakEvery = 5

// StartOpts carries optional attributes for a new session.
type StartOpts struct {
	Mode        string // user|corporate; defaults to user
	CompanyID   string
	CompanyArea string
}

// tracker owns one in-memory session. The answer map has exactly one writer
// (the respondent), so a plain mutex around each transition is enough.
type tracker struct {
	mu        sync.Mutex
	sess      Session
	dirty     bool
	completed bool // completion event emitted
}

// Manager orchestrates session lifecycles: it hands answers to the in-memory
// tracker, sweeps dirty trackers into the store on a timer, and emits
// lifecycle events. Checkpoint failures are logged and retried on the next
// sweep; only the final completion save propagates to the caller.
type Manager struct {
	mu     sync.Mutex
	store  Store
	sink   events.Sink
	now    func() time.Time
	active map[string]*tracker
}

func NewManager(store Store, sink events.Sink, now func() time.Time) *Manager {
	if sink == nil {
		sink = events.NopSink{}
	}
	if now == nil {
		now = time.Now
	}
	return &Manager{
		store:  store,
		sink:   sink,
		now:    now,
		active: map[string]*tracker{},
	}
}

// Start begins a brand-new session for the user, discarding any prior one:
// fresh presentation order, empty answers, streak reset. The initial write is
// synchronous; a user cannot start a session the store never heard of.
func (m *Manager) Start(ctx context.Context, userID string, opts StartOpts) (Session, error) {
	mode := opts.Mode
	if mode == "" {
		mode = ModeUser
	}
	nowUnix := m.now().Unix()
	sess := Session{
		UserID:      userID,
		Mode:        mode,
		Status:      StatusInProgress,
		Answers:     ceps.AnswerMap{},
		Order:       ceps.GenerateQuestionOrder(ceps.TotalQuestions),
		StartedAt:   nowUnix,
		LastSavedAt: nowUnix,
		CompanyID:   opts.CompanyID,
		CompanyArea: opts.CompanyArea,
	}
	if err := m.store.Save(ctx, sess); err != nil {
		return Session{}, err
	}

	m.mu.Lock()
	m.active[userID] = &tracker{sess: sess}
	m.mu.Unlock()

	m.sink.Emit(ctx, events.SessionStarted{
		UserID:    userID,
		Mode:      mode,
		Questions: ceps.TotalQuestions,
	})
	return sess.clone(), nil
}

// Resume returns the user's session, re-hydrating from the store when it is
// not already in memory. ErrExpired means the stored record sat untouched for
// more than 24h and a fresh Start is required.
func (m *Manager) Resume(ctx context.Context, userID string) (Session, error) {
	t, err := m.tracker(ctx, userID)
	if err != nil {
		return Session{}, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sess.clone(), nil
}

// Answer records one response, overwriting any previous answer to the same
// question. The write is range-validated here, at the edge; the scoring
// engine trusts its input.
func (m *Manager) Answer(ctx context.Context, userID string, questionID, value int) (Session, error) {
	if questionID < 1 || questionID > ceps.TotalQuestions {
		return Session{}, ErrInvalidQuestion
	}
	if value < ceps.ScaleMin || value > ceps.ScaleMax {
		return Session{}, ErrInvalidValue
	}
	t, err := m.tracker(ctx, userID)
	if err != nil {
		return Session{}, err
	}

	t.mu.Lock()
	if t.sess.Status == StatusCompleted {
		t.mu.Unlock()
		return Session{}, ErrAlreadyCompleted
	}
	_, seen := t.sess.Answers[questionID]
	t.sess.Answers[questionID] = value
	milestone := false
	if !seen {
		n := len(t.sess.Answers)
		t.sess.Progress = n * 100 / ceps.TotalQuestions
		if n%streakEvery == 0 {
			t.sess.Streak++
			milestone = true
		}
	}
	t.dirty = true
	snap := t.sess.clone()
	t.mu.Unlock()

	if milestone {
		m.sink.Emit(ctx, events.ProgressMilestone{
			UserID:   userID,
			Answered: snap.AnsweredCount(),
			Progress: snap.Progress,
			Streak:   snap.Streak,
		})
	}
	return snap, nil
}

// Next advances the cursor over the presentation order.
func (m *Manager) Next(ctx context.Context, userID string) (Session, error) {
	return m.navigate(ctx, userID, +1)
}

// Prev moves the cursor back.
func (m *Manager) Prev(ctx context.Context, userID string) (Session, error) {
	return m.navigate(ctx, userID, -1)
}

func (m *Manager) navigate(ctx context.Context, userID string, delta int) (Session, error) {
	t, err := m.tracker(ctx, userID)
	if err != nil {
		return Session{}, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	c := t.sess.Cursor + delta
	if c < 0 {
		c = 0
	}
	if max := len(t.sess.Order) - 1; c > max {
		c = max
	}
	if c != t.sess.Cursor {
		t.sess.Cursor = c
		t.dirty = true
	}
	return t.sess.clone(), nil
}

// Preview computes scores over whatever is answered so far; missing answers
// default to 0. Never a final result.
func (m *Manager) Preview(ctx context.Context, userID string) (ceps.ScoreResult, error) {
	t, err := m.tracker(ctx, userID)
	if err != nil {
		return ceps.ScoreResult{}, err
	}
	t.mu.Lock()
	snap := t.sess.clone()
	t.mu.Unlock()
	return ceps.ComputeScores(snap.Answers), nil
}

// Complete finalizes the session once all questions are answered. The final
// save is synchronous and its failure propagates: losing the completion write
// would lose the permanent record, so the caller must be able to retry.
// Retrying Complete after a failed save re-attempts the write.
func (m *Manager) Complete(ctx context.Context, userID string) (ceps.ScoreResult, Session, error) {
	t, err := m.tracker(ctx, userID)
	if err != nil {
		return ceps.ScoreResult{}, Session{}, err
	}

	t.mu.Lock()
	if !ceps.Complete(t.sess.Answers) {
		t.mu.Unlock()
		return ceps.ScoreResult{}, Session{}, ErrIncomplete
	}
	nowUnix := m.now().Unix()
	if t.sess.Status != StatusCompleted {
		completed := nowUnix
		t.sess.CompletedAt = &completed
		t.sess.Status = StatusCompleted
		t.sess.Progress = 100
	}
	t.sess.LastSavedAt = nowUnix
	snap := t.sess.clone()
	t.mu.Unlock()

	if err := m.store.Save(ctx, snap); err != nil {
		return ceps.ScoreResult{}, Session{}, err
	}
	t.mu.Lock()
	t.dirty = false
	emit := !t.completed
	t.completed = true
	t.mu.Unlock()

	result := ceps.ComputeScores(snap.Answers)
	if emit {
		m.sink.Emit(ctx, events.SessionCompleted{
			UserID:       userID,
			Mode:         snap.Mode,
			TotalScore:   result.TotalScore,
			OverallLevel: result.OverallLevel,
			DurationSec:  *snap.CompletedAt - snap.StartedAt,
		})
	}
	return result, snap, nil
}

// Checkpoint sweeps every dirty tracker into the store once. Failures are
// logged and left dirty for the next sweep; each write carries the full
// answer map, so overlapping checkpoints are last-write-wins safe.
func (m *Manager) Checkpoint(ctx context.Context) {
	m.mu.Lock()
	trackers := make([]*tracker, 0, len(m.active))
	for _, t := range m.active {
		trackers = append(trackers, t)
	}
	m.mu.Unlock()

	for _, t := range trackers {
		t.mu.Lock()
		if !t.dirty {
			t.mu.Unlock()
			continue
		}
		t.sess.LastSavedAt = m.now().Unix()
		snap := t.sess.clone()
		t.mu.Unlock()

		if err := m.store.Save(ctx, snap); err != nil {
			log.Printf("session: checkpoint %s: %v", snap.UserID, err)
			continue
		}
		t.mu.Lock()
		t.dirty = false
		t.mu.Unlock()
	}
}

// RunAutosave checkpoints dirty sessions on a fixed interval until ctx is
// cancelled. A final sweep runs on the way out.
func (m *Manager) RunAutosave(ctx context.Context, every time.Duration) {
	if every <= 0 {
		every = 30 * time.Second
	}
	tick := time.NewTicker(every)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			m.Checkpoint(context.Background())
			return
		case <-tick.C:
			m.Checkpoint(ctx)
		}
	}
}

// tracker returns the in-memory tracker for userID, loading the stored
// session when the server has none (resume after restart).
func (m *Manager) tracker(ctx context.Context, userID string) (*tracker, error) {
	m.mu.Lock()
	if t, ok := m.active[userID]; ok {
		m.mu.Unlock()
		return t, nil
	}
	m.mu.Unlock()

	sess, err := m.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.active[userID]; ok { // lost the race to another request
		return t, nil
	}
	t := &tracker{sess: sess, completed: sess.Status == StatusCompleted}
	m.active[userID] = t
	return t, nil
}
