// internal/service/practice.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	practicesession "github.com/remaimber-it/quizbank/internal/domain/practice_session"
	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
	"github.com/remaimber-it/quizbank/internal/id"
)

// ErrSessionNotFound is returned for an unknown session handle.
var ErrSessionNotFound = errors.New("practice session not found")

// BankLoader loads a stored bank by storage key.
type BankLoader interface {
	GetBank(ctx context.Context, storageKey string) (*questionbank.QuestionBank, error)
}

// PracticeService keeps live practice engines keyed by a session handle.
// Engines are single-threaded, so every call runs under the session's own
// mutex. It also owns the delayed auto-advance timers and their WaitGroups.
type PracticeService struct {
	banks  BankLoader
	repo   practicesession.Repository
	cfg    practicesession.Config
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*liveSession
}

type liveSession struct {
	mu      sync.Mutex
	engine  *practicesession.Engine
	pending sync.WaitGroup
}

// NewPracticeService creates a PracticeService.
func NewPracticeService(banks BankLoader, repo practicesession.Repository, cfg practicesession.Config, logger *slog.Logger) *PracticeService {
	return &PracticeService{
		banks:    banks,
		repo:     repo,
		cfg:      cfg,
		logger:   logger,
		sessions: make(map[string]*liveSession),
	}
}

// Start opens a new engine over the stored bank and registers it.
func (ps *PracticeService) Start(ctx context.Context, storageKey string, mode practicesession.Mode, typeFilter string) (string, practicesession.SessionState, error) {
	bank, err := ps.banks.GetBank(ctx, storageKey)
	if err != nil {
		return "", practicesession.SessionState{}, err
	}

	engine := practicesession.NewEngine(ps.repo, ps.cfg, ps.logger)
	warning, err := ps.soft(engine.Open(ctx, bank, mode, typeFilter))
	if err != nil {
		return "", practicesession.SessionState{}, err
	}

	sessionID := id.GenerateID()
	ps.mu.Lock()
	ps.sessions[sessionID] = &liveSession{engine: engine}
	ps.mu.Unlock()

	ps.logger.Info("practice session started",
		"session_id", sessionID,
		"storage_key", storageKey,
		"mode", mode,
		"type", typeFilter,
	)
	state := engine.State()
	state.Warning = warning
	return sessionID, state, nil
}

// State returns the current snapshot of a session.
func (ps *PracticeService) State(sessionID string) (practicesession.SessionState, error) {
	return ps.Do(context.Background(), sessionID, func(context.Context, *practicesession.Engine) error { return nil })
}

// Do runs fn against the session's engine and returns the resulting
// snapshot. Storage failures inside the engine are logged and reported in
// SessionState.Warning; the in-memory state already reflects the operation.
func (ps *PracticeService) Do(ctx context.Context, sessionID string, fn func(context.Context, *practicesession.Engine) error) (practicesession.SessionState, error) {
	ls, err := ps.lookup(sessionID)
	if err != nil {
		return practicesession.SessionState{}, err
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()

	warning, err := ps.soft(fn(ctx, ls.engine))
	if err != nil {
		return practicesession.SessionState{}, err
	}
	state := ls.engine.State()
	state.Warning = warning
	return state, nil
}

// Answer runs a submitting operation. When the outcome asks for a delayed
// advance, a timer moves the session forward unless the position changed
// in the meantime.
func (ps *PracticeService) Answer(ctx context.Context, sessionID string, fn func(context.Context, *practicesession.Engine) (practicesession.Outcome, error)) (practicesession.Outcome, practicesession.SessionState, error) {
	var out practicesession.Outcome
	state, err := ps.Do(ctx, sessionID, func(ctx context.Context, e *practicesession.Engine) error {
		var err error
		out, err = fn(ctx, e)
		return err
	})
	if err != nil {
		return out, state, err
	}
	if out.AdvanceAfter > 0 {
		ps.scheduleAdvance(sessionID, state.Position, out.AdvanceAfter)
	}
	return out, state, nil
}

// scheduleAdvance uses context.Background because the advance fires after
// the originating request has finished.
func (ps *PracticeService) scheduleAdvance(sessionID string, position int, delay time.Duration) {
	ls, err := ps.lookup(sessionID)
	if err != nil {
		return
	}
	ls.pending.Add(1)
	time.AfterFunc(delay, func() {
		defer ls.pending.Done()
		ls.mu.Lock()
		defer ls.mu.Unlock()

		if ls.engine.State().Position != position {
			return
		}
		err := ls.engine.Next(context.Background())
		if err != nil && !errors.Is(err, practicesession.ErrLastQuestion) {
			ps.logger.Error("auto-advance failed", "session_id", sessionID, "error", err)
		}
	})
}

// WaitForSession blocks until every pending auto-advance of a session has
// fired.
func (ps *PracticeService) WaitForSession(sessionID string) {
	if ls, err := ps.lookup(sessionID); err == nil {
		ls.pending.Wait()
	}
}

// Close waits for pending timers and forgets the session.
func (ps *PracticeService) Close(sessionID string) error {
	ls, err := ps.lookup(sessionID)
	if err != nil {
		return err
	}
	ls.pending.Wait()

	ps.mu.Lock()
	delete(ps.sessions, sessionID)
	ps.mu.Unlock()
	return nil
}

func (ps *PracticeService) lookup(sessionID string) (*liveSession, error) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	ls, ok := ps.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return ls, nil
}

// soft turns a *PersistError into a warning for the client. Any other error
// is returned as is.
func (ps *PracticeService) soft(err error) (string, error) {
	if err != nil && errors.Is(err, practicesession.ErrStorageFailure) {
		var pe *practicesession.PersistError
		if errors.As(err, &pe) && !errors.Is(err, practicesession.ErrNoWorkingData) {
			ps.logger.Warn("session storage write failed", "op", pe.Op, "key", pe.Key, "error", pe.Wrapped)
			return "progress not saved: " + pe.Op, nil
		}
	}
	return "", err
}
