package practicesession

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/remaimber-it/quizbank/internal/domain/progress"
	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
	"github.com/remaimber-it/quizbank/internal/store"
)

// Mode selects how the question pool of a session is built.
type Mode string

const (
	ModeSequential Mode = "sequential"
	ModeSearch     Mode = "search"
	ModeRandom     Mode = "random"
	ModeWrong      Mode = "wrong"
	ModeFavorite   Mode = "favorite"
	ModeEdit       Mode = "editMode"
)

// Modes lists every practice mode.
var Modes = []Mode{ModeSequential, ModeSearch, ModeRandom, ModeWrong, ModeFavorite, ModeEdit}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// ModeNames returns the mode names as strings.
func ModeNames() []string {
	out := make([]string, len(Modes))
	for i, m := range Modes {
		out[i] = string(m)
	}
	return out
}

// RevealPrompt is the single display option shown for recall questions.
const RevealPrompt = "点击显示答案"

// Repository is the storage the engine reads and writes. store.Repository
// satisfies it.
type Repository interface {
	SaveBank(ctx context.Context, bank *questionbank.QuestionBank) error
	LoadRecord(ctx context.Context, key string) (*progress.SessionRecord, error)
	SaveRecord(ctx context.Context, key string, rec *progress.SessionRecord) error
	RemoveRecord(ctx context.Context, key string) error
	LoadIDSet(ctx context.Context, key string) (progress.IDSet, error)
	SaveIDSet(ctx context.Context, key string, set progress.IDSet) error
	RemoveIDSet(ctx context.Context, key string) error
}

var _ Repository = (*store.Repository)(nil)

// Engine drives one practice session over one bank. It is not safe for
// concurrent use.
type Engine struct {
	repo   Repository
	cfg    Config
	logger *slog.Logger

	bank       *questionbank.QuestionBank
	mode       Mode
	typeFilter string
	loaded     bool
	active     bool

	pool    []questionbank.Question
	working []questionbank.Question

	recordKey string
	record    *progress.SessionRecord
	wrong     progress.IDSet
	favorites progress.IDSet

	// Per-position display state, rebuilt by display().
	selected   []int
	showAnswer bool
	draft      Draft

	nav    *navigator
	finder *searcher
}

var (
	_ SequentialCapable = (*Engine)(nil)
	_ SearchCapable     = (*Engine)(nil)
)

func NewEngine(repo Repository, cfg Config, logger *slog.Logger) *Engine {
	e := &Engine{
		repo:      repo,
		cfg:       cfg,
		logger:    logger,
		record:    progress.NewSessionRecord(),
		wrong:     progress.NewIDSet(),
		favorites: progress.NewIDSet(),
	}
	e.nav = newNavigator(e, cfg)
	e.finder = &searcher{host: e}
	return e
}

// Open loads bank for the given mode and selects typeFilter. On
// ErrNoWorkingData the engine stays open but inactive, so a different type
// can be selected.
func (e *Engine) Open(ctx context.Context, bank *questionbank.QuestionBank, mode Mode, typeFilter string) error {
	if _, err := ParseMode(string(mode)); err != nil {
		return err
	}
	e.bank = bank
	e.mode = mode
	e.loaded = true
	e.active = false
	e.working = nil
	e.finder.keyword = ""

	e.wrong = e.loadSet(ctx, progress.WrongSetKey(bank.DisplayName))
	e.favorites = e.loadSet(ctx, progress.FavoriteSetKey(bank.DisplayName))

	e.pool = e.buildPool()
	if len(e.pool) == 0 {
		return ErrNoWorkingData
	}
	return e.SelectType(ctx, typeFilter)
}

func (e *Engine) buildPool() []questionbank.Question {
	all := e.bank.Questions
	switch e.mode {
	case ModeRandom:
		return e.shuffleQuestions(all)
	case ModeWrong:
		return byID(all, e.wrong)
	case ModeFavorite:
		return byID(all, e.favorites)
	default:
		return questionbank.CloneQuestions(all)
	}
}

func byID(qs []questionbank.Question, ids progress.IDSet) []questionbank.Question {
	out := make([]questionbank.Question, 0, len(ids))
	for _, q := range qs {
		if ids.Has(q.ID) {
			out = append(out, q.Clone())
		}
	}
	return out
}

// shuffleQuestions returns a new slice with questions in random order.
func (e *Engine) shuffleQuestions(questions []questionbank.Question) []questionbank.Question {
	shuffled := questionbank.CloneQuestions(questions)

	e.cfg.shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled
}

// SelectType narrows the pool to typeFilter and restores the stored record
// for that selection. A failed record load starts a fresh record and is
// reported as a *PersistError.
func (e *Engine) SelectType(ctx context.Context, typeFilter string) error {
	if !e.loaded {
		return ErrNotActive
	}
	if e.mode == ModeSearch {
		if matches, ok := e.finder.rerun(e.bank.Questions, typeFilter); ok {
			e.pool = matches
		}
	}
	working := questionbank.FilterByType(e.pool, typeFilter)
	if len(working) == 0 {
		e.active = false
		return ErrNoWorkingData
	}

	e.typeFilter = typeFilter
	e.working = working
	e.active = true
	e.recordKey = progress.RecordKey(string(e.mode), typeFilter, e.bank.DisplayName)

	var loadErr error
	rec, err := e.repo.LoadRecord(ctx, e.recordKey)
	if err != nil {
		e.logger.Error("failed to load session record", "key", e.recordKey, "error", err)
		loadErr = &PersistError{Op: "load record", Key: e.recordKey, Wrapped: err}
		rec = progress.NewSessionRecord()
	}
	rec.Clamp(len(e.working))
	e.record = rec
	e.display()
	return loadErr
}

func (e *Engine) loadSet(ctx context.Context, key string) progress.IDSet {
	set, err := e.repo.LoadIDSet(ctx, key)
	if err != nil {
		e.logger.Error("failed to load id set", "key", key, "error", err)
		return progress.NewIDSet()
	}
	return set
}

// Bank returns the bank handle, replaced after every merge.
func (e *Engine) Bank() *questionbank.QuestionBank {
	return e.bank
}

func (e *Engine) Mode() Mode {
	return e.mode
}

// ResetProgress discards the record of the current selection. In wrong mode
// the wrong set is discarded too and the session becomes inactive.
func (e *Engine) ResetProgress(ctx context.Context) error {
	if !e.active {
		return ErrNotActive
	}
	var errs []error
	if err := e.repo.RemoveRecord(ctx, e.recordKey); err != nil {
		e.logger.Error("failed to remove session record", "key", e.recordKey, "error", err)
		errs = append(errs, &PersistError{Op: "remove record", Key: e.recordKey, Wrapped: err})
	}
	e.record = progress.NewSessionRecord()

	if e.mode == ModeWrong {
		key := progress.WrongSetKey(e.bank.DisplayName)
		if err := e.repo.RemoveIDSet(ctx, key); err != nil {
			e.logger.Error("failed to remove wrong set", "key", key, "error", err)
			errs = append(errs, &PersistError{Op: "remove wrong set", Key: key, Wrapped: err})
		}
		e.wrong = progress.NewIDSet()
		e.pool = nil
		e.working = nil
		e.active = false
	}
	e.display()
	return errors.Join(errs...)
}

// current returns the question at the record index.
func (e *Engine) current() (*questionbank.Question, error) {
	if !e.active {
		return nil, ErrNotActive
	}
	if len(e.working) == 0 {
		return nil, ErrNoWorkingData
	}
	return &e.working[e.record.Index], nil
}

// display rebuilds the per-position state from the record.
func (e *Engine) display() {
	e.selected = nil
	e.showAnswer = false
	e.draft = Draft{}
	if !e.active || len(e.working) == 0 {
		return
	}
	e.record.Clamp(len(e.working))
	q := e.working[e.record.Index]
	if a, ok := e.record.Answer(e.record.Index); ok {
		e.selected = append([]int(nil), a.Selected...)
		e.showAnswer = true
	}
	e.draft = Draft{Content: q.Content, Options: displayOptions(q)}
}

func displayOptions(q questionbank.Question) []string {
	if q.IsRecall() {
		return []string{RevealPrompt}
	}
	return q.Options.Slots()
}

func correctIndex(q questionbank.Question) []int {
	if q.IsRecall() {
		return []int{0}
	}
	return questionbank.CorrectOptionIndex(q.Answer)
}

func (e *Engine) persistRecord(ctx context.Context) error {
	if err := e.repo.SaveRecord(ctx, e.recordKey, e.record); err != nil {
		e.logger.Error("failed to save session record", "key", e.recordKey, "error", err)
		return &PersistError{Op: "save record", Key: e.recordKey, Wrapped: err}
	}
	return nil
}

func (e *Engine) persistSet(ctx context.Context, key string, set progress.IDSet) error {
	if err := e.repo.SaveIDSet(ctx, key, set); err != nil {
		e.logger.Error("failed to save id set", "key", key, "error", err)
		return &PersistError{Op: "save id set", Key: key, Wrapped: err}
	}
	return nil
}
