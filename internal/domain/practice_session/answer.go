package practicesession

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/remaimber-it/quizbank/internal/domain/progress"
	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
)

// Outcome reports the result of a submission.
type Outcome struct {
	Submitted bool `json:"submitted"`
	Correct   bool `json:"correct"`
	// Advanced is set when the engine already moved to the next position.
	Advanced bool `json:"advanced"`
	// AdvanceAfter, when non-zero, asks the host to call Next after the
	// delay.
	AdvanceAfter time.Duration `json:"advanceAfter,omitempty"`
}

// SelectOption handles a tap on display option i. Recall questions are
// revealed, multiple choice toggles the selection and single answer
// questions are submitted immediately.
func (e *Engine) SelectOption(ctx context.Context, i int) (Outcome, error) {
	q, err := e.current()
	if err != nil {
		return Outcome{}, err
	}
	if e.showAnswer {
		return Outcome{}, ErrAnswerRevealed
	}
	if q.IsRecall() {
		return e.Reveal(ctx)
	}
	if i < 0 || i >= len(displayOptions(*q)) {
		return Outcome{}, ErrInvalidOption
	}
	if q.IsMultipleChoice() {
		if idx := slices.Index(e.selected, i); idx >= 0 {
			e.selected = slices.Delete(e.selected, idx, idx+1)
		} else {
			e.selected = append(e.selected, i)
		}
		return Outcome{}, nil
	}
	return e.submit(ctx, []int{i})
}

// ConfirmSelection submits the current selection of a choice question.
func (e *Engine) ConfirmSelection(ctx context.Context) (Outcome, error) {
	q, err := e.current()
	if err != nil {
		return Outcome{}, err
	}
	if e.showAnswer {
		return Outcome{}, ErrAnswerRevealed
	}
	if q.IsRecall() {
		return e.Reveal(ctx)
	}
	return e.submit(ctx, e.selected)
}

// Reveal shows the answer of a recall question. Self-graded questions are
// always recorded as correct.
func (e *Engine) Reveal(ctx context.Context) (Outcome, error) {
	if _, err := e.current(); err != nil {
		return Outcome{}, err
	}
	if e.showAnswer {
		return Outcome{}, ErrAnswerRevealed
	}
	e.selected = []int{0}
	e.showAnswer = true
	e.record.SetAnswer(e.record.Index, progress.AnswerRecord{
		Selected:  []int{0},
		IsCorrect: true,
		Timestamp: e.cfg.now().UnixMilli(),
	})
	return Outcome{Submitted: true, Correct: true}, e.persistRecord(ctx)
}

func (e *Engine) submit(ctx context.Context, selected []int) (Outcome, error) {
	q := e.working[e.record.Index]
	sorted := questionbank.SortedSet(selected)
	correct := questionbank.SameSelection(sorted, correctIndex(q))

	if correct {
		e.wrong.Remove(q.ID)
	} else {
		e.wrong.Add(q.ID)
	}
	e.selected = sorted
	e.showAnswer = true
	e.record.SetAnswer(e.record.Index, progress.AnswerRecord{
		Selected:  sorted,
		IsCorrect: correct,
		Timestamp: e.cfg.now().UnixMilli(),
	})

	err := errors.Join(
		e.persistRecord(ctx),
		e.persistSet(ctx, progress.WrongSetKey(e.bank.DisplayName), e.wrong),
	)

	out := Outcome{Submitted: true, Correct: correct}
	if !correct || q.IsMultipleChoice() {
		return out, err
	}
	if e.cfg.AdvanceDelay > 0 {
		out.AdvanceAfter = e.cfg.AdvanceDelay
		return out, err
	}
	switch nextErr := e.Next(ctx); {
	case nextErr == nil:
		out.Advanced = true
	case errors.Is(nextErr, ErrLastQuestion):
	default:
		err = errors.Join(err, nextErr)
	}
	return out, err
}

// ToggleFavorite flips the current question in the favorite set and
// reports whether it is now collected.
func (e *Engine) ToggleFavorite(ctx context.Context) (bool, error) {
	q, err := e.current()
	if err != nil {
		return false, err
	}
	collected := e.favorites.Toggle(q.ID)
	return collected, e.persistSet(ctx, progress.FavoriteSetKey(e.bank.DisplayName), e.favorites)
}
