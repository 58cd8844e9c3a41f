package practicesession

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/remaimber-it/quizbank/internal/domain/progress"
	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
)

// Editor placeholders.
const (
	NewQuestionContent = "新题目内容..."
	NewOptionContent   = "新选项内容"
)

func (e *Engine) editable() error {
	if e.mode != ModeEdit {
		return ErrNotEditable
	}
	if !e.loaded {
		return ErrNotActive
	}
	return nil
}

// EditContent replaces the draft content.
func (e *Engine) EditContent(text string) error {
	if err := e.editable(); err != nil {
		return err
	}
	if _, err := e.current(); err != nil {
		return err
	}
	e.draft.Content = text
	return nil
}

// EditOption replaces draft option i.
func (e *Engine) EditOption(i int, text string) error {
	if err := e.editable(); err != nil {
		return err
	}
	if _, err := e.current(); err != nil {
		return err
	}
	if i < 0 || i >= len(e.draft.Options) {
		return ErrInvalidOption
	}
	e.draft.Options[i] = text
	return nil
}

// AddOption appends a placeholder option to the draft.
func (e *Engine) AddOption() error {
	if err := e.editable(); err != nil {
		return err
	}
	if _, err := e.current(); err != nil {
		return err
	}
	if len(e.draft.Options) >= questionbank.MaxOptions {
		return ErrOptionLimit
	}
	e.draft.Options = append(e.draft.Options, NewOptionContent)
	return nil
}

// SaveCurrent commits the draft to the current question and merges.
func (e *Engine) SaveCurrent(ctx context.Context) error {
	if err := e.editable(); err != nil {
		return err
	}
	q, err := e.current()
	if err != nil {
		return err
	}

	q.Content = e.draft.Content
	if q.IsRecall() {
		if len(e.draft.Options) > 0 && e.draft.Options[0] != RevealPrompt {
			if q.Options == nil {
				q.Options = questionbank.Options{}
			}
			q.Options["A"] = e.draft.Options[0]
		}
	} else {
		q.Options = questionbank.FromSlots(e.draft.Options)
	}
	return e.Merge(ctx)
}

// InsertQuestion creates a question of type typ and switches the selection
// to that type with the new question current. It lands right after the
// current position when the selection already is typ, otherwise at the end
// of the type's list.
func (e *Engine) InsertQuestion(ctx context.Context, typ, answer string) error {
	if err := e.editable(); err != nil {
		return err
	}
	typ = strings.TrimSpace(typ)
	if typ == "" || typ == questionbank.AllTypes {
		return ErrInvalidType
	}

	q := questionbank.Question{
		ID:      -1,
		Type:    typ,
		Content: NewQuestionContent,
		Answer:  strings.TrimSpace(answer),
	}
	switch {
	case questionbank.IsRecallType(typ):
		q.Options = questionbank.Options{"A": ""}
	case typ == questionbank.TypeTrueFalse:
		q.Options = questionbank.TrueFalseOptions()
	default:
		q.Options = questionbank.EmptySlots()
	}
	if q.IsMultipleChoice() {
		q.Answer = questionbank.NormalizeLetters(q.Answer)
	}

	list := questionbank.FilterByType(e.pool, typ)
	at := len(list)
	if e.active && e.typeFilter == typ && len(e.working) > 0 {
		at = e.record.Index + 1
	}
	list = slices.Insert(list, at, q)

	var errs []error
	if e.typeFilter != typ || !e.active {
		e.typeFilter = typ
		e.recordKey = progress.RecordKey(string(e.mode), typ, e.bank.DisplayName)
		rec, err := e.repo.LoadRecord(ctx, e.recordKey)
		if err != nil {
			e.logger.Error("failed to load session record", "key", e.recordKey, "error", err)
			errs = append(errs, &PersistError{Op: "load record", Key: e.recordKey, Wrapped: err})
			rec = progress.NewSessionRecord()
		}
		e.record = rec
	}
	e.record.InsertAt(at)
	e.record.Index = at
	e.working = list
	e.active = true

	errs = append(errs, e.Merge(ctx), e.persistRecord(ctx))
	return errors.Join(errs...)
}

// DeleteCurrent removes the current question from the bank.
func (e *Engine) DeleteCurrent(ctx context.Context) error {
	if err := e.editable(); err != nil {
		return err
	}
	if _, err := e.current(); err != nil {
		return err
	}

	pos := e.record.Index
	e.working = slices.Delete(e.working, pos, pos+1)
	e.record.RemoveAt(pos)
	e.record.Clamp(len(e.working))

	return errors.Join(e.Merge(ctx), e.persistRecord(ctx))
}
