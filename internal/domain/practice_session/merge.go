package practicesession

import (
	"context"

	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
)

// Merge folds the working subset back into the bank, renumbers every id,
// persists the bank under its storage key and rebuilds the session from the
// new bank.
//
// Ids are positional, so the wrong and favorite sets may point at different
// questions after a merge that reorders or removes questions. They are not
// rewritten.
func (e *Engine) Merge(ctx context.Context) error {
	if err := e.editable(); err != nil {
		return err
	}

	bank := e.bank.Clone()
	bank.Questions = questionbank.ReplaceType(e.bank.Questions, e.working, e.typeFilter)
	bank.QuestionTypes = questionbank.CollectTypes(bank.Questions)
	e.bank = bank

	var saveErr error
	if err := e.repo.SaveBank(ctx, bank); err != nil {
		e.logger.Error("failed to save bank", "key", bank.StorageKey, "error", err)
		saveErr = &PersistError{Op: "save bank", Key: bank.StorageKey, Wrapped: err}
	}

	e.pool = questionbank.CloneQuestions(bank.Questions)
	e.working = questionbank.FilterByType(e.pool, e.typeFilter)
	e.active = true
	e.record.Clamp(len(e.working))
	e.display()
	return saveErr
}
