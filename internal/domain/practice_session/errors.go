package practicesession

import (
	"errors"
	"fmt"
)

var (
	ErrNoWorkingData  = errors.New("no questions for this selection")
	ErrStorageFailure = errors.New("storage failure")
	ErrNotActive      = errors.New("no type selected")
	ErrLastQuestion   = errors.New("already at the last question")
	ErrFirstQuestion  = errors.New("already at the first question")
	ErrAnswerRevealed = errors.New("answer already revealed")
	ErrNotEditable    = errors.New("session is not in edit mode")
	ErrNotSearchable  = errors.New("session is not in search mode")
	ErrEmptyKeyword   = errors.New("search keyword is empty")
	ErrInvalidOption  = errors.New("option index out of range")
	ErrOptionLimit    = errors.New("option limit reached")
	ErrUnknownMode    = errors.New("unknown practice mode")
	ErrInvalidType    = errors.New("question type is required")
)

// PersistError reports a storage write that failed after the in-memory
// state was already updated. The session stays usable; the next successful
// write reconciles storage.
type PersistError struct {
	Op      string
	Key     string
	Wrapped error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Wrapped)
}

func (e *PersistError) Unwrap() []error {
	return []error{ErrStorageFailure, e.Wrapped}
}
