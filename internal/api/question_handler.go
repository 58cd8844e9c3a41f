package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	practicesession "github.com/remaimber-it/quizbank/internal/domain/practice_session"
	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
)

// ── Request / Response types ────────────────────────────────────────────────

type InsertQuestionRequest struct {
	Type   string `json:"type"`
	Answer string `json:"answer"`
}

func (r *InsertQuestionRequest) Validate() error {
	if strings.TrimSpace(r.Type) == "" {
		return errors.New("type is required")
	}
	return nil
}

// SaveQuestionRequest carries the edited draft. Omitted fields keep the
// current draft value, and so does an empty Options list. A non-empty
// Options replaces the option list position by position.
type SaveQuestionRequest struct {
	Content *string  `json:"content,omitempty"`
	Options []string `json:"options,omitempty"`
}

func (r *SaveQuestionRequest) Validate() error {
	if len(r.Options) > questionbank.MaxOptions {
		return errors.New("at most 9 options are allowed")
	}
	return nil
}

// ── Handlers ────────────────────────────────────────────────────────────────

// insertQuestion adds a question to the bank through an editMode session.
// @Summary      Insert a question
// @Tags         Editor
// @Accept       json
// @Produce      json
// @Param        sessionID  path  string  true  "Session id"
// @Param        body  body  InsertQuestionRequest  true  "Type and answer"
// @Success      201  {object}  practicesession.SessionState
// @Failure      400  {string}  string
// @Failure      404  {string}  string  "session not found"
// @Failure      409  {string}  string  "not allowed in the current session state"
// @Router       /sessions/{sessionID}/questions [post]
func (h *Handler) insertQuestion(w http.ResponseWriter, r *http.Request) {
	var req InsertQuestionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	state, err := h.practice.Do(r.Context(), r.PathValue("sessionID"), func(ctx context.Context, e *practicesession.Engine) error {
		return e.InsertQuestion(ctx, req.Type, req.Answer)
	})
	if h.handleError(w, err, "question") {
		return
	}
	respondJSON(w, http.StatusCreated, state)
}

// saveCurrentQuestion applies the draft to the current question and merges it into the bank.
// @Summary      Save the current question
// @Tags         Editor
// @Accept       json
// @Produce      json
// @Param        sessionID  path  string  true  "Session id"
// @Param        body  body  SaveQuestionRequest  true  "Edited draft"
// @Success      200  {object}  practicesession.SessionState
// @Failure      400  {string}  string
// @Failure      404  {string}  string  "session not found"
// @Failure      409  {string}  string  "not allowed in the current session state"
// @Router       /sessions/{sessionID}/questions/current [put]
func (h *Handler) saveCurrentQuestion(w http.ResponseWriter, r *http.Request) {
	var req SaveQuestionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	h.run(w, r, func(ctx context.Context, e *practicesession.Engine) error {
		if err := applyDraft(e, req); err != nil {
			return err
		}
		return e.SaveCurrent(ctx)
	})
}

// deleteCurrentQuestion removes the current question from the bank.
// @Summary      Delete the current question
// @Tags         Editor
// @Produce      json
// @Param        sessionID  path  string  true  "Session id"
// @Success      200  {object}  practicesession.SessionState
// @Failure      404  {string}  string  "session not found"
// @Failure      409  {string}  string  "not allowed in the current session state"
// @Router       /sessions/{sessionID}/questions/current [delete]
func (h *Handler) deleteCurrentQuestion(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func(ctx context.Context, e *practicesession.Engine) error {
		return e.DeleteCurrent(ctx)
	})
}

// applyDraft copies the request into the engine draft. Draft slots beyond
// the request are blanked, which drops them on save.
func applyDraft(e *practicesession.Engine, req SaveQuestionRequest) error {
	if req.Content != nil {
		if err := e.EditContent(*req.Content); err != nil {
			return err
		}
	}
	if len(req.Options) == 0 {
		return nil
	}

	draft := e.State().Draft
	if draft == nil {
		return practicesession.ErrNotEditable
	}
	have := len(draft.Options)
	for i, text := range req.Options {
		if i >= have {
			if err := e.AddOption(); err != nil {
				return err
			}
		}
		if err := e.EditOption(i, text); err != nil {
			return err
		}
	}
	for i := len(req.Options); i < have; i++ {
		if err := e.EditOption(i, ""); err != nil {
			return err
		}
	}
	return nil
}
