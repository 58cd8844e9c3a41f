package api

import (
	"context"
	"errors"
	"net/http"

	practicesession "github.com/remaimber-it/quizbank/internal/domain/practice_session"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateSessionRequest struct {
	StorageKey string `json:"storage_key"`
	Mode       string `json:"mode"`
	Type       string `json:"type"`
}

func (r *CreateSessionRequest) Validate() error {
	if r.StorageKey == "" {
		return errors.New("storage_key is required")
	}
	if _, err := practicesession.ParseMode(r.Mode); err != nil {
		return err
	}
	return nil
}

type CreateSessionResponse struct {
	ID    string                       `json:"id"`
	State practicesession.SessionState `json:"state"`
}

type SelectTypeRequest struct {
	Type string `json:"type"`
}

func (r *SelectTypeRequest) Validate() error { return nil }

type GotoRequest struct {
	Position *int `json:"position"`
}

func (r *GotoRequest) Validate() error {
	if r.Position == nil {
		return errors.New("position is required")
	}
	return nil
}

type SwipeRequest struct {
	Direction string `json:"direction"`
}

func (r *SwipeRequest) Validate() error {
	switch practicesession.Direction(r.Direction) {
	case practicesession.SwipeNext, practicesession.SwipePrev:
		return nil
	}
	return errors.New("direction must be next or prev")
}

type SwipeResponse struct {
	Accepted bool                         `json:"accepted"`
	State    practicesession.SessionState `json:"state"`
}

type SelectOptionRequest struct {
	Option *int `json:"option"`
}

func (r *SelectOptionRequest) Validate() error {
	if r.Option == nil {
		return errors.New("option is required")
	}
	return nil
}

type AnswerResponse struct {
	Outcome practicesession.Outcome      `json:"outcome"`
	State   practicesession.SessionState `json:"state"`
}

type FavoriteResponse struct {
	Collected bool                         `json:"collected"`
	State     practicesession.SessionState `json:"state"`
}

type SearchRequest struct {
	Keyword string `json:"keyword"`
}

func (r *SearchRequest) Validate() error { return nil }

type SearchResponse struct {
	Matches int                          `json:"matches"`
	State   practicesession.SessionState `json:"state"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createSession opens a practice session over a stored bank.
// @Summary      Start a practice session
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        body  body  CreateSessionRequest  true  "Bank, mode and type"
// @Success      201  {object}  CreateSessionResponse
// @Failure      400  {string}  string
// @Failure      404  {string}  string  "bank not found"
// @Failure      409  {string}  string  "no questions for this selection"
// @Router       /sessions [post]
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sessionID, state, err := h.practice.Start(r.Context(), req.StorageKey, practicesession.Mode(req.Mode), req.Type)
	if h.handleError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusCreated, CreateSessionResponse{ID: sessionID, State: state})
}

// getSession returns the current session state.
// @Summary      Get session state
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path  string  true  "Session id"
// @Success      200  {object}  practicesession.SessionState
// @Failure      404  {string}  string  "session not found"
// @Router       /sessions/{sessionID} [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	state, err := h.practice.State(r.PathValue("sessionID"))
	if h.handleError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// closeSession forgets a session.
// @Summary      Close a practice session
// @Tags         Sessions
// @Param        sessionID  path  string  true  "Session id"
// @Success      204
// @Failure      404  {string}  string  "session not found"
// @Router       /sessions/{sessionID} [delete]
func (h *Handler) closeSession(w http.ResponseWriter, r *http.Request) {
	if h.handleError(w, h.practice.Close(r.PathValue("sessionID")), "session") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// selectType switches the session to another question type.
// @Summary      Select question type
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path  string  true  "Session id"
// @Param        body  body  SelectTypeRequest  true  "Type label"
// @Success      200  {object}  practicesession.SessionState
// @Failure      404  {string}  string  "session not found"
// @Failure      409  {string}  string  "not allowed in the current session state"
// @Router       /sessions/{sessionID}/type [post]
func (h *Handler) selectType(w http.ResponseWriter, r *http.Request) {
	var req SelectTypeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	h.run(w, r, func(ctx context.Context, e *practicesession.Engine) error {
		return e.SelectType(ctx, req.Type)
	})
}

// gotoQuestion jumps to a position.
// @Summary      Go to a position
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path  string  true  "Session id"
// @Param        body  body  GotoRequest  true  "Position"
// @Success      200  {object}  practicesession.SessionState
// @Failure      400  {string}  string
// @Failure      404  {string}  string  "session not found"
// @Failure      409  {string}  string  "not allowed in the current session state"
// @Router       /sessions/{sessionID}/goto [post]
func (h *Handler) gotoQuestion(w http.ResponseWriter, r *http.Request) {
	var req GotoRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	h.run(w, r, func(ctx context.Context, e *practicesession.Engine) error {
		return e.Goto(ctx, *req.Position)
	})
}

// nextQuestion moves to the next position.
// @Summary      Next question
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path  string  true  "Session id"
// @Success      200  {object}  practicesession.SessionState
// @Failure      404  {string}  string  "session not found"
// @Failure      409  {string}  string  "not allowed in the current session state"
// @Router       /sessions/{sessionID}/next [post]
func (h *Handler) nextQuestion(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func(ctx context.Context, e *practicesession.Engine) error {
		return e.Next(ctx)
	})
}

// prevQuestion moves to the previous position.
// @Summary      Previous question
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path  string  true  "Session id"
// @Success      200  {object}  practicesession.SessionState
// @Failure      404  {string}  string  "session not found"
// @Failure      409  {string}  string  "not allowed in the current session state"
// @Router       /sessions/{sessionID}/prev [post]
func (h *Handler) prevQuestion(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func(ctx context.Context, e *practicesession.Engine) error {
		return e.Prev(ctx)
	})
}

// swipe navigates by gesture; gestures inside the cool-down are ignored.
// @Summary      Swipe
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path  string  true  "Session id"
// @Param        body  body  SwipeRequest  true  "Direction"
// @Success      200  {object}  SwipeResponse
// @Failure      400  {string}  string
// @Failure      404  {string}  string  "session not found"
// @Failure      409  {string}  string  "not allowed in the current session state"
// @Router       /sessions/{sessionID}/swipe [post]
func (h *Handler) swipe(w http.ResponseWriter, r *http.Request) {
	var req SwipeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	var accepted bool
	state, err := h.practice.Do(r.Context(), r.PathValue("sessionID"), func(ctx context.Context, e *practicesession.Engine) error {
		var err error
		accepted, err = e.Swipe(ctx, practicesession.Direction(req.Direction))
		return err
	})
	if h.handleError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, SwipeResponse{Accepted: accepted, State: state})
}

// selectOption selects an option of the current question.
// @Summary      Select an option
// @Description  Single-answer questions are submitted, multiple-choice options toggle and recall questions reveal.
// @Tags         Answers
// @Accept       json
// @Produce      json
// @Param        sessionID  path  string  true  "Session id"
// @Param        body  body  SelectOptionRequest  true  "Option index"
// @Success      200  {object}  AnswerResponse
// @Failure      400  {string}  string
// @Failure      404  {string}  string  "session not found"
// @Failure      409  {string}  string  "not allowed in the current session state"
// @Router       /sessions/{sessionID}/select [post]
func (h *Handler) selectOption(w http.ResponseWriter, r *http.Request) {
	var req SelectOptionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	h.answer(w, r, func(ctx context.Context, e *practicesession.Engine) (practicesession.Outcome, error) {
		return e.SelectOption(ctx, *req.Option)
	})
}

// confirmSelection submits a multiple-choice selection.
// @Summary      Confirm selection
// @Tags         Answers
// @Produce      json
// @Param        sessionID  path  string  true  "Session id"
// @Success      200  {object}  AnswerResponse
// @Failure      404  {string}  string  "session not found"
// @Failure      409  {string}  string  "not allowed in the current session state"
// @Router       /sessions/{sessionID}/confirm [post]
func (h *Handler) confirmSelection(w http.ResponseWriter, r *http.Request) {
	h.answer(w, r, func(ctx context.Context, e *practicesession.Engine) (practicesession.Outcome, error) {
		return e.ConfirmSelection(ctx)
	})
}

// reveal reveals the answer of a recall question.
// @Summary      Reveal answer
// @Tags         Answers
// @Produce      json
// @Param        sessionID  path  string  true  "Session id"
// @Success      200  {object}  AnswerResponse
// @Failure      404  {string}  string  "session not found"
// @Failure      409  {string}  string  "not allowed in the current session state"
// @Router       /sessions/{sessionID}/reveal [post]
func (h *Handler) reveal(w http.ResponseWriter, r *http.Request) {
	h.answer(w, r, func(ctx context.Context, e *practicesession.Engine) (practicesession.Outcome, error) {
		return e.Reveal(ctx)
	})
}

// toggleFavorite adds or removes the current question from the favorites.
// @Summary      Toggle favorite
// @Tags         Answers
// @Produce      json
// @Param        sessionID  path  string  true  "Session id"
// @Success      200  {object}  FavoriteResponse
// @Failure      404  {string}  string  "session not found"
// @Failure      409  {string}  string  "not allowed in the current session state"
// @Router       /sessions/{sessionID}/favorite [post]
func (h *Handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	var collected bool
	state, err := h.practice.Do(r.Context(), r.PathValue("sessionID"), func(ctx context.Context, e *practicesession.Engine) error {
		var err error
		collected, err = e.ToggleFavorite(ctx)
		return err
	})
	if h.handleError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, FavoriteResponse{Collected: collected, State: state})
}

// resetProgress clears the recorded answers of the selection.
// @Summary      Reset progress
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path  string  true  "Session id"
// @Success      200  {object}  practicesession.SessionState
// @Failure      404  {string}  string  "session not found"
// @Failure      409  {string}  string  "not allowed in the current session state"
// @Router       /sessions/{sessionID}/reset [post]
func (h *Handler) resetProgress(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func(ctx context.Context, e *practicesession.Engine) error {
		return e.ResetProgress(ctx)
	})
}

// search narrows a search-mode session to the questions matching a keyword.
// @Summary      Search questions
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path  string  true  "Session id"
// @Param        body  body  SearchRequest  true  "Keyword"
// @Success      200  {object}  SearchResponse
// @Failure      400  {string}  string
// @Failure      404  {string}  string  "session not found"
// @Failure      409  {string}  string  "not allowed in the current session state"
// @Router       /sessions/{sessionID}/search [post]
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	var matches int
	state, err := h.practice.Do(r.Context(), r.PathValue("sessionID"), func(ctx context.Context, e *practicesession.Engine) error {
		var err error
		matches, err = e.Search(ctx, req.Keyword)
		return err
	})
	if h.handleError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, SearchResponse{Matches: matches, State: state})
}

// run applies fn to the session and responds with the new state.
func (h *Handler) run(w http.ResponseWriter, r *http.Request, fn func(context.Context, *practicesession.Engine) error) {
	state, err := h.practice.Do(r.Context(), r.PathValue("sessionID"), fn)
	if h.handleError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, state)
}

func (h *Handler) answer(w http.ResponseWriter, r *http.Request, fn func(context.Context, *practicesession.Engine) (practicesession.Outcome, error)) {
	out, state, err := h.practice.Answer(r.Context(), r.PathValue("sessionID"), fn)
	if h.handleError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, AnswerResponse{Outcome: out, State: state})
}
