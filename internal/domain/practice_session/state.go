package practicesession

// Status is the answer state of one working position.
type Status string

const (
	StatusUnanswered Status = "unanswered"
	StatusCorrect    Status = "correct"
	StatusWrong      Status = "wrong"
)

// OptionView is one display option with its highlight state.
type OptionView struct {
	Text     string `json:"text"`
	Selected bool   `json:"selected"`
	// Correct and Wrong are only set once the answer is shown.
	Correct bool `json:"correct"`
	Wrong   bool `json:"wrong"`
}

// Draft is the editable copy of the current question in edit mode.
type Draft struct {
	Content string   `json:"content"`
	Options []string `json:"options"`
}

// SessionState is a snapshot of everything a host needs to render the
// current position.
type SessionState struct {
	Mode          Mode     `json:"mode"`
	TypeFilter    string   `json:"typeFilter"`
	DisplayName   string   `json:"displayName"`
	QuestionTypes []string `json:"questionTypes"`
	Active        bool     `json:"active"`

	Position   int `json:"position"`
	Total      int `json:"total"`
	QuestionID int `json:"questionId"`

	Type             string       `json:"type"`
	Content          string       `json:"content"`
	Options          []OptionView `json:"options"`
	Difficulty       string       `json:"difficulty"`
	Selected         []int        `json:"selected"`
	ShowAnswer       bool         `json:"showAnswer"`
	CorrectIndex     []int        `json:"correctIndex,omitempty"`
	Answer           string       `json:"answer,omitempty"`
	IsMultipleChoice bool         `json:"isMultipleChoice"`
	IsRecall         bool         `json:"isRecall"`
	IsCollected      bool         `json:"isCollected"`

	Statuses  []Status `json:"statuses"`
	Completed int      `json:"completed"`
	Wrong     int      `json:"wrong"`

	Draft *Draft `json:"draft,omitempty"`

	// Warning is set by the host when the operation succeeded in memory but
	// its storage write failed.
	Warning string `json:"warning,omitempty"`
}

// State returns a snapshot of the session. Answers are only included once
// the current position has been answered.
func (e *Engine) State() SessionState {
	st := SessionState{
		Mode:       e.mode,
		TypeFilter: e.typeFilter,
		Active:     e.active,
		Selected:   []int{},
		Statuses:   []Status{},
	}
	if e.bank != nil {
		st.DisplayName = e.bank.DisplayName
		st.QuestionTypes = append([]string(nil), e.bank.QuestionTypes...)
	}
	if !e.active || len(e.working) == 0 {
		return st
	}

	pos := e.record.Index
	q := e.working[pos]
	correct := correctIndex(q)

	st.Position = pos
	st.Total = len(e.working)
	st.QuestionID = q.ID
	st.Type = q.Type
	st.Content = q.Content
	st.Difficulty = q.DifficultyLabel()
	st.Selected = append(st.Selected, e.selected...)
	st.ShowAnswer = e.showAnswer
	st.IsMultipleChoice = q.IsMultipleChoice()
	st.IsRecall = q.IsRecall()
	st.IsCollected = e.favorites.Has(q.ID)
	if e.showAnswer {
		st.CorrectIndex = correct
		if q.IsRecall() {
			st.Answer = q.Options.Get("A")
		} else {
			st.Answer = q.Answer
		}
	}

	for i, text := range displayOptions(q) {
		v := OptionView{Text: text, Selected: contains(e.selected, i)}
		if e.showAnswer {
			v.Correct = contains(correct, i)
			v.Wrong = v.Selected && !v.Correct
		}
		st.Options = append(st.Options, v)
	}

	st.Statuses = make([]Status, len(e.working))
	for i := range e.working {
		st.Statuses[i] = StatusUnanswered
		if a, ok := e.record.Answer(i); ok {
			st.Statuses[i] = StatusWrong
			if a.IsCorrect {
				st.Statuses[i] = StatusCorrect
			}
		}
	}
	st.Completed, st.Wrong = e.record.Counts(len(e.working))

	if e.mode == ModeEdit {
		d := Draft{Content: e.draft.Content, Options: append([]string(nil), e.draft.Options...)}
		st.Draft = &d
	}
	return st
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
