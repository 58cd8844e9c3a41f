package questionbank

import (
	"errors"
	"slices"
	"strings"
)

// Fixed type vocabulary.
const (
	TypeFillBlank   = "填空题"
	TypeSingle      = "单选题"
	TypeMultiple    = "多选题"
	TypeTrueFalse   = "判断题"
	TypeShortAnswer = "问答题"

	// TypeUnknown is assigned to spreadsheet rows without a type cell.
	TypeUnknown = "未知"

	// AllTypes is the wildcard type filter. It is always the first entry of
	// QuestionBank.QuestionTypes.
	AllTypes = "全部题型"
)

// Display labels shared by parsers and the editor.
const (
	BlankPlaceholder  = "______"
	MarkerPlaceholder = "(   )"
	LabelCorrect      = "正确"
	LabelIncorrect    = "错误"
	DefaultDifficulty = "普通"
)

// Question is one testable unit of a bank.
type Question struct {
	ID         int     `json:"id"`
	Type       string  `json:"type"`
	Content    string  `json:"content"`
	Answer     string  `json:"answer"`
	Options    Options `json:"options"`
	Difficulty string  `json:"difficulty,omitempty"`

	// Provenance, for diagnostics only.
	SheetName string `json:"sheetName,omitempty"`
	RawIndex  int    `json:"rawIndex,omitempty"`
}

// IsRecall reports whether the question is self-graded on reveal
// (fill-in-the-blank or short-answer).
func (q Question) IsRecall() bool {
	return IsRecallType(q.Type)
}

// IsMultipleChoice reports whether answering needs an explicit confirm step.
func (q Question) IsMultipleChoice() bool {
	return !q.IsRecall() && strings.Contains(q.Type, "多选")
}

// DifficultyLabel returns the display difficulty.
func (q Question) DifficultyLabel() string {
	if q.Difficulty == "" {
		return DefaultDifficulty
	}
	return q.Difficulty
}

// Clone returns a deep copy of q.
func (q Question) Clone() Question {
	q.Options = q.Options.Clone()
	return q
}

// IsRecallType reports whether a type label denotes a recall question.
func IsRecallType(t string) bool {
	return strings.Contains(t, "填空") || strings.Contains(t, "问答")
}

// QuestionBank is the normalized result of one imported source file.
type QuestionBank struct {
	Questions     []Question `json:"questions"`
	QuestionTypes []string   `json:"questionTypes"`
	DisplayName   string     `json:"displayName"`
	StorageKey    string     `json:"storageKey"`
}

func New() *QuestionBank {
	return &QuestionBank{
		Questions:     []Question{},
		QuestionTypes: []string{AllTypes},
	}
}

// ErrEmptyContent is returned by AddQuestion for a blank question.
var ErrEmptyContent = errors.New("question content cannot be empty")

// AddQuestion appends q with the next sequential id and records its type.
func (qb *QuestionBank) AddQuestion(q Question) error {
	if strings.TrimSpace(q.Content) == "" {
		return ErrEmptyContent
	}
	q.ID = len(qb.Questions) + 1
	qb.Questions = append(qb.Questions, q)
	if len(qb.QuestionTypes) == 0 {
		qb.QuestionTypes = []string{AllTypes}
	}
	if q.Type != "" && !slices.Contains(qb.QuestionTypes, q.Type) {
		qb.QuestionTypes = append(qb.QuestionTypes, q.Type)
	}
	return nil
}

// Find returns the question with the given id.
func (qb *QuestionBank) Find(id int) (Question, bool) {
	for _, q := range qb.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Clone returns a deep copy of the bank.
func (qb *QuestionBank) Clone() *QuestionBank {
	out := *qb
	out.Questions = CloneQuestions(qb.Questions)
	out.QuestionTypes = append([]string(nil), qb.QuestionTypes...)
	return &out
}

// EnsureTypes recomputes QuestionTypes when it is missing or lacks the
// wildcard entry.
func (qb *QuestionBank) EnsureTypes() {
	if len(qb.QuestionTypes) == 0 || qb.QuestionTypes[0] != AllTypes {
		qb.QuestionTypes = CollectTypes(qb.Questions)
	}
	if qb.Questions == nil {
		qb.Questions = []Question{}
	}
}

// FillMissingIDs gives every question whose id is below 1 or repeats an
// earlier one the smallest id not used by any other question. Valid ids are
// left alone.
func (qb *QuestionBank) FillMissingIDs() {
	used := make(map[int]bool, len(qb.Questions))
	keep := make([]bool, len(qb.Questions))
	for i, q := range qb.Questions {
		if q.ID >= 1 && !used[q.ID] {
			used[q.ID] = true
			keep[i] = true
		}
	}
	next := 1
	for i := range qb.Questions {
		if keep[i] {
			continue
		}
		for used[next] {
			next++
		}
		qb.Questions[i].ID = next
		used[next] = true
	}
}

// FilterByType returns the questions of the given type, or all of them for
// AllTypes and the empty filter. The result shares no storage with qs.
func FilterByType(qs []Question, typeFilter string) []Question {
	out := make([]Question, 0, len(qs))
	for _, q := range qs {
		if typeFilter == "" || typeFilter == AllTypes || q.Type == typeFilter {
			out = append(out, q.Clone())
		}
	}
	return out
}

// CloneQuestions deep-copies a question slice.
func CloneQuestions(qs []Question) []Question {
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = q.Clone()
	}
	return out
}

// CollectTypes returns the wildcard followed by the distinct non-empty types
// of qs in first-seen order.
func CollectTypes(qs []Question) []string {
	types := NewTypeSet()
	for _, q := range qs {
		types.Add(q.Type)
	}
	return types.List()
}

// TypeSet accumulates distinct type labels in encounter order.
type TypeSet struct {
	seen  map[string]bool
	order []string
}

func NewTypeSet() *TypeSet {
	return &TypeSet{
		seen:  map[string]bool{AllTypes: true},
		order: []string{AllTypes},
	}
}

func (ts *TypeSet) Add(t string) {
	if t == "" || ts.seen[t] {
		return
	}
	ts.seen[t] = true
	ts.order = append(ts.order, t)
}

func (ts *TypeSet) List() []string {
	return append([]string(nil), ts.order...)
}
