// Package progress holds the per-user practice state persisted next to a
// bank: answer records per session and the wrong/favorite id sets.
package progress

import (
	"encoding/json"
	"slices"
	"strings"
)

// Storage-key prefixes for progress state.
const (
	recordKeyPrefix   = "excelSave_"
	wrongSetPrefix    = "excelData_wrong_"
	favoriteSetPrefix = "excelData_favorite_"
)

// AnswerRecord is the outcome of one submission at a working position.
type AnswerRecord struct {
	Selected  []int `json:"selected"`
	IsCorrect bool  `json:"isCorrect"`
	Timestamp int64 `json:"timestamp"` // unix milliseconds
}

// SessionRecord is the persisted progress of one (mode, type, bank)
// session. UserAnswers is keyed by position in the working subset.
type SessionRecord struct {
	Index       int                  `json:"index"`
	UserAnswers map[int]AnswerRecord `json:"userAnswers"`
}

func NewSessionRecord() *SessionRecord {
	return &SessionRecord{UserAnswers: map[int]AnswerRecord{}}
}

// Answer returns the record at position pos.
func (r *SessionRecord) Answer(pos int) (AnswerRecord, bool) {
	a, ok := r.UserAnswers[pos]
	return a, ok
}

// SetAnswer stores a record at position pos.
func (r *SessionRecord) SetAnswer(pos int, a AnswerRecord) {
	if r.UserAnswers == nil {
		r.UserAnswers = map[int]AnswerRecord{}
	}
	r.UserAnswers[pos] = a
}

// RemoveAt drops the answer at position k and moves every later answer down
// one position. Earlier answers are untouched.
func (r *SessionRecord) RemoveAt(k int) {
	shifted := make(map[int]AnswerRecord, len(r.UserAnswers))
	for pos, a := range r.UserAnswers {
		switch {
		case pos < k:
			shifted[pos] = a
		case pos > k:
			shifted[pos-1] = a
		}
	}
	r.UserAnswers = shifted
}

// InsertAt opens position k: every answer at k or later moves up one
// position.
func (r *SessionRecord) InsertAt(k int) {
	shifted := make(map[int]AnswerRecord, len(r.UserAnswers))
	for pos, a := range r.UserAnswers {
		if pos >= k {
			pos++
		}
		shifted[pos] = a
	}
	r.UserAnswers = shifted
}

// Clamp keeps Index within [0, n-1], or 0 when n is 0.
func (r *SessionRecord) Clamp(n int) {
	if r.Index >= n {
		r.Index = n - 1
	}
	if r.Index < 0 {
		r.Index = 0
	}
}

// Counts returns the number of answered and wrongly answered positions
// below n.
func (r *SessionRecord) Counts(n int) (completed, wrong int) {
	for pos, a := range r.UserAnswers {
		if pos < 0 || pos >= n {
			continue
		}
		completed++
		if !a.IsCorrect {
			wrong++
		}
	}
	return completed, wrong
}

// IDSet is a set of global question ids. It serializes as an ascending JSON
// array.
type IDSet map[int]struct{}

func NewIDSet(ids ...int) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

func (s IDSet) Add(id int) {
	s[id] = struct{}{}
}

func (s IDSet) Remove(id int) {
	delete(s, id)
}

// Toggle flips membership of id and reports whether it is now present.
func (s IDSet) Toggle(id int) bool {
	if s.Has(id) {
		delete(s, id)
		return false
	}
	s[id] = struct{}{}
	return true
}

// Sorted returns the members in ascending order.
func (s IDSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

func (s IDSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *IDSet) UnmarshalJSON(data []byte) error {
	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewIDSet(ids...)
	return nil
}

// RecordKey is the storage key of a session record. An empty typeFilter
// omits the type segment.
func RecordKey(mode, typeFilter, displayName string) string {
	if typeFilter == "" {
		return recordKeyPrefix + mode + "_" + displayName
	}
	return recordKeyPrefix + mode + "_" + typeFilter + "_" + displayName
}

// WrongSetKey is the storage key of a bank's wrong-answer id set.
func WrongSetKey(displayName string) string {
	return wrongSetPrefix + displayName
}

// FavoriteSetKey is the storage key of a bank's favorite id set.
func FavoriteSetKey(displayName string) string {
	return favoriteSetPrefix + displayName
}

// KeysFor lists every progress key that may belong to displayName for the
// given modes and type labels, used when a bank is deleted.
func KeysFor(displayName string, modes, types []string) []string {
	keys := []string{WrongSetKey(displayName), FavoriteSetKey(displayName)}
	for _, m := range modes {
		keys = append(keys, RecordKey(m, "", displayName))
		for _, t := range types {
			keys = append(keys, RecordKey(m, t, displayName))
		}
	}
	return keys
}

// RecordKeyPrefix is shared by every session record key.
const RecordKeyPrefix = recordKeyPrefix

// IsRecordKeyFor reports whether key is a session record of displayName
// under one of modes, whatever its type segment. A type segment containing
// "_" cannot be told apart from the display name and is not matched.
func IsRecordKeyFor(key, displayName string, modes []string) bool {
	for _, m := range modes {
		rest, ok := strings.CutPrefix(key, recordKeyPrefix+m+"_")
		if !ok {
			continue
		}
		if rest == displayName {
			return true
		}
		if typ, ok := strings.CutSuffix(rest, "_"+displayName); ok && typ != "" && !strings.Contains(typ, "_") {
			return true
		}
	}
	return false
}
