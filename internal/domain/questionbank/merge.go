package questionbank

import (
	"regexp"
	"slices"
)

// typePrecedence orders questions by type during a merge. Lower sorts first;
// labels not listed sort after all of them.
var typePrecedence = map[string]int{
	TypeFillBlank:   1,
	TypeSingle:      2,
	TypeMultiple:    3,
	TypeTrueFalse:   4,
	TypeShortAnswer: 5,
}

const unrankedPrecedence = 99

// TypePrecedence returns the sort rank of a type label.
func TypePrecedence(t string) int {
	if p, ok := typePrecedence[t]; ok {
		return p
	}
	return unrankedPrecedence
}

// SortByTypePrecedence stable-sorts qs in place by type precedence.
func SortByTypePrecedence(qs []Question) {
	slices.SortStableFunc(qs, func(a, b Question) int {
		return TypePrecedence(a.Type) - TypePrecedence(b.Type)
	})
}

// Renumber assigns every question its 1-based position as id.
func Renumber(qs []Question) {
	for i := range qs {
		qs[i].ID = i + 1
	}
}

// ReplaceType folds working back into the bank for the given type filter and
// returns the rebuilt question list.
//
// For AllTypes (or no filter) working replaces the whole list. Otherwise
// every question of typeFilter is dropped, working is appended and the
// result is stable-sorted by type precedence. Ids are renumbered 1..n in
// both cases.
func ReplaceType(bank []Question, working []Question, typeFilter string) []Question {
	var merged []Question
	if typeFilter == "" || typeFilter == AllTypes {
		merged = CloneQuestions(working)
	} else {
		merged = make([]Question, 0, len(bank)+len(working))
		for _, q := range bank {
			if q.Type != typeFilter {
				merged = append(merged, q.Clone())
			}
		}
		merged = append(merged, CloneQuestions(working)...)
		SortByTypePrecedence(merged)
	}
	Renumber(merged)
	return merged
}

var (
	bankKeyPrefix = regexp.MustCompile(`^(xls|xlsx|txt|txts|json)Data_`)
	bankKeyStamp  = regexp.MustCompile(`_\d+$`)
	bankKeyExt    = regexp.MustCompile(`(?i)\.(xls|xlsx|txt|txts|json)$`)
)

// BankKeyPrefixes lists the storage-key prefixes used for persisted banks.
var BankKeyPrefixes = []string{"xlsData_", "xlsxData_", "txtData_", "txtsData_", "jsonData_"}

// DisplayName derives the human label from a bank storage key by stripping
// the kind prefix, the timestamp suffix and the file extension.
func DisplayName(storageKey string) string {
	name := bankKeyPrefix.ReplaceAllString(storageKey, "")
	name = bankKeyStamp.ReplaceAllString(name, "")
	return bankKeyExt.ReplaceAllString(name, "")
}
