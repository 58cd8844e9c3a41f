package practicesession

import (
	"context"
	"strings"

	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
)

// SearchCapable narrows a session to the questions matching a keyword.
type SearchCapable interface {
	Search(ctx context.Context, keyword string) (int, error)
}

type searchHost interface {
	corpus() (qs []questionbank.Question, typeFilter string, err error)
	usePool(ctx context.Context, qs []questionbank.Question) error
}

type searcher struct {
	host    searchHost
	keyword string
}

// Search matches keyword case-insensitively against content and every
// option text, then makes the matches the session pool. It returns the
// number of matches. The keyword is kept so a later type change searches
// the whole bank again.
func (s *searcher) Search(ctx context.Context, keyword string) (int, error) {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return 0, ErrEmptyKeyword
	}
	qs, typeFilter, err := s.host.corpus()
	if err != nil {
		return 0, err
	}

	matches := matchAll(qs, typeFilter, keyword)
	if len(matches) == 0 {
		return 0, ErrNoWorkingData
	}
	s.keyword = keyword
	return len(matches), s.host.usePool(ctx, matches)
}

// rerun matches the last keyword against qs under a new type filter. ok is
// false when no search has run yet.
func (s *searcher) rerun(qs []questionbank.Question, typeFilter string) (matches []questionbank.Question, ok bool) {
	if s.keyword == "" {
		return nil, false
	}
	return matchAll(qs, typeFilter, s.keyword), true
}

func matchAll(qs []questionbank.Question, typeFilter, keyword string) []questionbank.Question {
	var matches []questionbank.Question
	for _, q := range questionbank.FilterByType(qs, typeFilter) {
		if matchesKeyword(q, keyword) {
			matches = append(matches, q)
		}
	}
	return matches
}

func matchesKeyword(q questionbank.Question, keyword string) bool {
	if strings.Contains(strings.ToLower(q.Content), keyword) {
		return true
	}
	for _, l := range questionbank.OptionLetters {
		if strings.Contains(strings.ToLower(q.Options.Get(l)), keyword) {
			return true
		}
	}
	return false
}

func (e *Engine) Search(ctx context.Context, keyword string) (int, error) {
	return e.finder.Search(ctx, keyword)
}

func (e *Engine) corpus() ([]questionbank.Question, string, error) {
	if !e.loaded {
		return nil, "", ErrNotActive
	}
	if e.mode != ModeSearch {
		return nil, "", ErrNotSearchable
	}
	return e.bank.Questions, e.typeFilter, nil
}

func (e *Engine) usePool(ctx context.Context, qs []questionbank.Question) error {
	e.pool = qs
	return e.SelectType(ctx, e.typeFilter)
}
