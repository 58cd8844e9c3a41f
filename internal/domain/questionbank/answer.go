package questionbank

import (
	"slices"
	"strings"

	"golang.org/x/text/width"
)

// CorrectOptionIndex maps a stored answer string to the sorted set of
// correct option positions. Letters may be upper or lower case, half or
// full width, concatenated ("AC") or comma separated ("A, C"). An answer
// with no recognizable letter yields [0].
func CorrectOptionIndex(answer string) []int {
	normalized := strings.ToUpper(strings.TrimSpace(width.Narrow.String(answer)))
	if normalized == "" {
		return []int{0}
	}

	var tokens []string
	if strings.Contains(normalized, ",") {
		for _, part := range strings.Split(normalized, ",") {
			tokens = append(tokens, strings.TrimSpace(part))
		}
	} else {
		for _, r := range normalized {
			tokens = append(tokens, string(r))
		}
	}

	var indices []int
	for _, tok := range tokens {
		if i := letterIndex(tok); i >= 0 {
			indices = append(indices, i)
		}
	}
	if len(indices) == 0 {
		return []int{0}
	}
	return SortedSet(indices)
}

// NormalizeLetters returns the option letters of answer, upper-cased, sorted
// and de-duplicated ("bda" -> "ABD"). Characters that are not option letters
// are dropped.
func NormalizeLetters(answer string) string {
	var b strings.Builder
	for _, i := range letterSet(answer) {
		b.WriteString(OptionLetters[i])
	}
	return b.String()
}

// SortedSet returns a sorted copy of xs without duplicates.
func SortedSet(xs []int) []int {
	out := slices.Clone(xs)
	slices.Sort(out)
	return slices.Compact(out)
}

// SameSelection reports whether two option-position selections are equal as
// sets.
func SameSelection(a, b []int) bool {
	return slices.Equal(SortedSet(a), SortedSet(b))
}

func letterSet(answer string) []int {
	var indices []int
	for _, r := range strings.ToUpper(width.Narrow.String(answer)) {
		if i := letterIndex(string(r)); i >= 0 {
			indices = append(indices, i)
		}
	}
	return SortedSet(indices)
}

func letterIndex(tok string) int {
	for i, l := range OptionLetters {
		if tok == l {
			return i
		}
	}
	return -1
}
