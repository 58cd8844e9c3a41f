package questionbank

import "strings"

// MaxOptions is the number of option slots a question can carry.
const MaxOptions = 9

// OptionLetters maps option positions to their letter keys.
var OptionLetters = [MaxOptions]string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}

// Options maps an option letter to its text. An absent key and an empty
// value both mean "no such option"; explicit empty slots exist only while a
// question is being edited.
type Options map[string]string

// Get returns the text for letter, or "".
func (o Options) Get(letter string) string {
	if o == nil {
		return ""
	}
	return o[letter]
}

// Clone returns a copy of o. A nil map stays nil.
func (o Options) Clone() Options {
	if o == nil {
		return nil
	}
	out := make(Options, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// Slots returns the option texts in letter order for every letter present
// in the map, including explicit empty slots. Positions in the result are
// the option positions used by answer records.
func (o Options) Slots() []string {
	last := -1
	for i, l := range OptionLetters {
		if _, ok := o[l]; ok {
			last = i
		}
	}
	out := make([]string, 0, last+1)
	for i := 0; i <= last; i++ {
		out = append(out, o[OptionLetters[i]])
	}
	return out
}

// FromSlots builds Options from texts in position order, dropping blank
// entries and re-lettering the rest from A.
func FromSlots(texts []string) Options {
	out := Options{}
	n := 0
	for _, t := range texts {
		if strings.TrimSpace(t) == "" || n >= MaxOptions {
			continue
		}
		out[OptionLetters[n]] = t
		n++
	}
	return out
}

// EmptySlots returns an Options value with all nine letters present and
// empty.
func EmptySlots() Options {
	out := make(Options, MaxOptions)
	for _, l := range OptionLetters {
		out[l] = ""
	}
	return out
}

// TrueFalseOptions returns the fixed two-option label set.
func TrueFalseOptions() Options {
	return Options{"A": LabelCorrect, "B": LabelIncorrect}
}
