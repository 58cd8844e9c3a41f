package questionbank_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
)

func TestCorrectOptionIndex(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   []int
	}{
		{"single letter", "B", []int{1}},
		{"concatenated", "AC", []int{0, 2}},
		{"comma separated", "A,C", []int{0, 2}},
		{"comma with spaces", " c , a ", []int{0, 2}},
		{"lower case", "ac", []int{0, 2}},
		{"full width", "ＡＣ", []int{0, 2}},
		{"full width comma", "Ａ，Ｃ", []int{0, 2}},
		{"duplicates", "CAC", []int{0, 2}},
		{"last letter", "I", []int{8}},
		{"empty", "", []int{0}},
		{"unparseable", "正确", []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, questionbank.CorrectOptionIndex(tt.answer))
		})
	}
}

func TestNormalizeLetters(t *testing.T) {
	assert.Equal(t, "ABD", questionbank.NormalizeLetters("bda"))
	assert.Equal(t, "AC", questionbank.NormalizeLetters("C,A,C"))
	assert.Equal(t, "", questionbank.NormalizeLetters("xyz"))
}

func TestSameSelection(t *testing.T) {
	assert.True(t, questionbank.SameSelection([]int{2, 0}, []int{0, 2}))
	assert.True(t, questionbank.SameSelection([]int{0, 0, 2}, []int{2, 0}))
	assert.False(t, questionbank.SameSelection([]int{0}, []int{0, 2}))
}
