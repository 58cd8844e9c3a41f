package questionbank_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
)

func TestOptionsSlots(t *testing.T) {
	opts := questionbank.Options{"A": "one", "C": "three"}
	assert.Equal(t, []string{"one", "", "three"}, opts.Slots())

	assert.Empty(t, questionbank.Options(nil).Slots())
	assert.Len(t, questionbank.EmptySlots().Slots(), questionbank.MaxOptions)
}

func TestFromSlots_DropsBlankAndReletters(t *testing.T) {
	got := questionbank.FromSlots([]string{"", "x", "  ", "y"})
	assert.Equal(t, questionbank.Options{"A": "x", "B": "y"}, got)
}

func TestTrueFalseOptions(t *testing.T) {
	assert.Equal(t, questionbank.Options{"A": "正确", "B": "错误"}, questionbank.TrueFalseOptions())
}
