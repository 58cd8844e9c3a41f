package practicesession_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	practicesession "github.com/remaimber-it/quizbank/internal/domain/practice_session"
	"github.com/remaimber-it/quizbank/internal/domain/progress"
	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
	"github.com/remaimber-it/quizbank/internal/store"
)

const bankName = "期末"

func sampleBank() *questionbank.QuestionBank {
	qs := []questionbank.Question{
		{ID: 1, Type: questionbank.TypeFillBlank, Content: "北京是______的首都", Options: questionbank.Options{"A": "中国"}},
		{ID: 2, Type: questionbank.TypeSingle, Content: "2+2=?", Answer: "B", Options: questionbank.Options{"A": "3", "B": "4"}},
		{ID: 3, Type: questionbank.TypeSingle, Content: "1+1=?", Answer: "A", Options: questionbank.Options{"A": "2", "B": "3"}},
		{ID: 4, Type: questionbank.TypeMultiple, Content: "哪些是偶数", Answer: "AC", Options: questionbank.Options{"A": "2", "B": "3", "C": "4"}},
		{ID: 5, Type: questionbank.TypeTrueFalse, Content: "天是蓝的", Answer: "A", Options: questionbank.TrueFalseOptions()},
	}
	return &questionbank.QuestionBank{
		Questions:     qs,
		QuestionTypes: questionbank.CollectTypes(qs),
		DisplayName:   bankName,
		StorageKey:    "txtData_期末.txt_1700000000000",
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newEngine(t *testing.T, repo practicesession.Repository, mutate ...func(*practicesession.Config)) (*practicesession.Engine, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.UnixMilli(1700000000000)}
	cfg := practicesession.DefaultConfig()
	cfg.AdvanceDelay = 0
	cfg.Now = clock.Now
	for _, m := range mutate {
		m(&cfg)
	}
	return practicesession.NewEngine(repo, cfg, discardLogger()), clock
}

func openEngine(t *testing.T, mode practicesession.Mode, typeFilter string) (*practicesession.Engine, *store.Repository) {
	t.Helper()
	repo := store.NewRepository(store.NewMemory())
	e, _ := newEngine(t, repo)
	require.NoError(t, e.Open(context.Background(), sampleBank(), mode, typeFilter))
	return e, repo
}

type failingKV struct {
	store.KV
}

func (failingKV) Set(context.Context, string, []byte) error {
	return errors.New("disk full")
}

// ============================================================================
// Open / SelectType
// ============================================================================

func TestOpen_Sequential(t *testing.T) {
	e, _ := openEngine(t, practicesession.ModeSequential, questionbank.AllTypes)

	st := e.State()
	assert.True(t, st.Active)
	assert.Equal(t, 5, st.Total)
	assert.Equal(t, 0, st.Position)
	assert.Equal(t, 1, st.QuestionID)
	assert.True(t, st.IsRecall)
	require.Len(t, st.Options, 1)
	assert.Equal(t, practicesession.RevealPrompt, st.Options[0].Text)
	assert.Equal(t, questionbank.DefaultDifficulty, st.Difficulty)
	assert.Empty(t, st.Answer, "answer hidden until revealed")
	assert.Nil(t, st.Draft)
}

func TestOpen_TypeFilter(t *testing.T) {
	e, _ := openEngine(t, practicesession.ModeSequential, questionbank.TypeSingle)

	st := e.State()
	assert.Equal(t, 2, st.Total)
	assert.Equal(t, 2, st.QuestionID)
	assert.Equal(t, []string{"3", "4"}, []string{st.Options[0].Text, st.Options[1].Text})
}

func TestOpen_EmptyPools(t *testing.T) {
	tests := []struct {
		name       string
		mode       practicesession.Mode
		typeFilter string
	}{
		{"wrong without wrong set", practicesession.ModeWrong, questionbank.AllTypes},
		{"favorite without favorites", practicesession.ModeFavorite, questionbank.AllTypes},
		{"type with no questions", practicesession.ModeSequential, questionbank.TypeShortAnswer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newEngine(t, store.NewRepository(store.NewMemory()))
			err := e.Open(context.Background(), sampleBank(), tt.mode, tt.typeFilter)
			assert.ErrorIs(t, err, practicesession.ErrNoWorkingData)
			assert.False(t, e.State().Active)
		})
	}
}

func TestOpen_UnknownMode(t *testing.T) {
	e, _ := newEngine(t, store.NewRepository(store.NewMemory()))
	err := e.Open(context.Background(), sampleBank(), "exam", "")
	assert.ErrorIs(t, err, practicesession.ErrUnknownMode)
}

func TestOpen_RandomUsesShuffle(t *testing.T) {
	repo := store.NewRepository(store.NewMemory())
	e, _ := newEngine(t, repo, func(c *practicesession.Config) {
		c.Shuffle = func(n int, swap func(i, j int)) {
			for i := 0; i < n/2; i++ {
				swap(i, n-1-i)
			}
		}
	})
	require.NoError(t, e.Open(context.Background(), sampleBank(), practicesession.ModeRandom, questionbank.AllTypes))

	assert.Equal(t, 5, e.State().QuestionID)
	assert.Equal(t, 1, e.Bank().Questions[0].ID, "bank order untouched")
}

func TestSelectType_RestoresRecord(t *testing.T) {
	ctx := context.Background()
	repo := store.NewRepository(store.NewMemory())
	key := progress.RecordKey("sequential", questionbank.TypeSingle, bankName)

	rec := progress.NewSessionRecord()
	rec.Index = 7
	rec.SetAnswer(1, progress.AnswerRecord{Selected: []int{0}, IsCorrect: true})
	require.NoError(t, repo.SaveRecord(ctx, key, rec))

	e, _ := newEngine(t, repo)
	require.NoError(t, e.Open(ctx, sampleBank(), practicesession.ModeSequential, questionbank.TypeSingle))

	st := e.State()
	assert.Equal(t, 1, st.Position, "stale index clamped")
	assert.True(t, st.ShowAnswer)
	assert.Equal(t, []int{0}, st.Selected)
	assert.Equal(t, []practicesession.Status{practicesession.StatusUnanswered, practicesession.StatusCorrect}, st.Statuses)
	assert.Equal(t, 1, st.Completed)
}

// ============================================================================
// Answering
// ============================================================================

func TestSelectOption_SingleCorrectAdvances(t *testing.T) {
	ctx := context.Background()
	e, repo := openEngine(t, practicesession.ModeSequential, questionbank.TypeSingle)

	out, err := e.SelectOption(ctx, 1)
	require.NoError(t, err)
	assert.True(t, out.Correct)
	assert.True(t, out.Advanced)
	assert.Equal(t, 1, e.State().Position)

	rec, err := repo.LoadRecord(ctx, progress.RecordKey("sequential", questionbank.TypeSingle, bankName))
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Index)
	assert.Equal(t, progress.AnswerRecord{Selected: []int{1}, IsCorrect: true, Timestamp: 1700000000000}, rec.UserAnswers[0])
}

func TestSelectOption_SingleCorrectDelayedAdvance(t *testing.T) {
	repo := store.NewRepository(store.NewMemory())
	e, _ := newEngine(t, repo, func(c *practicesession.Config) { c.AdvanceDelay = 500 * time.Millisecond })
	require.NoError(t, e.Open(context.Background(), sampleBank(), practicesession.ModeSequential, questionbank.TypeSingle))

	out, err := e.SelectOption(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, out.Advanced)
	assert.Equal(t, 500*time.Millisecond, out.AdvanceAfter)
	assert.Equal(t, 0, e.State().Position)
}

func TestSelectOption_LastQuestionCorrectStays(t *testing.T) {
	ctx := context.Background()
	e, _ := openEngine(t, practicesession.ModeSequential, questionbank.TypeTrueFalse)

	out, err := e.SelectOption(ctx, 0)
	require.NoError(t, err)
	assert.True(t, out.Correct)
	assert.False(t, out.Advanced)
	assert.Equal(t, 0, e.State().Position)
}

func TestSelectOption_WrongUpdatesWrongSet(t *testing.T) {
	ctx := context.Background()
	e, repo := openEngine(t, practicesession.ModeSequential, questionbank.TypeSingle)

	out, err := e.SelectOption(ctx, 0)
	require.NoError(t, err)
	assert.False(t, out.Correct)

	st := e.State()
	assert.True(t, st.ShowAnswer)
	assert.Equal(t, []int{1}, st.CorrectIndex)
	assert.True(t, st.Options[0].Wrong)
	assert.True(t, st.Options[1].Correct)
	assert.Equal(t, 1, st.Wrong)

	wrong, err := repo.LoadIDSet(ctx, progress.WrongSetKey(bankName))
	require.NoError(t, err)
	assert.True(t, wrong.Has(2))

	_, err = e.SelectOption(ctx, 1)
	assert.ErrorIs(t, err, practicesession.ErrAnswerRevealed)
}

func TestCorrectAnswerClearsWrongSet(t *testing.T) {
	ctx := context.Background()
	repo := store.NewRepository(store.NewMemory())
	require.NoError(t, repo.SaveIDSet(ctx, progress.WrongSetKey(bankName), progress.NewIDSet(2, 5)))

	e, _ := newEngine(t, repo)
	require.NoError(t, e.Open(ctx, sampleBank(), practicesession.ModeWrong, questionbank.AllTypes))
	assert.Equal(t, 2, e.State().Total)

	_, err := e.SelectOption(ctx, 1)
	require.NoError(t, err)

	wrong, err := repo.LoadIDSet(ctx, progress.WrongSetKey(bankName))
	require.NoError(t, err)
	assert.Equal(t, []int{5}, wrong.Sorted())
}

func TestMultipleChoice_ToggleAndConfirm(t *testing.T) {
	ctx := context.Background()
	e, _ := openEngine(t, practicesession.ModeSequential, questionbank.TypeMultiple)
	require.True(t, e.State().IsMultipleChoice)

	for _, i := range []int{2, 1, 0, 1} {
		out, err := e.SelectOption(ctx, i)
		require.NoError(t, err)
		assert.False(t, out.Submitted)
	}
	assert.ElementsMatch(t, []int{0, 2}, e.State().Selected)

	out, err := e.ConfirmSelection(ctx)
	require.NoError(t, err)
	assert.True(t, out.Correct)
	assert.False(t, out.Advanced, "multiple choice does not auto-advance")
	assert.Equal(t, []int{0, 2}, e.State().Selected)
}

func TestSelectOption_OutOfRange(t *testing.T) {
	e, _ := openEngine(t, practicesession.ModeSequential, questionbank.TypeSingle)
	_, err := e.SelectOption(context.Background(), 5)
	assert.ErrorIs(t, err, practicesession.ErrInvalidOption)
}

func TestReveal_RecallRecordedCorrect(t *testing.T) {
	ctx := context.Background()
	e, repo := openEngine(t, practicesession.ModeSequential, questionbank.AllTypes)

	out, err := e.SelectOption(ctx, 0)
	require.NoError(t, err)
	assert.True(t, out.Correct)

	st := e.State()
	assert.True(t, st.ShowAnswer)
	assert.Equal(t, "中国", st.Answer)
	assert.Equal(t, 0, st.Position, "reveal never advances")

	rec, err := repo.LoadRecord(ctx, progress.RecordKey("sequential", questionbank.AllTypes, bankName))
	require.NoError(t, err)
	assert.True(t, rec.UserAnswers[0].IsCorrect)

	_, err = e.Reveal(ctx)
	assert.ErrorIs(t, err, practicesession.ErrAnswerRevealed)
}

func TestSubmit_PersistFailureKeepsState(t *testing.T) {
	repo := store.NewRepository(failingKV{KV: store.NewMemory()})
	e, _ := newEngine(t, repo)
	require.NoError(t, e.Open(context.Background(), sampleBank(), practicesession.ModeSequential, questionbank.TypeSingle))

	out, err := e.SelectOption(context.Background(), 0)
	assert.ErrorIs(t, err, practicesession.ErrStorageFailure)

	var pe *practicesession.PersistError
	assert.ErrorAs(t, err, &pe)
	assert.True(t, out.Submitted)
	assert.True(t, e.State().ShowAnswer)
}

// ============================================================================
// Navigation
// ============================================================================

func TestNavigation_Bounds(t *testing.T) {
	ctx := context.Background()
	e, repo := openEngine(t, practicesession.ModeSequential, questionbank.AllTypes)

	assert.ErrorIs(t, e.Prev(ctx), practicesession.ErrFirstQuestion)
	require.NoError(t, e.Goto(ctx, 4))
	assert.ErrorIs(t, e.Next(ctx), practicesession.ErrLastQuestion)
	assert.ErrorIs(t, e.Goto(ctx, 9), practicesession.ErrLastQuestion)
	assert.Equal(t, 4, e.State().Position)

	rec, err := repo.LoadRecord(ctx, progress.RecordKey("sequential", questionbank.AllTypes, bankName))
	require.NoError(t, err)
	assert.Equal(t, 4, rec.Index)
}

func TestSwipe_Cooldown(t *testing.T) {
	ctx := context.Background()
	repo := store.NewRepository(store.NewMemory())
	e, clock := newEngine(t, repo)
	require.NoError(t, e.Open(ctx, sampleBank(), practicesession.ModeSequential, questionbank.AllTypes))

	ok, err := e.Swipe(ctx, practicesession.SwipeNext)
	require.NoError(t, err)
	assert.True(t, ok)

	clock.t = clock.t.Add(100 * time.Millisecond)
	ok, err = e.Swipe(ctx, practicesession.SwipeNext)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, e.State().Position)

	clock.t = clock.t.Add(300 * time.Millisecond)
	ok, err = e.Swipe(ctx, practicesession.SwipePrev)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, e.State().Position)
}

func TestNotActive(t *testing.T) {
	e, _ := newEngine(t, store.NewRepository(store.NewMemory()))
	ctx := context.Background()

	assert.ErrorIs(t, e.Next(ctx), practicesession.ErrNotActive)
	_, err := e.SelectOption(ctx, 0)
	assert.ErrorIs(t, err, practicesession.ErrNotActive)
	assert.ErrorIs(t, e.SelectType(ctx, ""), practicesession.ErrNotActive)
}

// ============================================================================
// Favorites / reset
// ============================================================================

func TestToggleFavorite(t *testing.T) {
	ctx := context.Background()
	e, repo := openEngine(t, practicesession.ModeSequential, questionbank.TypeSingle)

	collected, err := e.ToggleFavorite(ctx)
	require.NoError(t, err)
	assert.True(t, collected)
	assert.True(t, e.State().IsCollected)

	favs, err := repo.LoadIDSet(ctx, progress.FavoriteSetKey(bankName))
	require.NoError(t, err)
	assert.Equal(t, []int{2}, favs.Sorted())

	fav, _ := newEngine(t, repo)
	require.NoError(t, fav.Open(ctx, sampleBank(), practicesession.ModeFavorite, questionbank.AllTypes))
	assert.Equal(t, 1, fav.State().Total)

	collected, err = e.ToggleFavorite(ctx)
	require.NoError(t, err)
	assert.False(t, collected)
}

func TestResetProgress(t *testing.T) {
	ctx := context.Background()
	e, repo := openEngine(t, practicesession.ModeSequential, questionbank.TypeSingle)
	_, err := e.SelectOption(ctx, 0)
	require.NoError(t, err)

	require.NoError(t, e.ResetProgress(ctx))
	st := e.State()
	assert.False(t, st.ShowAnswer)
	assert.Equal(t, 0, st.Completed)

	rec, err := repo.LoadRecord(ctx, progress.RecordKey("sequential", questionbank.TypeSingle, bankName))
	require.NoError(t, err)
	assert.Empty(t, rec.UserAnswers)
	wrong, err := repo.LoadIDSet(ctx, progress.WrongSetKey(bankName))
	require.NoError(t, err)
	assert.True(t, wrong.Has(2), "wrong set survives outside wrong mode")
}

func TestResetProgress_WrongModeClearsSet(t *testing.T) {
	ctx := context.Background()
	repo := store.NewRepository(store.NewMemory())
	require.NoError(t, repo.SaveIDSet(ctx, progress.WrongSetKey(bankName), progress.NewIDSet(2)))

	e, _ := newEngine(t, repo)
	require.NoError(t, e.Open(ctx, sampleBank(), practicesession.ModeWrong, questionbank.AllTypes))
	require.NoError(t, e.ResetProgress(ctx))

	assert.False(t, e.State().Active)
	wrong, err := repo.LoadIDSet(ctx, progress.WrongSetKey(bankName))
	require.NoError(t, err)
	assert.Empty(t, wrong)
}

// ============================================================================
// Search
// ============================================================================

func TestSearch(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		typeFilter string
		keyword    string
		want       int
		wantErr    error
	}{
		{"content match", questionbank.AllTypes, "偶数", 1, nil},
		{"option match", questionbank.AllTypes, "正确", 1, nil},
		{"trimmed keyword", questionbank.AllTypes, "  2+2  ", 1, nil},
		{"type filter applies", questionbank.TypeSingle, "3", 2, nil},
		{"no match", questionbank.AllTypes, "不存在", 0, practicesession.ErrNoWorkingData},
		{"empty keyword", questionbank.AllTypes, "   ", 0, practicesession.ErrEmptyKeyword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := openEngine(t, practicesession.ModeSearch, tt.typeFilter)
			n, err := e.Search(ctx, tt.keyword)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
			assert.Equal(t, tt.want, e.State().Total)
		})
	}
}

func TestSearch_TypeChangeSearchesWholeBank(t *testing.T) {
	ctx := context.Background()
	e, _ := openEngine(t, practicesession.ModeSearch, questionbank.TypeSingle)

	n, err := e.Search(ctx, "3")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	require.NoError(t, e.SelectType(ctx, questionbank.TypeMultiple))
	st := e.State()
	assert.Equal(t, 1, st.Total)
	assert.Equal(t, 4, st.QuestionID)

	require.NoError(t, e.SelectType(ctx, questionbank.AllTypes))
	assert.Equal(t, 3, e.State().Total)

	err = e.SelectType(ctx, questionbank.TypeTrueFalse)
	assert.ErrorIs(t, err, practicesession.ErrNoWorkingData)
}

func TestSearch_OnlyInSearchMode(t *testing.T) {
	e, _ := openEngine(t, practicesession.ModeSequential, questionbank.AllTypes)
	_, err := e.Search(context.Background(), "偶数")
	assert.ErrorIs(t, err, practicesession.ErrNotSearchable)
}
