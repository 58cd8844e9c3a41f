package service_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	practicesession "github.com/remaimber-it/quizbank/internal/domain/practice_session"
	"github.com/remaimber-it/quizbank/internal/domain/progress"
	"github.com/remaimber-it/quizbank/internal/ingest"
	"github.com/remaimber-it/quizbank/internal/service"
	"github.com/remaimber-it/quizbank/internal/spreadsheet"
	"github.com/remaimber-it/quizbank/internal/store"
)

func newBankService(t *testing.T) (*service.BankService, *store.Repository) {
	t.Helper()
	return bankServiceOn(store.NewMemory())
}

func bankServiceOn(kv store.KV) (*service.BankService, *store.Repository) {
	repo := store.NewRepository(kv)
	ingester := ingest.NewService(repo, spreadsheet.NewDecoder(), discardLogger())
	return service.NewBankService(repo, ingester, discardLogger(), 2), repo
}

func TestBankService_ImportListExport(t *testing.T) {
	ctx := context.Background()
	svc, _ := newBankService(t)

	bank, err := svc.Import(ctx, "期中.txt", strings.NewReader("单项选择题\n1.2+2=? (B)\nA.3 B.4\n"))
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "期中", list[0].DisplayName)
	assert.Equal(t, 1, list[0].TotalQuestions)

	data, err := svc.Export(ctx, bank.StorageKey)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"questions\"")

	_, err = svc.Export(ctx, "txtData_none.txt_1")
	assert.True(t, service.IsNotFound(err))
}

func TestBankService_ImportFiles(t *testing.T) {
	ctx := context.Background()
	svc, repo := newBankService(t)
	dir := t.TempDir()

	good := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(good, []byte("判断题\n1.天是蓝的 (√)\n"), 0o644))
	js := filepath.Join(dir, "b.json")
	require.NoError(t, os.WriteFile(js, []byte(`{"questions":[]}`), 0o644))
	bad := filepath.Join(dir, "c.docx")
	require.NoError(t, os.WriteFile(bad, []byte("x"), 0o644))
	missing := filepath.Join(dir, "d.txt")

	results := svc.ImportFiles(ctx, []string{good, js, bad, missing})
	require.Len(t, results, 4)

	assert.NoError(t, results[0].Err)
	assert.Equal(t, "a", results[0].Bank.DisplayName)
	assert.NoError(t, results[1].Err)
	assert.ErrorIs(t, results[2].Err, ingest.ErrUnsupportedFormat)
	assert.ErrorIs(t, results[3].Err, os.ErrNotExist)

	keys, err := repo.ListBankKeys(ctx)
	require.NoError(t, err)
	assert.Len(t, keys, 2)
}

func TestBankService_ImportFilesRepeatedPath(t *testing.T) {
	svc, _ := newBankService(t)
	good := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(good, []byte("判断题\n1.天是蓝的 (√)\n"), 0o644))

	results := svc.ImportFiles(context.Background(), []string{good, good})
	require.Len(t, results, 2)
	for _, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, good, r.Path)
		require.NotNil(t, r.Bank)
	}
}

func TestBankService_HasDisplayName(t *testing.T) {
	ctx := context.Background()
	svc, _ := newBankService(t)

	exists, err := svc.HasDisplayName(ctx, "期中.xlsx")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = svc.Import(ctx, "期中.txt", strings.NewReader("判断题\n1.天是蓝的 (√)\n"))
	require.NoError(t, err)

	exists, err = svc.HasDisplayName(ctx, "期中.xlsx")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestBankService_DeleteRemovesProgress(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	svc, repo := bankServiceOn(kv)

	bank, err := svc.Import(ctx, "期末.txt", strings.NewReader("单项选择题\n1.2+2=? (B)\nA.3 B.4\n"))
	require.NoError(t, err)

	recordKey := progress.RecordKey(string(practicesession.ModeSequential), "单选题", "期末")
	require.NoError(t, repo.SaveRecord(ctx, recordKey, progress.NewSessionRecord()))
	require.NoError(t, repo.SaveIDSet(ctx, progress.WrongSetKey("期末"), progress.NewIDSet(1)))
	// A type the bank no longer has, and another bank's record.
	staleKey := progress.RecordKey(string(practicesession.ModeEdit), "多选题", "期末")
	require.NoError(t, repo.SaveRecord(ctx, staleKey, progress.NewSessionRecord()))
	otherKey := progress.RecordKey(string(practicesession.ModeSequential), "单选题", "期末2")
	require.NoError(t, repo.SaveRecord(ctx, otherKey, progress.NewSessionRecord()))

	require.NoError(t, svc.Delete(ctx, bank.StorageKey))

	_, err = svc.Get(ctx, bank.StorageKey)
	assert.ErrorIs(t, err, store.ErrNotFound)
	wrong, err := repo.LoadIDSet(ctx, progress.WrongSetKey("期末"))
	require.NoError(t, err)
	assert.Empty(t, wrong)

	_, err = kv.Get(ctx, recordKey)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = kv.Get(ctx, staleKey)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = kv.Get(ctx, otherKey)
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, bank.StorageKey), store.ErrNotFound)
}
