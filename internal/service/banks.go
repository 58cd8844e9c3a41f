// internal/service/banks.go
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	practicesession "github.com/remaimber-it/quizbank/internal/domain/practice_session"
	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
	"github.com/remaimber-it/quizbank/internal/store"
	"github.com/remaimber-it/quizbank/internal/worker"
)

// Ingester turns a named source file into a stored bank.
type Ingester interface {
	Ingest(ctx context.Context, fileName string, r io.Reader) (*questionbank.QuestionBank, error)
	HasDisplayName(ctx context.Context, fileName string) (bool, error)
}

// BankService is the bank-level surface shared by the HTTP API and the CLI.
type BankService struct {
	repo     *store.Repository
	ingester Ingester
	logger   *slog.Logger
	workers  int
}

// NewBankService creates a BankService. workers bounds concurrent file
// imports in ImportFiles.
func NewBankService(repo *store.Repository, ingester Ingester, logger *slog.Logger, workers int) *BankService {
	return &BankService{repo: repo, ingester: ingester, logger: logger, workers: workers}
}

// List returns a summary of every stored bank, newest first.
func (s *BankService) List(ctx context.Context) ([]questionbank.BankStats, error) {
	keys, err := s.repo.ListBankKeys(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]questionbank.BankStats, 0, len(keys))
	for _, k := range keys {
		bank, err := s.repo.GetBank(ctx, k)
		if err != nil {
			s.logger.Error("skipping unreadable bank", "storage_key", k, "error", err)
			continue
		}
		out = append(out, bank.Stats())
	}
	return out, nil
}

func (s *BankService) Get(ctx context.Context, storageKey string) (*questionbank.QuestionBank, error) {
	return s.repo.GetBank(ctx, storageKey)
}

// HasDisplayName reports whether a stored bank already uses the display name
// fileName would be imported under.
func (s *BankService) HasDisplayName(ctx context.Context, fileName string) (bool, error) {
	return s.ingester.HasDisplayName(ctx, fileName)
}

// Import ingests one source file.
func (s *BankService) Import(ctx context.Context, fileName string, r io.Reader) (*questionbank.QuestionBank, error) {
	return s.ingester.Ingest(ctx, fileName, r)
}

// Export returns the stored bank as indented JSON.
func (s *BankService) Export(ctx context.Context, storageKey string) ([]byte, error) {
	return s.repo.ExportBank(ctx, storageKey)
}

// Delete removes a bank. Progress stored under its display name is removed
// too once no other bank shares that name.
func (s *BankService) Delete(ctx context.Context, storageKey string) error {
	bank, err := s.repo.GetBank(ctx, storageKey)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteBank(ctx, storageKey); err != nil {
		return err
	}

	shared, err := s.repo.HasDisplayName(ctx, bank.DisplayName)
	if err != nil {
		s.logger.Error("failed to check display name", "display_name", bank.DisplayName, "error", err)
		return nil
	}
	if shared {
		return nil
	}
	if err := s.repo.RemoveProgressFor(ctx, bank.DisplayName, practicesession.ModeNames(), bank.QuestionTypes); err != nil {
		s.logger.Error("failed to remove progress", "display_name", bank.DisplayName, "error", err)
	}
	return nil
}

// ImportResult is the outcome of one file in ImportFiles.
type ImportResult struct {
	Path string
	Bank *questionbank.QuestionBank
	Err  error
}

// ImportFiles ingests paths concurrently and returns one result per path in
// input order.
func (s *BankService) ImportFiles(ctx context.Context, paths []string) []ImportResult {
	pool := worker.NewPool[ImportResult](s.workers, len(paths))
	for i, path := range paths {
		pool.Submit(strconv.Itoa(i), func() ImportResult {
			return s.importFile(ctx, path)
		})
	}
	pool.Close()

	// Results are keyed by input position; the same path may appear twice.
	out := make([]ImportResult, len(paths))
	for r := range pool.Results() {
		i, _ := strconv.Atoi(r.JobID)
		out[i] = r.Output
	}
	return out
}

func (s *BankService) importFile(ctx context.Context, path string) ImportResult {
	f, err := os.Open(path)
	if err != nil {
		return ImportResult{Path: path, Err: fmt.Errorf("open %s: %w", path, err)}
	}
	defer f.Close()

	bank, err := s.ingester.Ingest(ctx, filepath.Base(path), f)
	if err != nil {
		s.logger.Error("import failed", "path", path, "error", err)
	}
	return ImportResult{Path: path, Bank: bank, Err: err}
}

// IsNotFound reports whether err means the bank does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrNoData)
}
