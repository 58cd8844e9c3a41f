// Package ingest turns source files into normalized question banks and
// persists them.
package ingest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
	"github.com/remaimber-it/quizbank/internal/spreadsheet"
)

// SheetDecoder decodes workbook bytes into cell grids.
type SheetDecoder interface {
	Decode(ext string, r io.Reader) ([]spreadsheet.Sheet, error)
}

// BankStore persists banks.
type BankStore interface {
	SaveBank(ctx context.Context, bank *questionbank.QuestionBank) error
	HasDisplayName(ctx context.Context, name string) (bool, error)
}

// Kinds accepted by Ingest, keyed by lower-case extension.
const (
	KindXLS  = "xls"
	KindXLSX = "xlsx"
	KindTXT  = "txt"
	KindTXTS = "txts"
	KindJSON = "json"
)

// Service parses, normalizes and persists banks.
type Service struct {
	banks   BankStore
	decoder SheetDecoder
	logger  *slog.Logger
	now     func() time.Time
}

// NewService creates a Service.
func NewService(banks BankStore, decoder SheetDecoder, logger *slog.Logger) *Service {
	return &Service{
		banks:   banks,
		decoder: decoder,
		logger:  logger,
		now:     time.Now,
	}
}

// SetClock replaces the clock used for storage-key timestamps.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Kind returns the lower-case extension of fileName without the dot.
func Kind(fileName string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
}

// DisplayNameFor is the display name a file would be stored under.
func DisplayNameFor(fileName string) string {
	base := filepath.Base(fileName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Ingest reads a source file and dispatches on its extension.
func (s *Service) Ingest(ctx context.Context, fileName string, r io.Reader) (*questionbank.QuestionBank, error) {
	kind := Kind(fileName)
	switch kind {
	case KindXLS, KindXLSX:
		sheets, err := s.decoder.Decode(kind, r)
		if err != nil {
			return nil, fail(fileName, ErrParseFailure, err)
		}
		return s.IngestSheets(ctx, fileName, sheets)

	case KindTXT, KindTXTS:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fail(fileName, ErrParseFailure, err)
		}
		text, err := decodeText(data)
		if err != nil {
			return nil, fail(fileName, ErrParseFailure, err)
		}
		return s.IngestText(ctx, fileName, text)

	case KindJSON:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fail(fileName, ErrParseFailure, err)
		}
		bank, err := ParseJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fileName, err)
		}
		return s.persist(ctx, fileName, bank)

	default:
		return nil, fail(fileName, ErrUnsupportedFormat, fmt.Errorf("extension %q", kind))
	}
}

// IngestText parses already decoded text under the declared file name.
func (s *Service) IngestText(ctx context.Context, fileName, text string) (*questionbank.QuestionBank, error) {
	if k := Kind(fileName); k != KindTXT && k != KindTXTS {
		return nil, fail(fileName, ErrUnsupportedFormat, fmt.Errorf("text input with extension %q", k))
	}
	return s.persist(ctx, fileName, ParseText(text))
}

// IngestSheets normalizes already decoded sheets under the declared file
// name.
func (s *Service) IngestSheets(ctx context.Context, fileName string, sheets []spreadsheet.Sheet) (*questionbank.QuestionBank, error) {
	if k := Kind(fileName); k != KindXLS && k != KindXLSX {
		return nil, fail(fileName, ErrUnsupportedFormat, fmt.Errorf("sheet input with extension %q", k))
	}
	return s.persist(ctx, fileName, NormalizeSheets(sheets, s.logger))
}

// HasDisplayName reports whether a stored bank already uses the display name
// fileName would get.
func (s *Service) HasDisplayName(ctx context.Context, fileName string) (bool, error) {
	exists, err := s.banks.HasDisplayName(ctx, DisplayNameFor(fileName))
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	return exists, nil
}

// StorageKey builds "<kind>Data_<fileName>_<unixMillis>".
func StorageKey(fileName string, at time.Time) string {
	return Kind(fileName) + "Data_" + filepath.Base(fileName) + "_" + strconv.FormatInt(at.UnixMilli(), 10)
}

func (s *Service) persist(ctx context.Context, fileName string, bank *questionbank.QuestionBank) (*questionbank.QuestionBank, error) {
	bank.StorageKey = StorageKey(fileName, s.now())
	bank.DisplayName = questionbank.DisplayName(bank.StorageKey)
	bank.EnsureTypes()

	if err := s.banks.SaveBank(ctx, bank); err != nil {
		s.logger.Error("failed to persist bank", "storage_key", bank.StorageKey, "error", err)
		return nil, fail(fileName, ErrStorageFailure, err)
	}

	s.logger.Info("bank ingested",
		"storage_key", bank.StorageKey,
		"display_name", bank.DisplayName,
		"questions", len(bank.Questions),
	)
	return bank, nil
}

// decodeText decodes source text, stripping any byte-order mark. Bytes that
// are not valid UTF-8 are read as GB18030.
func decodeText(data []byte) (string, error) {
	var fallback transform.Transformer = unicode.UTF8.NewDecoder()
	if !utf8.Valid(data) {
		fallback = simplifiedchinese.GB18030.NewDecoder()
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(fallback), data)
	if err != nil {
		return "", fmt.Errorf("decode text: %w", err)
	}
	return string(out), nil
}
