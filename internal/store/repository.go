package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/remaimber-it/quizbank/internal/domain/progress"
	"github.com/remaimber-it/quizbank/internal/domain/questionbank"
)

// Repository is the typed view over a KV: banks, session records and id
// sets, each stored as a JSON document under its storage key.
type Repository struct {
	kv KV
}

func NewRepository(kv KV) *Repository {
	return &Repository{kv: kv}
}

// ============================================================================
// Banks
// ============================================================================

func (r *Repository) SaveBank(ctx context.Context, bank *questionbank.QuestionBank) error {
	if bank.StorageKey == "" {
		return errors.New("bank has no storage key")
	}
	return r.putJSON(ctx, bank.StorageKey, bank)
}

func (r *Repository) GetBank(ctx context.Context, storageKey string) (*questionbank.QuestionBank, error) {
	var bank questionbank.QuestionBank
	if err := r.getJSON(ctx, storageKey, &bank); err != nil {
		return nil, err
	}
	if bank.StorageKey == "" {
		bank.StorageKey = storageKey
	}
	if bank.DisplayName == "" {
		bank.DisplayName = questionbank.DisplayName(storageKey)
	}
	bank.EnsureTypes()
	return &bank, nil
}

var keyStamp = regexp.MustCompile(`_(\d+)$`)

// ListBankKeys returns the keys of all stored banks, newest timestamp
// suffix first.
func (r *Repository) ListBankKeys(ctx context.Context) ([]string, error) {
	var keys []string
	for _, prefix := range questionbank.BankKeyPrefixes {
		ks, err := r.kv.ListKeys(ctx, prefix)
		if err != nil {
			return nil, fmt.Errorf("list %s keys: %w", prefix, err)
		}
		keys = append(keys, ks...)
	}
	slices.SortStableFunc(keys, func(a, b string) int {
		ta, tb := keyTimestamp(a), keyTimestamp(b)
		switch {
		case ta > tb:
			return -1
		case ta < tb:
			return 1
		}
		return strings.Compare(a, b)
	})
	return keys, nil
}

func keyTimestamp(key string) int64 {
	m := keyStamp.FindStringSubmatch(key)
	if m == nil {
		return 0
	}
	ts, _ := strconv.ParseInt(m[1], 10, 64)
	return ts
}

// DeleteBank removes a stored bank. ErrNotFound when absent.
func (r *Repository) DeleteBank(ctx context.Context, storageKey string) error {
	if _, err := r.kv.Get(ctx, storageKey); err != nil {
		return err
	}
	return r.kv.Remove(ctx, storageKey)
}

// ExportBank returns the stored bank as indented JSON.
func (r *Repository) ExportBank(ctx context.Context, storageKey string) ([]byte, error) {
	bank, err := r.GetBank(ctx, storageKey)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(bank, "", "  ")
}

// HasDisplayName reports whether any stored bank derives to name.
func (r *Repository) HasDisplayName(ctx context.Context, name string) (bool, error) {
	keys, err := r.ListBankKeys(ctx)
	if err != nil {
		return false, err
	}
	for _, k := range keys {
		if questionbank.DisplayName(k) == name {
			return true, nil
		}
	}
	return false, nil
}

// ============================================================================
// Session records
// ============================================================================

// LoadRecord returns the record under key, or a fresh one when absent.
func (r *Repository) LoadRecord(ctx context.Context, key string) (*progress.SessionRecord, error) {
	rec := progress.NewSessionRecord()
	err := r.getJSON(ctx, key, rec)
	if errors.Is(err, ErrNotFound) {
		return progress.NewSessionRecord(), nil
	}
	if err != nil {
		return nil, err
	}
	if rec.UserAnswers == nil {
		rec.UserAnswers = map[int]progress.AnswerRecord{}
	}
	return rec, nil
}

func (r *Repository) SaveRecord(ctx context.Context, key string, rec *progress.SessionRecord) error {
	return r.putJSON(ctx, key, rec)
}

func (r *Repository) RemoveRecord(ctx context.Context, key string) error {
	return r.kv.Remove(ctx, key)
}

// ============================================================================
// Id sets
// ============================================================================

// LoadIDSet returns the set under key, or an empty set when absent.
func (r *Repository) LoadIDSet(ctx context.Context, key string) (progress.IDSet, error) {
	set := progress.NewIDSet()
	err := r.getJSON(ctx, key, &set)
	if errors.Is(err, ErrNotFound) {
		return progress.NewIDSet(), nil
	}
	if err != nil {
		return nil, err
	}
	return set, nil
}

func (r *Repository) SaveIDSet(ctx context.Context, key string, set progress.IDSet) error {
	return r.putJSON(ctx, key, set)
}

func (r *Repository) RemoveIDSet(ctx context.Context, key string) error {
	return r.kv.Remove(ctx, key)
}

// RemoveProgress deletes every progress key in keys. Absent keys are
// ignored.
func (r *Repository) RemoveProgress(ctx context.Context, keys []string) error {
	var errs []error
	for _, k := range keys {
		if err := r.kv.Remove(ctx, k); err != nil {
			errs = append(errs, fmt.Errorf("remove %s: %w", k, err))
		}
	}
	return errors.Join(errs...)
}

// RemoveProgressFor deletes the id sets and every session record stored for
// displayName under modes. Records are found by scanning the stored keys, so
// records of types the bank no longer has are removed too; types lists
// labels to remove explicitly.
func (r *Repository) RemoveProgressFor(ctx context.Context, displayName string, modes, types []string) error {
	keys := progress.KeysFor(displayName, modes, types)
	stored, err := r.kv.ListKeys(ctx, progress.RecordKeyPrefix)
	if err != nil {
		return err
	}
	for _, k := range stored {
		if progress.IsRecordKeyFor(k, displayName, modes) && !slices.Contains(keys, k) {
			keys = append(keys, k)
		}
	}
	return r.RemoveProgress(ctx, keys)
}

func (r *Repository) getJSON(ctx context.Context, key string, v any) error {
	data, err := r.kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (r *Repository) putJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return r.kv.Set(ctx, key, data)
}
