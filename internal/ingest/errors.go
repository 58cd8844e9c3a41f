package ingest

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrInvalidSchema     = errors.New("invalid bank schema")
	ErrParseFailure      = errors.New("parse failure")
	ErrStorageFailure    = errors.New("storage failure")

	// ErrNoHeader is returned by ResolveHeaders when no row of the scanned
	// window carries both a number and a content column.
	ErrNoHeader = errors.New("no header row found")
)

// IngestError describes a failed ingestion of one file. Kind is one of the
// sentinels above.
type IngestError struct {
	FileName string
	Kind     error
	Wrapped  error
}

func (e *IngestError) Error() string {
	if e.Wrapped == nil {
		return e.FileName + ": " + e.Kind.Error()
	}
	return e.FileName + ": " + e.Kind.Error() + ": " + e.Wrapped.Error()
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is.
func (e *IngestError) Unwrap() []error {
	if e.Wrapped == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Wrapped}
}

func fail(fileName string, kind, cause error) error {
	return &IngestError{FileName: fileName, Kind: kind, Wrapped: cause}
}
