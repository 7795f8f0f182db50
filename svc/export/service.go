package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/filecabinet/pkg/file"
	"github.com/dmitrymomot/filecabinet/pkg/logger"
	"github.com/dmitrymomot/filecabinet/svc/cabinet"
)

// Format is an export file format.
type Format string

const (
	FormatCSV Format = "csv"
	FormatXML Format = "xml"
)

var contentTypes = map[Format]string{
	FormatCSV: "text/csv; charset=utf-8",
	FormatXML: "application/xml; charset=utf-8",
}

// ParseFormat is case-insensitive.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := contentTypes[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
	return f, nil
}

// RecordSource provides the records to export. *cabinet.Store satisfies it.
type RecordSource interface {
	List() []cabinet.Record
}

// Service renders snapshots of a RecordSource and writes them to storage.
type Service struct {
	source  RecordSource
	storage file.Storage
	logger  *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService panics if source or storage is nil.
func NewService(source RecordSource, storage file.Storage, opts ...Option) *Service {
	if source == nil {
		panic("export: record source is required")
	}
	if storage == nil {
		panic("export: storage is required")
	}

	s := &Service{
		source:  source,
		storage: storage,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Export writes every record to path in format, replacing an existing file.
func (s *Service) Export(ctx context.Context, format Format, path string) (*file.Object, error) {
	contentType, ok := contentTypes[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	snapshot := NewSnapshot(s.source.List())

	var buf bytes.Buffer
	if err := snapshot.Save(&buf, format); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	obj, err := s.storage.Put(ctx, path, &buf, contentType)
	if err != nil {
		s.logger.ErrorContext(ctx, "export failed",
			logger.Path(path),
			slog.String("format", string(format)),
			logger.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	s.logger.InfoContext(ctx, "records exported",
		logger.Path(obj.Location),
		slog.String("format", string(format)),
		logger.Count(snapshot.Len()),
		slog.Time("taken_at", snapshot.TakenAt()),
	)
	return obj, nil
}

// Exists reports whether something is already stored at path.
func (s *Service) Exists(ctx context.Context, path string) bool {
	return s.storage.Exists(ctx, path)
}

// Location returns where path would be written.
func (s *Service) Location(path string) string {
	return s.storage.Location(path)
}
