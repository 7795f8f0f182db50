package export

import (
	"io"
	"slices"
	"time"

	"github.com/dmitrymomot/filecabinet/svc/cabinet"
)

// Snapshot is an immutable copy of the record set taken at one moment.
type Snapshot struct {
	records []cabinet.Record
	takenAt time.Time
}

func NewSnapshot(records []cabinet.Record) *Snapshot {
	return &Snapshot{
		records: slices.Clone(records),
		takenAt: time.Now().UTC(),
	}
}

// Records returns a copy of the captured records.
func (s *Snapshot) Records() []cabinet.Record {
	return slices.Clone(s.records)
}

func (s *Snapshot) Len() int {
	return len(s.records)
}

func (s *Snapshot) TakenAt() time.Time {
	return s.takenAt
}

// SaveToCSV writes one CSV line per record.
func (s *Snapshot) SaveToCSV(w io.Writer) error {
	cw := NewCSVWriter(w)
	for _, rec := range s.records {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// SaveToXML writes the whole snapshot as one XML document.
func (s *Snapshot) SaveToXML(w io.Writer) error {
	return NewXMLWriter(w).Write(s.records)
}

// Save writes the snapshot in format.
func (s *Snapshot) Save(w io.Writer, format Format) error {
	switch format {
	case FormatCSV:
		return s.SaveToCSV(w)
	case FormatXML:
		return s.SaveToXML(w)
	default:
		return ErrUnsupportedFormat
	}
}
