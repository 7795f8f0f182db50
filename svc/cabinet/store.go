package cabinet

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/filecabinet/pkg/logger"
)

// SearchField names an indexed field.
type SearchField string

const (
	SearchFirstName   SearchField = "firstname"
	SearchLastName    SearchField = "lastname"
	SearchDateOfBirth SearchField = "dateofbirth"
)

// SearchFields lists the indexed fields.
var SearchFields = []SearchField{SearchFirstName, SearchLastName, SearchDateOfBirth}

// ParseSearchField is case-insensitive.
func ParseSearchField(s string) (SearchField, error) {
	f := SearchField(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case SearchFirstName, SearchLastName, SearchDateOfBirth:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSearchField, s)
	}
}

// Store keeps records in creation order together with first name, last name
// and date of birth indexes. Every mutation updates the list and all three
// indexes in one call.
//
// Store is not safe for concurrent use.
type Store struct {
	validator Validator
	logger    *slog.Logger

	records       []Record
	byFirstName   *multiIndex
	byLastName    *multiIndex
	byDateOfBirth *multiIndex
}

// StoreOption configures a Store.
type StoreOption func(*Store)

func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore creates an empty store validating every create and edit with v.
// Panics if v is nil.
func NewStore(v Validator, opts ...StoreOption) *Store {
	if v == nil {
		panic("cabinet: validator is required")
	}

	s := &Store{
		validator:     v,
		logger:        slog.Default(),
		byFirstName:   newMultiIndex(),
		byLastName:    newMultiIndex(),
		byDateOfBirth: newMultiIndex(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates p and stores it under the next id (count + 1).
// Nothing is stored when validation fails.
func (s *Store) Create(p Params) (int, error) {
	p = p.normalize()
	if err := s.validator.Validate(p); err != nil {
		s.logger.Debug("record rejected", logger.Error(err))
		return 0, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	id := len(s.records) + 1
	s.apply(id, p)

	s.logger.Debug("record created", logger.RecordID(id))
	return id, nil
}

// Edit replaces every mutable field of record id. Ids are contiguous, so
// any id outside [1, Stat()] is not found.
func (s *Store) Edit(id int, p Params) error {
	if id < 1 || id > len(s.records) {
		return fmt.Errorf("%w: #%d", ErrRecordNotFound, id)
	}

	p = p.normalize()
	if err := s.validator.Validate(p); err != nil {
		s.logger.Debug("record edit rejected", logger.RecordID(id), logger.Error(err))
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	s.apply(id, p)

	s.logger.Debug("record updated", logger.RecordID(id))
	return nil
}

// apply writes p to record id, moving its index entries from the old keys
// to the new ones. id == Stat()+1 appends a new record.
func (s *Store) apply(id int, p Params) {
	if id == len(s.records)+1 {
		s.records = append(s.records, Record{ID: id})
	} else {
		old := s.records[id-1]
		s.byFirstName.Delete(nameKey(old.FirstName), id)
		s.byLastName.Delete(nameKey(old.LastName), id)
		s.byDateOfBirth.Delete(dateKey(old.DateOfBirth), id)
	}

	rec := &s.records[id-1]
	rec.set(p)

	s.byFirstName.Put(nameKey(rec.FirstName), id)
	s.byLastName.Put(nameKey(rec.LastName), id)
	s.byDateOfBirth.Put(dateKey(rec.DateOfBirth), id)
}

// Get returns a copy of record id.
func (s *Store) Get(id int) (Record, error) {
	if id < 1 || id > len(s.records) {
		return Record{}, fmt.Errorf("%w: #%d", ErrRecordNotFound, id)
	}
	return s.records[id-1], nil
}

func (s *Store) FindByFirstName(name string) []Record {
	return s.collect(s.byFirstName.Get(nameKey(name)))
}

func (s *Store) FindByLastName(name string) []Record {
	return s.collect(s.byLastName.Get(nameKey(name)))
}

// FindByDateOfBirth parses text with ParseDate before the lookup.
func (s *Store) FindByDateOfBirth(text string) ([]Record, error) {
	dob, err := ParseDate(text)
	if err != nil {
		return nil, err
	}
	return s.collect(s.byDateOfBirth.Get(dateKey(dob))), nil
}

// Find dispatches to the lookup of field.
func (s *Store) Find(field SearchField, value string) ([]Record, error) {
	switch field {
	case SearchFirstName:
		return s.FindByFirstName(value), nil
	case SearchLastName:
		return s.FindByLastName(value), nil
	case SearchDateOfBirth:
		return s.FindByDateOfBirth(value)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSearchField, field)
	}
}

// List returns copies of all records in creation order.
func (s *Store) List() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Stat returns the number of records.
func (s *Store) Stat() int {
	return len(s.records)
}

func (s *Store) collect(ids []int) []Record {
	out := make([]Record, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.records[id-1])
	}
	return out
}
