package cabinet

import (
	"slices"
	"time"

	"golang.org/x/text/cases"

	"github.com/dmitrymomot/filecabinet/pkg/sanitizer"
)

// multiIndex maps a key to the ascending set of record ids sharing it.
// Empty buckets are removed.
type multiIndex struct {
	buckets map[string][]int
}

func newMultiIndex() *multiIndex {
	return &multiIndex{buckets: make(map[string][]int)}
}

// Put adds id under key. Adding the same pair twice is a no-op.
func (ix *multiIndex) Put(key string, id int) {
	ids := ix.buckets[key]
	pos, found := slices.BinarySearch(ids, id)
	if found {
		return
	}
	ix.buckets[key] = slices.Insert(ids, pos, id)
}

// Delete removes id from key's bucket.
func (ix *multiIndex) Delete(key string, id int) {
	ids, ok := ix.buckets[key]
	if !ok {
		return
	}
	pos, found := slices.BinarySearch(ids, id)
	if !found {
		return
	}
	ids = slices.Delete(ids, pos, pos+1)
	if len(ids) == 0 {
		delete(ix.buckets, key)
		return
	}
	ix.buckets[key] = ids
}

// Get returns a copy of the ids stored under key.
func (ix *multiIndex) Get(key string) []int {
	return slices.Clone(ix.buckets[key])
}

// nameKey runs the same pipeline as stored names, then folds case, so a
// query typed like the original input finds the record.
func nameKey(name string) string {
	return cases.Fold().String(sanitizer.Name(name))
}

func dateKey(t time.Time) string {
	return t.Format(time.DateOnly)
}
