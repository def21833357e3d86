// Package completer is the host layer around the matcher core: an in-memory
// identifier database and a ranking front end that filters, scores in
// parallel and sorts. Persistence and per-filetype bucketing live with the
// caller, not here.
package completer

import (
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/standardbeagle/idcomplete/internal/candidate"
	"github.com/standardbeagle/idcomplete/internal/chars"
)

// DefaultMinIdentifierLength drops one-character identifiers, which would
// match nearly every single-letter query with meaningless scores.
const DefaultMinIdentifierLength = 2

// Database is an insertion-ordered, deduplicated collection of Candidate
// records. Writes take an exclusive lock; queries work on an immutable
// snapshot, so scoring never blocks additions.
type Database struct {
	mu         sync.RWMutex
	candidates []*candidate.Candidate
	// buckets indexes candidates by xxhash of their text for fast
	// duplicate checks. Hash hits are confirmed by exact comparison, so a
	// collision can never drop a distinct identifier.
	buckets   map[uint64][]int
	minLength int
}

// NewDatabase returns an empty database with the default minimum
// identifier length.
func NewDatabase() *Database {
	return &Database{
		buckets:   make(map[uint64][]int),
		minLength: DefaultMinIdentifierLength,
	}
}

// SetMinIdentifierLength overrides the minimum accepted identifier length.
// Values below one are ignored.
func (d *Database) SetMinIdentifierLength(n int) {
	if n < 1 {
		return
	}
	d.mu.Lock()
	d.minLength = n
	d.mu.Unlock()
}

// Add inserts identifiers, skipping duplicates and identifiers that are too
// short or contain bytes outside printable ASCII. It returns the number of
// new records created.
func (d *Database) Add(identifiers []string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	added := 0
	for _, text := range identifiers {
		if len(text) < d.minLength || !printableASCII(text) {
			continue
		}
		sum := xxhash.Sum64String(text)
		if d.containsLocked(sum, text) {
			continue
		}
		d.buckets[sum] = append(d.buckets[sum], len(d.candidates))
		d.candidates = append(d.candidates, candidate.New(text))
		added++
	}
	return added
}

// Len returns the number of stored identifiers.
func (d *Database) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.candidates)
}

// Reset drops every stored identifier.
func (d *Database) Reset() {
	d.mu.Lock()
	d.candidates = nil
	d.buckets = make(map[uint64][]int)
	d.mu.Unlock()
}

// snapshot returns the current candidate slice. Candidates are write-once
// and the slice is never mutated in place, so the snapshot stays valid for
// the duration of a query.
func (d *Database) snapshot() []*candidate.Candidate {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.candidates
}

func (d *Database) containsLocked(sum uint64, text string) bool {
	for _, idx := range d.buckets[sum] {
		if d.candidates[idx].Text() == text {
			return true
		}
	}
	return false
}

// printableASCII reports whether every byte of s is printable ASCII.
// Identifiers with control bytes or non-ASCII encodings are rejected at the
// door; the matcher core treats such bytes as opaque, but storing them only
// produces junk completions.
func printableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if !chars.IsPrintable(s[i]) {
			return false
		}
	}
	return true
}
