package completer

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/idcomplete/internal/candidate"
	"github.com/standardbeagle/idcomplete/internal/matcher"
)

// Options configures a Completer.
type Options struct {
	// MaxResults caps the number of returned completions. Zero means
	// unlimited.
	MaxResults int
	// CaseSensitive selects strict smart-case matching: uppercase query
	// letters demand uppercase candidates. This is the default behavior;
	// disabling it lets uppercase query letters match lowercase text too.
	CaseSensitive bool
	// Workers bounds the scoring parallelism. Zero means one worker per
	// CPU.
	Workers int
}

// DefaultOptions matches the reference behavior: smart case, no cap.
func DefaultOptions() Options {
	return Options{CaseSensitive: true}
}

// Completer ranks database identifiers against queries. It holds no mutable
// state of its own, so a single Completer may serve concurrent queries.
type Completer struct {
	db   *Database
	opts Options
}

// New creates a Completer over db.
func New(db *Database, opts Options) *Completer {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	return &Completer{db: db, opts: opts}
}

// Database returns the underlying identifier database.
func (c *Completer) Database() *Database {
	return c.db
}

// CandidatesForQuery returns the identifiers matching query, best first.
// An empty query yields no completions.
func (c *Completer) CandidatesForQuery(query string) []string {
	results := c.ResultsForQuery(query)
	texts := make([]string, 0, len(results))
	for _, r := range results {
		texts = append(texts, r.Text())
	}
	return texts
}

// ResultsForQuery scores every stored identifier against query and returns
// the matches sorted by score descending. The sort is stable: identifiers
// with equal scores keep their insertion order.
func (c *Completer) ResultsForQuery(query string) []matcher.Result {
	if query == "" {
		return nil
	}

	candidates := c.db.snapshot()
	if len(candidates) == 0 {
		return nil
	}
	queryRecord := candidate.New(query)

	// Score in parallel. The matcher is a pure function over immutable
	// records, so workers share nothing but the output slice, and each
	// slot has exactly one writer.
	scored := make([]matcher.Result, len(candidates))
	workers := c.opts.Workers
	if workers > len(candidates) {
		workers = len(candidates)
	}

	var g errgroup.Group
	chunk := (len(candidates) + workers - 1) / workers
	for start := 0; start < len(candidates); start += chunk {
		end := start + chunk
		if end > len(candidates) {
			end = len(candidates)
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				scored[i] = matcher.QueryMatch(queryRecord, candidates[i], c.opts.CaseSensitive)
			}
			return nil
		})
	}
	// Workers never return errors; Wait is just the barrier.
	_ = g.Wait()

	matches := make([]matcher.Result, 0, len(scored))
	for _, r := range scored {
		if r.IsSubsequence() {
			matches = append(matches, r)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Less(matches[j])
	})

	if c.opts.MaxResults > 0 && len(matches) > c.opts.MaxResults {
		matches = matches[:c.opts.MaxResults]
	}
	return matches
}
