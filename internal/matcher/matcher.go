// Package matcher decides whether a query is a smart-case subsequence of a
// candidate identifier and assigns the pair a comparable score. Scoring is a
// pure function over two immutable Candidate records, so a host may invoke
// it concurrently across candidates without synchronization.
package matcher

import (
	"github.com/standardbeagle/idcomplete/internal/candidate"
	"github.com/standardbeagle/idcomplete/internal/chars"
)

// basicScore is the scoring unit. Word-boundary and continuity bonuses are
// multiples of it, which keeps the linear penalty terms (length, case
// changes, index sum) strictly in tie-breaker territory.
const basicScore = 1024

// runMark records where a run begins: the query index and candidate index
// of its first matched pair. The runs slice always ends with a sentinel
// whose query index is len(query), so the length of run i is the difference
// between consecutive query starts.
type runMark struct {
	queryStart     int
	candidateStart int
}

// QueryMatch scores candidate against query. The query must itself be built
// as a Candidate so its presence bitset is available for the pre-filter.
//
// An empty query matches everything with score zero. A query longer than
// the candidate, or one using a letter slot the candidate lacks, returns
// NoMatch without running the scorer.
func QueryMatch(query, cand *candidate.Candidate, caseSensitive bool) Result {
	q := query.Text()
	text := cand.Text()

	if len(q) == 0 {
		return newMatch(text, 0)
	}
	if len(text) < len(q) {
		return NoMatch()
	}
	if !cand.Letters().Contains(query.Letters()) {
		return NoMatch()
	}

	// Subsequence walk. Advance the query pointer on every smart-case
	// match, recording the start of each run. Typical queries are short,
	// so the runs buffer rarely grows past its initial reservation.
	runs := make([]runMark, 0, 9)
	var indexSum, caseChanges int64
	qi := 0
	lastMatched := -1
	inRun := false

	for ci := 0; ci < len(text) && qi < len(q); ci++ {
		matched, changed := chars.MatchSmart(text[ci], q[qi], caseSensitive)
		if !matched {
			inRun = false
			continue
		}
		if !inRun {
			runs = append(runs, runMark{queryStart: qi, candidateStart: ci})
			inRun = true
		}
		indexSum += int64(ci)
		if changed {
			caseChanges++
		}
		lastMatched = ci
		qi++
	}

	if qi < len(q) {
		return NoMatch()
	}
	runs = append(runs, runMark{queryStart: len(q), candidateStart: lastMatched + 1})
	runs = extendLongestRun(runs, q, text, caseSensitive)

	// Word-boundary alignment. The LCS is taken against the full query,
	// so it can credit query characters that actually matched elsewhere
	// in the candidate; the reference behaves the same way and the
	// regression orderings depend on it.
	wbChars := cand.WordBoundaryChars()
	wbMatched := candidate.CommonSubsequenceLength(wbChars, q)

	var wordBoundary float64
	if wbMatched > 0 {
		wordBoundary = float64(int64(wbMatched)*basicScore - int64(len(wbChars)-wbMatched))
	}

	// Each run of length >= 2 earns a decaying word-boundary bonus for its
	// consecutive matches not already attributed to boundary hits, and a
	// quadratic continuity bonus. The final positive contribution is the
	// larger of the two branches, never their sum: a long run that happens
	// to start on boundaries must not be counted twice.
	var continuity float64
	for i := 0; i+1 < len(runs); i++ {
		c := runs[i+1].queryStart - runs[i].queryStart
		if c < 2 {
			continue
		}
		k := len(q) - wbMatched
		if c-1 < k {
			k = c - 1
		}
		wordBoundary += basicScore * (0.4 + 0.3*float64(k) + 0.1) * float64(k) / 2
		continuity += basicScore * float64(c) * float64(c) / 2
	}

	best := wordBoundary
	if continuity > best {
		best = continuity
	}

	score := int64(best) -
		3*int64(len(text)) - // longer candidates rank worse
		caseChanges - // case-altered matches rank worse
		indexSum // earlier matches rank better

	return newMatch(text, score)
}

// extendLongestRun corrects for the greed of the subsequence walk: a query
// prefix can attach to an early repeated character and split what should be
// one long run, as in query "abcd" against "aaabcd". The longest run (when
// it has length >= 2 and is not the first) is extended leftward while query
// and candidate keep matching; runs absorbed by the extension are erased.
func extendLongestRun(runs []runMark, q, text string, caseSensitive bool) []runMark {
	longest, longestLen := 0, 0
	for i := 0; i+1 < len(runs); i++ {
		if l := runs[i+1].queryStart - runs[i].queryStart; l > longestLen {
			longest, longestLen = i, l
		}
	}
	if longest == 0 || longestLen < 2 {
		return runs
	}

	qi := runs[longest].queryStart
	ci := runs[longest].candidateStart
	for qi > 0 && ci > 0 {
		matched, _ := chars.MatchSmart(text[ci-1], q[qi-1], caseSensitive)
		if !matched {
			break
		}
		qi--
		ci--
	}
	if qi == runs[longest].queryStart {
		return runs
	}

	runs[longest] = runMark{queryStart: qi, candidateStart: ci}
	merged := runs[:0]
	for i, r := range runs {
		if i < longest && r.queryStart >= qi {
			continue
		}
		merged = append(merged, r)
	}
	return merged
}
