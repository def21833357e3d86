package matcher

import "math"

// noMatchScore sorts no-match results behind every real match.
const noMatchScore = math.MinInt64

// Result is the outcome of scoring one candidate against one query. A
// Result references the candidate's text without copying it; the identifier
// database must outlive the Results of a query.
type Result struct {
	isSubsequence bool
	text          string
	score         int64
}

// NoMatch returns the Result for a candidate the query is not a
// subsequence of. Its score is the minimum representable value.
func NoMatch() Result {
	return Result{score: noMatchScore}
}

func newMatch(text string, score int64) Result {
	return Result{isSubsequence: true, text: text, score: score}
}

// IsSubsequence reports whether the query matched as a subsequence.
func (r Result) IsSubsequence() bool {
	return r.isSubsequence
}

// Text returns the matched candidate's text. Empty for no-match results.
func (r Result) Text() string {
	return r.text
}

// Score returns the comparable ranking score. Higher is better.
func (r Result) Score() int64 {
	return r.score
}

// Less orders Results for ranking: a sorts before b when its score is
// strictly greater. Callers sort stably, so equal scores preserve the
// original candidate insertion order.
func (r Result) Less(other Result) bool {
	return r.score > other.score
}
