package candidate

import (
	"github.com/standardbeagle/idcomplete/internal/chars"
)

// CommonSubsequenceLength returns the length of the longest common
// subsequence of two strings under case-folded comparison. The scorer uses
// it to measure how well a query aligns with a candidate's word-boundary
// characters.
//
// Classic two-row dynamic program: the rows span the shorter string and the
// outer loop walks the longer one, so scratch space is O(min(m,n)).
func CommonSubsequenceLength(first, second string) int {
	longer, shorter := first, second
	if len(shorter) > len(longer) {
		longer, shorter = shorter, longer
	}
	if len(shorter) == 0 {
		return 0
	}

	previous := make([]int, len(shorter)+1)
	current := make([]int, len(shorter)+1)

	for i := 0; i < len(longer); i++ {
		folded := chars.Fold(longer[i])
		for j := 0; j < len(shorter); j++ {
			if folded == chars.Fold(shorter[j]) {
				current[j+1] = previous[j] + 1
			} else {
				current[j+1] = max(current[j], previous[j+1])
			}
		}
		previous, current = current, previous
	}

	return previous[len(shorter)]
}
