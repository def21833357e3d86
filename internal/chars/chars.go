// Package chars models identifier text as a sequence of byte-wide logical
// characters. It provides the classification predicates, the base-folding
// comparison and the smart-case matching rule the completion engine is built
// on, plus the fixed letter-to-slot mapping used by the presence bitset.
//
// The fast path is ASCII only. Bytes outside the ASCII range are treated as
// opaque characters: they satisfy no letter or punctuation predicate and fold
// to themselves, so they seldom match and score poorly. Callers are expected
// to filter such identifiers upstream.
package chars

// NumSlots is the number of distinct letter slots recognized by the
// presence bitset: a shared sentinel slot, 26 case-folded letters,
// 10 digits and 22 punctuation groups.
const NumSlots = 59

const caseDistance = 'a' - 'A'

// slotTable maps each byte to its letter slot. Upper and lower case of the
// same letter collapse into one slot, digits get their own range, and common
// identifier punctuation keeps dedicated slots so the pre-filter can reject
// on `_`, `-` or `.` just like it does on letters. Control bytes below 0x20
// and everything past ASCII share the sentinel slot 0; DEL (0x7f) shares the
// space slot.
var slotTable = [256]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	37, 38, 39, 40, 41, 42, 43, 39, 44, 45, 46, 47, 48, 49, 50, 51,
	27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 52, 53, 54, 55, 56, 57,
	58, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 44, 42, 45, 41, 49,
	39, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 44, 43, 45, 49, 37,
}

// SlotFor returns the bitset slot for a byte.
func SlotFor(b byte) int {
	return int(slotTable[b])
}

// IsUppercase reports whether b is an ASCII uppercase letter.
func IsUppercase(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

// IsLowercase reports whether b is an ASCII lowercase letter.
func IsLowercase(b byte) bool {
	return b >= 'a' && b <= 'z'
}

// IsLetter reports whether b is an ASCII letter.
func IsLetter(b byte) bool {
	return IsUppercase(b) || IsLowercase(b)
}

// IsDigit reports whether b is an ASCII digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsPunctuation reports whether b is ASCII punctuation: printable but
// neither alphanumeric nor space.
func IsPunctuation(b byte) bool {
	return b > ' ' && b < 0x7f && !IsLetter(b) && !IsDigit(b)
}

// IsPrintable reports whether b is a printable ASCII byte. Identifiers
// containing anything else are expected to be discarded by the host.
func IsPrintable(b byte) bool {
	return b >= 0x20 && b <= 0x7e
}

// Fold returns the lowercase form of an ASCII letter and every other byte
// unchanged.
func Fold(b byte) byte {
	if IsUppercase(b) {
		return b + caseDistance
	}
	return b
}

// EqualsBase compares two bytes ignoring ASCII case.
func EqualsBase(a, b byte) bool {
	return Fold(a) == Fold(b)
}

// MatchSmart applies the smart-case matching rule to one candidate byte and
// one query byte. A lowercase query byte matches either case of the letter;
// an uppercase query byte demands an exact match, which lets users force
// case disambiguation by typing capitals. When caseSensitive is false the
// asymmetry is relaxed and an uppercase query byte also matches its
// lowercase form.
//
// caseChanged reports a match whose raw bytes differ while their folded
// forms are equal; the scorer penalizes such matches by one point each.
func MatchSmart(candidate, query byte, caseSensitive bool) (matched, caseChanged bool) {
	if candidate == query {
		return true, false
	}
	if IsLowercase(query) && candidate+caseDistance == query {
		return true, true
	}
	if !caseSensitive && IsUppercase(query) && query+caseDistance == candidate {
		return true, true
	}
	return false, false
}
