package chars

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLetterBitsetContains(t *testing.T) {
	candidate := NewLetterBitset("foobar")

	assert.True(t, candidate.Contains(NewLetterBitset("fbr")))
	assert.True(t, candidate.Contains(NewLetterBitset("")))
	assert.True(t, candidate.Contains(candidate))
	assert.False(t, candidate.Contains(NewLetterBitset("fbz")))
	assert.False(t, candidate.Contains(NewLetterBitset("q")))
}

func TestLetterBitsetCaseFolded(t *testing.T) {
	// Upper and lower case set the same slot, so a lowercase query can
	// pass the pre-filter against an uppercase candidate.
	assert.True(t, NewLetterBitset("FOOBAR").Contains(NewLetterBitset("foo")))
	assert.True(t, NewLetterBitset("foobar").Contains(NewLetterBitset("FOO")))
}

func TestLetterBitsetPunctuation(t *testing.T) {
	kebab := NewLetterBitset("foo-bar")
	assert.True(t, kebab.Has(SlotFor('-')))
	// Dash and underscore share a slot by construction.
	assert.True(t, kebab.Contains(NewLetterBitset("_")))
	assert.False(t, kebab.Contains(NewLetterBitset(".")))
}

func TestLetterBitsetHas(t *testing.T) {
	bits := NewLetterBitset("a1.")
	assert.True(t, bits.Has(SlotFor('a')))
	assert.True(t, bits.Has(SlotFor('A')))
	assert.True(t, bits.Has(SlotFor('1')))
	assert.True(t, bits.Has(SlotFor('.')))
	assert.False(t, bits.Has(SlotFor('b')))
	assert.False(t, bits.Has(SlotFor('2')))
}
