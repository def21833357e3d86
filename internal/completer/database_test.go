package completer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseAddDeduplicates(t *testing.T) {
	db := NewDatabase()

	assert.Equal(t, 1, db.Add([]string{"foobar", "foobar"}))
	assert.Equal(t, 0, db.Add([]string{"foobar"}))
	assert.Equal(t, 1, db.Len())
}

func TestDatabaseRejectsNonPrintable(t *testing.T) {
	db := NewDatabase()

	added := db.Add([]string{"\x01\x1f\x7f", "uni¢𐍈d€", "tab\there", "ok_name"})
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, db.Len())
}

func TestDatabaseRejectsShortIdentifiers(t *testing.T) {
	db := NewDatabase()
	assert.Equal(t, 0, db.Add([]string{"a", "b"}))

	db.SetMinIdentifierLength(1)
	assert.Equal(t, 2, db.Add([]string{"a", "b"}))
}

func TestDatabaseReset(t *testing.T) {
	db := NewDatabase()
	db.Add([]string{"foobar", "bazqux"})
	assert.Equal(t, 2, db.Len())

	db.Reset()
	assert.Equal(t, 0, db.Len())

	// Identifiers can be re-added after a reset.
	assert.Equal(t, 1, db.Add([]string{"foobar"}))
}

func TestDatabasePreservesInsertionOrder(t *testing.T) {
	db := NewDatabase()
	var want []string
	for i := 0; i < 100; i++ {
		text := fmt.Sprintf("identifier_%03d", i)
		want = append(want, text)
	}
	db.Add(want)

	got := db.snapshot()
	assert.Len(t, got, 100)
	for i, c := range got {
		assert.Equal(t, want[i], c.Text())
	}
}
