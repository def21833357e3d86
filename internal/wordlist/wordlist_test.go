package wordlist

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSkipsCommentsAndBlanks(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "words.txt", "# header\n\nfoobar\n  fooBaz  \n\n# trailer\nqux_name\n")

	identifiers, err := Load([]string{path})
	require.NoError(t, err)
	assert.Equal(t, []string{"foobar", "fooBaz", "qux_name"}, identifiers)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load([]string{filepath.Join(t.TempDir(), "absent.txt")})
	assert.Error(t, err)
}

func TestExpandGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "aa\n")
	writeFile(t, dir, "b.txt", "bb\n")
	writeFile(t, dir, "notes.md", "cc\n")

	paths, err := Expand([]string{filepath.Join(dir, "*.txt")})
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "a.txt"), paths[0])
	assert.Equal(t, filepath.Join(dir, "b.txt"), paths[1])
}

func TestExpandDeduplicates(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "aa\n")

	paths, err := Expand([]string{path, filepath.Join(dir, "*.txt")})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, paths)
}

func TestExpandUnmatchedPattern(t *testing.T) {
	_, err := Expand([]string{filepath.Join(t.TempDir(), "*.txt")})
	assert.Error(t, err)
}

func TestLoadPatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.txt", "foo\n")
	writeFile(t, dir, "two.txt", "bar\n")

	identifiers, err := LoadPatterns([]string{filepath.Join(dir, "*.txt")})
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar"}, identifiers)
}

func TestWatcherFiresOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "words.txt", "foo\n")

	changed := make(chan struct{}, 1)
	w, err := NewWatcher([]string{path}, 20*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("foo\nbar\n"), 0644))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not report the change")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "words.txt", "foo\n")

	changed := make(chan struct{}, 1)
	w, err := NewWatcher([]string{path}, 20*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Close()

	writeFile(t, dir, "unrelated.txt", "bar\n")

	select {
	case <-changed:
		t.Fatal("watcher fired for an unwatched file")
	case <-time.After(300 * time.Millisecond):
	}
}
