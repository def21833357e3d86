// Package wordlist loads identifier lists from disk and watches them for
// changes. A word list is a plain text file with one identifier per line;
// blank lines and lines starting with '#' are skipped.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Expand resolves doublestar glob patterns to a sorted, deduplicated list
// of file paths. A pattern without meta characters is treated as a literal
// path and must exist.
func Expand(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var paths []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad word list pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("word list pattern %q matched no files", pattern)
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			paths = append(paths, m)
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// Load reads identifiers from the given files, in order.
func Load(paths []string) ([]string, error) {
	var identifiers []string
	for _, path := range paths {
		ids, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		identifiers = append(identifiers, ids...)
	}
	return identifiers, nil
}

// LoadPatterns expands patterns and loads every matched file.
func LoadPatterns(patterns []string) ([]string, error) {
	paths, err := Expand(patterns)
	if err != nil {
		return nil, err
	}
	return Load(paths)
}

func loadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer f.Close()

	var identifiers []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		identifiers = append(identifiers, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	return identifiers, nil
}
