// Package snapshot resolves generator glob pattern sets against the
// workspace tree. It is the default implementation of the path-matching
// service consumed by target expansion; the expander itself only ever sees
// the resulting path list.
package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ExclusionPrefix marks a pattern that removes matches instead of adding
// them.
const ExclusionPrefix = "!"

// Matcher matches glob pattern sets against files under a workspace root.
type Matcher struct {
	root string
}

// NewMatcher creates a matcher rooted at the given workspace directory.
func NewMatcher(root string) *Matcher {
	return &Matcher{root: root}
}

// Match applies an ordered pattern set to the files under dir (relative to
// the workspace root) and returns the matching paths relative to dir,
// sorted and slash-separated. Patterns are applied in order: plain patterns
// add matching files, "!"-prefixed patterns remove previously accumulated
// matches and never add any.
func (m *Matcher) Match(dir string, patterns []string) ([]string, error) {
	fsys := os.DirFS(filepath.Join(m.root, filepath.FromSlash(dir)))

	matched := make(map[string]bool)
	for _, pattern := range patterns {
		if excluded, ok := strings.CutPrefix(pattern, ExclusionPrefix); ok {
			if !doublestar.ValidatePattern(excluded) {
				return nil, fmt.Errorf("invalid exclusion pattern %q", pattern)
			}
			for path := range matched {
				if doublestar.MatchUnvalidated(excluded, path) {
					delete(matched, path)
				}
			}
			continue
		}

		paths, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}
		for _, path := range paths {
			matched[path] = true
		}
	}

	result := make([]string, 0, len(matched))
	for path := range matched {
		result = append(result, path)
	}
	sort.Strings(result)
	return result, nil
}
