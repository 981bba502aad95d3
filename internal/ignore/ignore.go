package ignore

import (
	"os"
	"path/filepath"

	gitignore "github.com/sabhiram/go-gitignore"
)

const ignoreFile = ".gitignore"

// Matcher checks workspace-relative paths against .gitignore patterns.
type Matcher struct {
	gi *gitignore.GitIgnore
}

// Load loads .gitignore from the given directory.
// Returns a Matcher that matches nothing if no .gitignore exists.
func Load(dir string) (*Matcher, error) {
	path := filepath.Join(dir, ignoreFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Matcher{}, nil
	}

	gi, err := gitignore.CompileIgnoreFile(path)
	if err != nil {
		return nil, err
	}
	return &Matcher{gi: gi}, nil
}

// Ignored reports whether rel matches the ignore patterns. Directories should
// be passed with a trailing slash.
func (m *Matcher) Ignored(rel string) bool {
	if m == nil || m.gi == nil {
		return false
	}
	return m.gi.MatchesPath(rel)
}
