package tsconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

var (
	// ErrUnreadable is returned when the config file cannot be read.
	ErrUnreadable = errors.New("config unreadable")
	// ErrUnparsable is returned when the comment-stripped text is not valid JSON
	// or compilerOptions.paths has the wrong shape.
	ErrUnparsable = errors.New("config unparsable")
	// ErrNoPaths is returned when the config parses but has no compilerOptions.paths.
	ErrNoPaths = errors.New("no compilerOptions.paths in config")
)

// Alias is one compilerOptions.paths entry, e.g. "@features/*" -> ["src/features/*"].
type Alias struct {
	Pattern string
	Targets []string
}

// AliasMap holds path aliases in file declaration order.
type AliasMap []Alias

// Lookup returns the alias with the exact pattern.
func (m AliasMap) Lookup(pattern string) (Alias, bool) {
	for _, a := range m {
		if a.Pattern == pattern {
			return a, true
		}
	}
	return Alias{}, false
}

// UnmarshalJSON decodes a JSON object while keeping key order. A repeated key
// keeps its first position and takes the last value, matching what a plain
// map decode would see.
func (m *AliasMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*m = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("paths: expected an object, got %v", tok)
	}

	out := AliasMap{}
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("paths: expected a key, got %v", tok)
		}

		var targets []string
		if err := dec.Decode(&targets); err != nil {
			return fmt.Errorf("paths[%q]: %w", key, err)
		}

		if i, seen := index[key]; seen {
			out[i].Targets = targets
			continue
		}
		index[key] = len(out)
		out = append(out, Alias{Pattern: key, Targets: targets})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*m = out
	return nil
}

type document struct {
	CompilerOptions *struct {
		Paths AliasMap `json:"paths"`
	} `json:"compilerOptions"`
}

// ParsePaths strips comments from a tsconfig-style document and returns its
// compilerOptions.paths mapping.
func ParsePaths(data []byte) (AliasMap, error) {
	var doc document
	if err := json.Unmarshal([]byte(StripComments(string(data))), &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnparsable, err)
	}
	if doc.CompilerOptions == nil || doc.CompilerOptions.Paths == nil {
		return nil, ErrNoPaths
	}
	return doc.CompilerOptions.Paths, nil
}

// Load reads path from fsys and parses its path aliases.
func Load(fsys billy.Filesystem, path string) (AliasMap, error) {
	data, err := util.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	return ParsePaths(data)
}
