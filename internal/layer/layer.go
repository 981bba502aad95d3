// Package layer maps tsconfig path aliases onto FSD layer directories.
package layer

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/re-cinq/fsd/internal/tsconfig"
)

// ErrNotFound is returned when no alias maps to the requested layer or directory.
var ErrNotFound = errors.New("not a recognized FSD layer")

// IsNotFound reports whether err indicates that no layer matched.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Layer is an alias resolved to an absolute directory.
type Layer struct {
	Name  string
	Alias string
	Dir   string
}

// Name derives a layer name from an alias pattern by dropping '@', '/' and
// '*' characters, e.g. "@features/*" -> "features".
func Name(pattern string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '@', '/', '*':
			return -1
		}
		return r
	}, pattern)
}

// Pattern returns the alias pattern looked up for a layer name.
func Pattern(name string) string {
	return "@" + name + "/*"
}

// Dir resolves an alias target such as "src/features/*" against root.
func Dir(root, target string) string {
	rel := strings.TrimSuffix(target, "/*")
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(root, rel)
}

// All returns every alias that resolves to a named layer, in declaration order.
func All(aliases tsconfig.AliasMap, root string) []Layer {
	var layers []Layer
	for _, a := range aliases {
		if l, ok := resolve(a, root); ok {
			layers = append(layers, l)
		}
	}
	return layers
}

// FromDir finds the layer whose resolved directory is dir. Paths are equal
// when they clean to the same string or, for directories that exist, when
// they resolve to the same target after following symlinks. The first match
// in declaration order wins.
func FromDir(aliases tsconfig.AliasMap, root, dir string) (Layer, error) {
	dir = filepath.Clean(dir)
	target := realPath(dir)
	for _, a := range aliases {
		l, ok := resolve(a, root)
		if !ok {
			continue
		}
		if l.Dir == dir || (target != "" && realPath(l.Dir) == target) {
			return l, nil
		}
	}
	return Layer{}, ErrNotFound
}

// realPath returns p with symlinks resolved, or "" when p cannot be resolved.
func realPath(p string) string {
	r, err := filepath.EvalSymlinks(p)
	if err != nil {
		return ""
	}
	return r
}

// FromName resolves the "@<name>/*" alias.
func FromName(aliases tsconfig.AliasMap, root, name string) (Layer, error) {
	a, found := aliases.Lookup(Pattern(name))
	if !found {
		return Layer{}, ErrNotFound
	}
	l, ok := resolve(a, root)
	if !ok {
		return Layer{}, ErrNotFound
	}
	return l, nil
}

func resolve(a tsconfig.Alias, root string) (Layer, bool) {
	if len(a.Targets) == 0 || a.Targets[0] == "" {
		return Layer{}, false
	}
	name := Name(a.Pattern)
	if name == "" {
		return Layer{}, false
	}
	return Layer{Name: name, Alias: a.Pattern, Dir: Dir(root, a.Targets[0])}, true
}
