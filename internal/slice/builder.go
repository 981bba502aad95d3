// Package slice validates and creates FSD slice directory trees.
package slice

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/re-cinq/fsd/internal/fileutil"
	"github.com/re-cinq/fsd/internal/layer"
)

// ErrIO is matched by every filesystem failure while creating a slice.
var ErrIO = errors.New("slice creation failed")

// IOError carries the underlying filesystem error. It matches both ErrIO and
// the wrapped error under errors.Is, and prints only the wrapped message.
type IOError struct {
	Err error
}

func (e *IOError) Error() string { return e.Err.Error() }

func (e *IOError) Unwrap() []error { return []error{ErrIO, e.Err} }

// DefaultExtension is the index file extension used when none is configured.
const DefaultExtension = "ts"

// StepKind is the kind of filesystem mutation a Step performs.
type StepKind int

const (
	MakeDir StepKind = iota
	WriteIndex
)

func (k StepKind) String() string {
	if k == MakeDir {
		return "mkdir"
	}
	return "write"
}

// Step is one filesystem mutation. Path is absolute.
type Step struct {
	Kind StepKind
	Path string
	rel  string
}

// Plan is the full, ordered set of mutations for one slice.
type Plan struct {
	Layer    layer.Layer
	Slice    string
	Dir      string
	Segments []Segment
	Steps    []Step
}

// Result reports what Create produced.
type Result struct {
	Layer    string
	Slice    string
	Dir      string
	Segments []Segment
	Paths    []string
}

// Summary is the user-facing success line.
func (r *Result) Summary() string {
	return fmt.Sprintf("Successfully created slice '%s' in '%s' with segments: %s",
		r.Slice, r.Layer, strings.Join(Names(r.Segments), ", "))
}

// Builder creates slices through a billy filesystem. Layer directories may sit
// anywhere below the filesystem's root, including outside the workspace.
type Builder struct {
	fs   billy.Filesystem
	root string
	ext  string
}

// NewBuilder returns a Builder writing through fsys, whose root corresponds to
// the absolute directory root (usually fileutil.VolumeRoot of the workspace).
// An empty ext falls back to DefaultExtension.
func NewBuilder(fsys billy.Filesystem, root, ext string) *Builder {
	if ext == "" {
		ext = DefaultExtension
	}
	return &Builder{fs: fsys, root: root, ext: ext}
}

// IndexFile returns the placeholder file name, e.g. "index.ts".
func (b *Builder) IndexFile() string {
	return "index." + b.ext
}

// Plan validates the request and computes every path Create would touch,
// without touching the filesystem.
func (b *Builder) Plan(l layer.Layer, name string, segments []Segment) (*Plan, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	for _, s := range segments {
		if !s.Valid() {
			return nil, fmt.Errorf("%w %q", ErrInvalidSegment, s)
		}
	}

	sliceName := strings.TrimSpace(name)
	sliceDir := filepath.Join(l.Dir, sliceName)

	p := &Plan{Layer: l, Slice: sliceName, Dir: sliceDir, Segments: segments}
	dirs := []string{sliceDir}
	for _, s := range segments {
		dirs = append(dirs, filepath.Join(sliceDir, string(s)))
	}
	for _, dir := range dirs {
		for _, step := range []Step{
			{Kind: MakeDir, Path: dir},
			{Kind: WriteIndex, Path: filepath.Join(dir, b.IndexFile())},
		} {
			rel, err := fileutil.Within(b.root, step.Path)
			if err != nil {
				return nil, &IOError{Err: err}
			}
			step.rel = rel
			p.Steps = append(p.Steps, step)
		}
	}
	return p, nil
}

// Create builds the slice directory, its root index file and one
// subdirectory with an index file per segment, in that order. Existing
// directories are reused and existing index files are truncated. The first
// failure stops the sequence; anything created before it stays on disk.
func (b *Builder) Create(l layer.Layer, name string, segments []Segment) (*Result, error) {
	p, err := b.Plan(l, name, segments)
	if err != nil {
		return nil, err
	}
	if err := b.preflight(p); err != nil {
		return nil, err
	}

	res := &Result{Layer: l.Name, Slice: p.Slice, Dir: p.Dir, Segments: segments}
	for _, step := range p.Steps {
		if err := b.apply(step); err != nil {
			return res, &IOError{Err: err}
		}
		res.Paths = append(res.Paths, step.Path)
	}
	return res, nil
}

// preflight rejects plans whose targets already exist with the wrong type,
// before anything is mutated.
func (b *Builder) preflight(p *Plan) error {
	for _, step := range p.Steps {
		info, err := b.fs.Stat(step.rel)
		if err != nil {
			continue
		}
		switch {
		case step.Kind == MakeDir && !info.IsDir():
			return &IOError{Err: fmt.Errorf("%s exists and is not a directory", step.Path)}
		case step.Kind == WriteIndex && info.IsDir():
			return &IOError{Err: fmt.Errorf("%s exists and is a directory", step.Path)}
		}
	}
	return nil
}

func (b *Builder) apply(step Step) error {
	switch step.Kind {
	case MakeDir:
		if err := b.fs.MkdirAll(step.rel, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", step.Path, err)
		}
	case WriteIndex:
		if err := util.WriteFile(b.fs, step.rel, nil, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", step.Path, err)
		}
	}
	return nil
}
