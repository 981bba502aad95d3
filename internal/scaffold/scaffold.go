// Package scaffold runs the add-slice flow: resolve the layer from tsconfig
// path aliases, collect the slice name and segments, then create the slice.
package scaffold

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v5"

	"github.com/re-cinq/fsd/internal/config"
	"github.com/re-cinq/fsd/internal/fileutil"
	"github.com/re-cinq/fsd/internal/layer"
	"github.com/re-cinq/fsd/internal/notify"
	"github.com/re-cinq/fsd/internal/prompt"
	"github.com/re-cinq/fsd/internal/slice"
	"github.com/re-cinq/fsd/internal/tsconfig"
)

var (
	// ErrNoWorkspace is returned when no workspace root is available.
	ErrNoWorkspace = errors.New("no workspace folder found")
	// ErrNoSelection is returned when the user cancels a prompt or picks nothing.
	ErrNoSelection = errors.New("nothing selected")
)

// IsCancelled reports whether err means the user backed out rather than
// something going wrong.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrNoSelection)
}

// Request pre-answers parts of the flow. Empty fields are prompted for.
type Request struct {
	// Dir is a pre-selected layer directory. When set, the layer is found by
	// reverse alias lookup and Layer is ignored.
	Dir      string
	Layer    string
	Name     string
	Segments []string
	DryRun   bool
}

// Outcome holds the plan that was computed and, unless it was a dry run,
// what was created.
type Outcome struct {
	Plan   *slice.Plan
	Result *slice.Result
}

// Scaffolder wires the flow to its host capabilities. FS is rooted at the
// absolute directory FSRoot, which defaults to Root. Layers outside FSRoot
// cannot be written, so the CLI roots FS at the volume holding the workspace.
type Scaffolder struct {
	Root   string
	FSRoot string
	FS     billy.Filesystem
	Config *config.Config
	Prompt prompt.Prompter
	Notify notify.Notifier
}

// LoadAliases reads the path aliases from the tsconfig named by cfg, resolved
// against the workspace root, through fsys rooted at fsRoot.
func LoadAliases(fsys billy.Filesystem, fsRoot, root string, cfg *config.Config) (tsconfig.AliasMap, error) {
	rel, err := fileutil.Within(fsRoot, fileutil.ConfigPath(root, cfg.TSConfig))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", tsconfig.ErrUnreadable, err)
	}
	return tsconfig.Load(fsys, rel)
}

// NewSlice runs the flow once. Every failure is reported through Notify
// before it is returned.
func (s *Scaffolder) NewSlice(req Request) (*Outcome, error) {
	if s.Root == "" {
		s.Notify.Error("No workspace folder found.")
		return nil, ErrNoWorkspace
	}

	aliases, err := s.aliases()
	if err != nil {
		return nil, err
	}

	l, err := s.layer(aliases, req)
	if err != nil {
		return nil, err
	}

	name, err := s.sliceName(req)
	if err != nil {
		return nil, err
	}

	segments, err := s.segments(req)
	if err != nil {
		return nil, err
	}

	b := slice.NewBuilder(s.FS, s.fsRoot(), s.Config.Extension)
	plan, err := b.Plan(l, name, segments)
	if err != nil {
		s.Notify.Error("Failed to create slice structure: %s", err)
		return nil, err
	}
	if req.DryRun {
		return &Outcome{Plan: plan}, nil
	}

	res, err := b.Create(l, name, segments)
	if err != nil {
		s.Notify.Error("Failed to create slice structure: %s", err)
		return &Outcome{Plan: plan, Result: res}, err
	}
	s.Notify.Info("%s", res.Summary())
	return &Outcome{Plan: plan, Result: res}, nil
}

func (s *Scaffolder) tsconfigName() string {
	return filepath.Base(s.Config.TSConfig)
}

func (s *Scaffolder) fsRoot() string {
	if s.FSRoot != "" {
		return s.FSRoot
	}
	return s.Root
}

func (s *Scaffolder) aliases() (tsconfig.AliasMap, error) {
	aliases, err := LoadAliases(s.FS, s.fsRoot(), s.Root, s.Config)
	switch {
	case errors.Is(err, tsconfig.ErrNoPaths):
		s.Notify.Warn("Could not read or parse %s paths. Add compilerOptions.paths aliases such as \"@features/*\".", s.tsconfigName())
	case err != nil:
		s.Notify.Error("Error reading or parsing %s: %s", s.tsconfigName(), err)
	}
	return aliases, err
}

func (s *Scaffolder) layer(aliases tsconfig.AliasMap, req Request) (layer.Layer, error) {
	if req.Dir != "" {
		dir := req.Dir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(s.Root, dir)
		}
		l, err := layer.FromDir(aliases, s.Root, dir)
		if err != nil {
			s.Notify.Warn("The selected folder is not a recognized FSD layer based on %s paths. Choose a layer interactively or pass a valid layer folder (e.g., src/widgets, src/features).", s.tsconfigName())
			return layer.Layer{}, err
		}
		s.Notify.Info("Detected FSD Layer: %s", l.Name)
		return l, nil
	}

	name := req.Layer
	if name == "" {
		choice, err := s.Prompt.Select("Select the FSD layer for the new slice", s.Config.Layers)
		if err != nil || choice == "" {
			return layer.Layer{}, s.noSelection(err, "No layer selected.")
		}
		s.Notify.Info("Selected layer: %s", choice)
		name = choice
	}

	l, err := layer.FromName(aliases, s.Root, name)
	if err != nil {
		s.Notify.Warn("Path alias for %s not found in %s.", layer.Pattern(name), s.tsconfigName())
		return layer.Layer{}, err
	}
	return l, nil
}

func (s *Scaffolder) sliceName(req Request) (string, error) {
	if req.Name != "" {
		if err := slice.ValidateName(req.Name); err != nil {
			s.Notify.Error("%s", err)
			return "", err
		}
		return req.Name, nil
	}

	name, err := s.Prompt.Input("Enter the name of the new slice", slice.ValidateName)
	if err != nil || name == "" {
		return "", s.noSelection(err, "Slice creation cancelled.")
	}
	return name, nil
}

func (s *Scaffolder) segments(req Request) ([]slice.Segment, error) {
	names := req.Segments
	if len(names) == 0 {
		picked, err := s.Prompt.MultiSelect("Select segments for the new slice", slice.SegmentNames(), s.Config.Segments)
		if err != nil {
			return nil, s.noSelection(err, "No segments selected.")
		}
		names = picked
	}

	segments, err := slice.ParseSegments(names)
	if err != nil {
		s.Notify.Error("%s", err)
		return nil, err
	}
	if len(segments) == 0 {
		return nil, s.noSelection(nil, "No segments selected.")
	}
	return segments, nil
}

// noSelection reports a cancelled or empty prompt. Prompt failures other than
// cancellation are errors in their own right.
func (s *Scaffolder) noSelection(err error, msg string) error {
	if err != nil && !errors.Is(err, prompt.ErrCancelled) {
		s.Notify.Error("Prompt failed: %s", err)
		return fmt.Errorf("prompting: %w", err)
	}
	s.Notify.Info("%s", msg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoSelection, err)
	}
	return ErrNoSelection
}
