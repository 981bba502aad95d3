package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/spf13/cobra"

	"github.com/re-cinq/fsd/internal/fileutil"
	"github.com/re-cinq/fsd/internal/ignore"
	"github.com/re-cinq/fsd/internal/layer"
	"github.com/re-cinq/fsd/internal/slice"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [layer]",
	Short: "List existing slices and their segments",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		layers, err := ws.layers()
		if err != nil {
			return err
		}
		if len(args) > 0 {
			layers = filterLayers(layers, args[0])
			if len(layers) == 0 {
				return fmt.Errorf("layer %q: %w", args[0], layer.ErrNotFound)
			}
		}

		m, err := ignore.Load(ws.Root)
		if err != nil {
			return fmt.Errorf("loading .gitignore: %w", err)
		}

		failed := 0
		for _, l := range layers {
			fmt.Printf("%s (%s)\n", l.Name, relTo(ws.Root, l.Dir))
			entries, err := listSlices(ws.FS, ws.FSRoot, ws.Root, l, m)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s\n", err)
				failed++
				continue
			}
			if len(entries) == 0 {
				fmt.Println("  (no slices)")
				continue
			}
			for _, e := range entries {
				fmt.Printf("  %-20s %s\n", e.Name, formatSegments(e.Segments))
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d layer(s) could not be read", failed)
		}
		return nil
	},
}

// sliceEntry is an existing slice directory and the known segments inside it.
type sliceEntry struct {
	Name     string
	Segments []slice.Segment
}

func filterLayers(layers []layer.Layer, name string) []layer.Layer {
	for _, l := range layers {
		if l.Name == name {
			return []layer.Layer{l}
		}
	}
	return nil
}

// listSlices reads the subdirectories of l.Dir through fsys rooted at fsRoot,
// skipping entries the workspace .gitignore ignores. Layers outside the
// workspace root are not subject to its .gitignore. A layer directory that
// does not exist yet has no slices.
func listSlices(fsys billy.Filesystem, fsRoot, root string, l layer.Layer, m *ignore.Matcher) ([]sliceEntry, error) {
	rel, err := fileutil.Within(fsRoot, l.Dir)
	if err != nil {
		return nil, fmt.Errorf("reading layer %s: %w", l.Name, err)
	}
	infos, err := fsys.ReadDir(rel)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading layer %s: %w", l.Name, err)
	}

	var out []sliceEntry
	for _, info := range infos {
		if !info.IsDir() {
			continue
		}
		dir := filepath.Join(rel, info.Name())
		if wsRel, err := fileutil.Within(root, filepath.Join(l.Dir, info.Name())); err == nil && m.Ignored(fileutil.DirSlash(wsRel)) {
			continue
		}
		segs, err := fsys.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("reading slice %s: %w", info.Name(), err)
		}
		e := sliceEntry{Name: info.Name()}
		for _, s := range segs {
			if seg := slice.Segment(s.Name()); s.IsDir() && seg.Valid() {
				e.Segments = append(e.Segments, seg)
			}
		}
		sortSegments(e.Segments)
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// sortSegments orders segments the way the picker lists them.
func sortSegments(segs []slice.Segment) {
	rank := make(map[slice.Segment]int, len(slice.Segments))
	for i, s := range slice.Segments {
		rank[s] = i
	}
	sort.Slice(segs, func(i, j int) bool { return rank[segs[i]] < rank[segs[j]] })
}

func formatSegments(segs []slice.Segment) string {
	if len(segs) == 0 {
		return "-"
	}
	return strings.Join(slice.Names(segs), ", ")
}
