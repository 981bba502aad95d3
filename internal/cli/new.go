package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/re-cinq/fsd/internal/fileutil"
	"github.com/re-cinq/fsd/internal/notify"
	"github.com/re-cinq/fsd/internal/prompt"
	"github.com/re-cinq/fsd/internal/scaffold"
	"github.com/re-cinq/fsd/internal/slice"
)

var newOpts struct {
	from     string
	layer    string
	name     string
	segments []string
	dryRun   bool
}

func init() {
	f := newCmd.Flags()
	f.StringVar(&newOpts.from, "from", "", "layer directory to create the slice in (skips the layer picker)")
	f.StringVarP(&newOpts.layer, "layer", "l", "", "layer name, e.g. features")
	f.StringVarP(&newOpts.name, "name", "n", "", "slice name")
	f.StringSliceVarP(&newOpts.segments, "segments", "s", nil, "comma-separated segments ("+strings.Join(slice.SegmentNames(), ", ")+")")
	f.BoolVar(&newOpts.dryRun, "dry-run", false, "print what would be created without touching the filesystem")
	newCmd.MarkFlagsMutuallyExclusive("from", "layer")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new [dir]",
	Short: "Create a new slice in an FSD layer",
	Long: `Create a new slice directory with an index file and the chosen segments.

The layer comes from, in order: the [dir] argument or --from (matched against
the tsconfig path aliases), --layer, or an interactive picker. The slice name
and segments are prompted for unless --name and --segments are given.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		note := notify.NewStderr()
		dir := newOpts.from
		if len(args) > 0 {
			if dir != "" && dir != args[0] {
				err := fmt.Errorf("directory given both as argument and --from")
				note.Error("%s", err)
				return err
			}
			dir = args[0]
		}
		if dir != "" {
			abs, err := filepath.Abs(dir)
			if err != nil {
				note.Error("%s", err)
				return err
			}
			dir = abs
		}

		ws, err := openWorkspace()
		if err != nil {
			note.Error("%s", err)
			return err
		}

		s := &scaffold.Scaffolder{
			Root:   ws.Root,
			FSRoot: ws.FSRoot,
			FS:     ws.FS,
			Config: ws.Config,
			Prompt: prompt.NewSurvey(prompt.StdIO),
			Notify: note,
		}
		out, err := s.NewSlice(scaffold.Request{
			Dir:      dir,
			Layer:    newOpts.layer,
			Name:     newOpts.name,
			Segments: newOpts.segments,
			DryRun:   newOpts.dryRun,
		})
		if scaffold.IsCancelled(err) {
			return nil
		}
		if err != nil {
			return err
		}

		if newOpts.dryRun {
			printPlan(ws.Root, out.Plan)
			return nil
		}
		for _, p := range out.Result.Paths {
			fmt.Printf("  create %s\n", relTo(ws.Root, p))
		}
		return nil
	},
}

func printPlan(root string, p *slice.Plan) {
	fmt.Printf("Would create slice '%s' in '%s':\n", p.Slice, p.Layer.Name)
	for _, step := range p.Steps {
		fmt.Printf("  %-6s %s\n", step.Kind, relTo(root, step.Path))
	}
}

// relTo shortens path for display when it sits under root.
func relTo(root, path string) string {
	rel, err := fileutil.Within(root, path)
	if err != nil {
		return path
	}
	return rel
}
