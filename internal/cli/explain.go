package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const explainText = `fsd: Feature-Sliced Design slice scaffolder

PURPOSE
  fsd creates new slices inside FSD layers. Layers are not configured
  separately: they are read from the compilerOptions.paths aliases of the
  workspace tsconfig.json. An alias "@features/*": ["src/features/*"] makes
  src/features the directory of the "features" layer.

COMMANDS
  new [dir]   Create a slice. With [dir] (or --from) the layer is the alias
              whose first target is exactly that directory; otherwise the
              layer comes from --layer or an interactive picker. The slice
              name and segments are prompted for unless --name and
              --segments are given. --dry-run prints the plan only.
              Creates <layer>/<slice>/index.ts and, per segment,
              <layer>/<slice>/<segment>/index.ts. Existing index files are
              truncated. There is no rollback if a step fails.
  layers      Show every alias that resolves to a layer, with its
              directory and whether it exists (✓) or not (✗).
  list        List existing slices per layer and the segments they contain.
              Entries ignored by the workspace .gitignore are skipped.
  schema      Output the JSON Schema for .fsd.yaml.
  validate    Validate .fsd.yaml and print specific errors, or "valid".
  explain     Print this reference (what you are reading now).
  version     Print the version.

WORKSPACE
  -w/--workspace sets the workspace root. Without it, fsd walks up from the
  current directory to the first directory holding .fsd.yaml or
  tsconfig.json.

TSCONFIG
  // and /* */ comments are allowed. Comment markers inside strings are kept.
  Only the first target of each alias is used. Aliases are matched in file
  order and the first match wins. "@/*" never names a layer.

CONFIG FORMAT (.fsd.yaml, optional)
  -c/--config points at a different file. A user-level file at
  $XDG_CONFIG_HOME/fsd/config.yaml is applied first; the project file
  overrides it field by field.

  tsconfig: tsconfig.json                        # alias-bearing config, relative to the workspace
  extension: ts                                  # index file extension, no leading dot
  layers: [app, pages, widgets, features, entities, shared]   # layer picker options
  segments: [ui, model]                          # segments preselected in the picker

NAMES AND SEGMENTS
  - Slice names must not be empty, "." or "..", must not contain
    / \ : * ? " < > | and must not start or end with a dot or a space.
  - Segments are ui, api, lib, model and config. Repeats are dropped.

EXIT STATUS
  0 on success or when a prompt is cancelled or left empty; 1 otherwise.`

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Print agent-friendly reference for fsd",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(explainText)
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
}
