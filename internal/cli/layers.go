package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(layersCmd)
}

var layersCmd = &cobra.Command{
	Use:   "layers",
	Short: "Show the layers resolved from tsconfig path aliases",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		layers, err := ws.layers()
		if err != nil {
			return err
		}
		if len(layers) == 0 {
			fmt.Fprintf(os.Stderr, "No layer aliases found in %s\n", ws.Config.TSConfig)
			return nil
		}

		fmt.Println("Layers")
		fmt.Println("──────────────────────────────────────")
		for _, l := range layers {
			mark := "✓"
			if !dirExists(ws.FS, ws.FSRoot, l.Dir) {
				mark = "✗"
			}
			fmt.Printf("  %s %-10s %-14s %s\n", mark, l.Name, l.Alias, relTo(ws.Root, l.Dir))
		}
		return nil
	},
}
