package cli

import (
	"github.com/spf13/cobra"
)

var (
	workspaceDir string
	configPath   string
	Version      = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "fsd",
	Short: "Scaffold Feature-Sliced Design slices from tsconfig path aliases",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workspaceDir, "workspace", "w", "", "workspace root (default: nearest directory with "+tsconfigFile+")")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file (default: <workspace>/.fsd.yaml)")
}

func Execute() error {
	return rootCmd.Execute()
}
