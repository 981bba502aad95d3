package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/re-cinq/fsd/internal/config"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate .fsd.yaml and report errors",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			root, err := findWorkspace(workspaceDir)
			if err != nil {
				return err
			}
			if root == "" {
				fmt.Fprintln(os.Stderr, "No workspace folder found.")
				os.Exit(1)
			}
			path = filepath.Join(root, config.FileName)
		}

		cfg, err := config.Resolve(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		errs := config.Validate(cfg)
		if len(errs) == 0 {
			fmt.Println("valid")
			return nil
		}

		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}
		os.Exit(1)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
