package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tayden1990/alnscope/internal/infra/fsworkspace"
	"github.com/tayden1990/alnscope/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize an alnscope workspace",
		RunE: func(_ *cobra.Command, _ []string) error {
			abs, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("invalid path %q: %w", path, err)
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(abs, force); err != nil {
				return err
			}

			fmt.Printf("Workspace initialized at %s\n", abs)
			return nil
		},
	}

	c.Flags().StringVarP(&path, "path", "p", ".", "Directory to initialize")
	c.Flags().BoolVar(&force, "force", false, "Overwrite template files that already exist")
	return c
}
