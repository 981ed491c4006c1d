package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/infra/fsworkspace"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/infra/workspacefinder"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/usecase"
)

// confirmFunc asks a yes/no question; swapped in tests.
var confirmFunc = func(title, description string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Overwrite").
		Negative("Keep my files").
		Value(&ok).
		Run()
	return ok, err
}

var stdinIsTTY = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func initCmd() *cobra.Command {
	var force bool
	var yes bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Scaffold a thesis project (docs, data, code, results, thesis.yaml)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			root, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("invalid directory: %w", err)
			}

			existing := workspacefinder.ConfigPath(root) != ""
			if existing && !force {
				switch {
				case yes:
					force = true
				case stdinIsTTY():
					ok, err := confirmFunc(
						"A thesis workspace already exists here",
						"Overwrite the templates? Missing files are added either way.",
					)
					if err != nil {
						return err
					}
					force = ok
				}
			}

			if err := usecase.NewInitWorkspace(fsworkspace.NewInitializer()).Execute(root, force); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if existing && !force {
				fmt.Fprintf(out, "Workspace updated at %s (existing files kept)\n", root)
			} else {
				fmt.Fprintf(out, "Workspace ready at %s\n", root)
			}
			fmt.Fprintln(out, "Next: run `thesis` to fill in your research framework.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing template files")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Answer yes to prompts (implies --force on an existing workspace)")
	return cmd
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
