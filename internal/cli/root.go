package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/infra/answers"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/infra/logger"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/infra/workspacefinder"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var workspace string
	var answersFile string

	cmd := &cobra.Command{
		Use:          "thesis",
		Short:        "Thesis framework wizard and project scaffolding",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace, false)
			if err != nil {
				return err
			}

			cleanup := setupLogging(ws.root, debug, false)
			defer cleanup()

			var seed *domain.FrameworkDraft
			if answersFile != "" {
				d, err := answers.Load(answersFile)
				if err != nil {
					return err
				}
				seed = &d
			}

			log := logger.L()
			log.Info("tui.start", "workspace", ws.root, "found", ws.found, "gateway", ws.cfg.Gateway.URL)

			return tui.Run(tui.Deps{
				WorkspaceLocator: workspacefinder.NewFinder(),
				Exporter:         ws.exporter(log, true),
				Draft:            seed,
				Logger:           log,
				Debug:            debug,
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .thesis/logs/thesis.log")
	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVar(&answersFile, "answers", "", "Pre-fill the wizard from an answers file")

	cmd.AddCommand(
		initCmd(),
		exportCmd(),
		serveCmd(),
		frameworksCmd(),
		versionCmd(),
	)
	return cmd
}

func setupLogging(root string, debug, stderr bool) func() {
	cleanup, _ := logger.Setup(logger.Config{
		Root:   root,
		Debug:  debug,
		Stderr: stderr,
	})
	return func() {
		if cleanup != nil {
			_ = cleanup()
		}
	}
}

func debugFlag(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("debug")
	return v
}
