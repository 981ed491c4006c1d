package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/infra/answers"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/infra/logger"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/usecase"
)

type exportReport struct {
	Document      string `json:"document"`
	FrameworkID   string `json:"framework_id,omitempty"`
	Delivered     bool   `json:"delivered"`
	LocalPath     string `json:"local_path,omitempty"`
	DeliveryError string `json:"delivery_error,omitempty"`
	Out           string `json:"out,omitempty"`
}

func exportCmd() *cobra.Command {
	var workspace string
	var answersFile string
	var out string
	var submit bool
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render a framework document from an answers file without the wizard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "markdown" && format != "json" {
				return fmt.Errorf("unsupported format %q (expected markdown|json)", format)
			}

			draft, err := answers.Load(answersFile)
			if err != nil {
				return err
			}

			var outcome usecase.ExportOutcome
			if submit {
				ws, err := loadWorkspace(workspace, false)
				if err != nil {
					return err
				}
				cleanup := setupLogging(ws.root, debugFlag(cmd), false)
				defer cleanup()

				outcome, err = ws.exporter(logger.L(), true).Execute(cmd.Context(), draft)
				if err != nil {
					return err
				}
				if outcome.FellBack() {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: gateway unavailable (%v), saved locally\n", outcome.DeliveryErr)
				}
			} else {
				outcome = usecase.ExportOutcome{Document: domain.ExportDocument(draft.Normalize())}
			}

			if out != "" && out != "-" {
				if err := writeFile(out, outcome.Document); err != nil {
					return err
				}
			}

			w := cmd.OutOrStdout()
			if format == "json" {
				return printExportJSON(w, outcome, out)
			}

			if out == "" || out == "-" {
				_, err = io.WriteString(w, outcome.Document)
				return err
			}
			printExportSummary(w, outcome, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVarP(&answersFile, "answers", "a", "", "Answers file (YAML or JSON) with the framework fields (required)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the document to this file (- for stdout)")
	cmd.Flags().BoolVar(&submit, "submit", false, "Submit to the configured gateway, falling back to the exports dir")
	cmd.Flags().StringVar(&format, "format", "markdown", "Output format: markdown|json")

	_ = cmd.MarkFlagRequired("answers")
	return cmd
}

func printExportJSON(w io.Writer, o usecase.ExportOutcome, out string) error {
	rep := exportReport{
		Document:    o.Document,
		FrameworkID: o.FrameworkID,
		Delivered:   o.Delivered,
		LocalPath:   o.LocalPath,
	}
	if out != "-" {
		rep.Out = out
	}
	if o.DeliveryErr != nil {
		rep.DeliveryError = o.DeliveryErr.Error()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func printExportSummary(w io.Writer, o usecase.ExportOutcome, out string) {
	if o.Delivered {
		if o.FrameworkID != "" {
			fmt.Fprintf(w, "Saved to gateway: %s\n", o.FrameworkID)
		} else {
			fmt.Fprintln(w, "Saved to gateway")
		}
	}
	if o.LocalPath != "" {
		fmt.Fprintf(w, "Saved locally: %s\n", o.LocalPath)
	}
	fmt.Fprintf(w, "Written: %s\n", out)
}

func writeFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." && strings.TrimSpace(dir) != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &domain.OpError{Op: "cli.export", Kind: domain.KindExecution, Path: dir, Err: err}
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return &domain.OpError{Op: "cli.export", Kind: domain.KindExecution, Path: path, Err: err}
	}
	return nil
}
