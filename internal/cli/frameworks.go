package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/infra/wire"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/usecase"
)

func frameworksCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "frameworks",
		Short: "Browse frameworks saved by the gateway",
	}

	c.AddCommand(frameworksListCmd(), frameworksShowCmd())
	return c
}

func frameworksListCmd() *cobra.Command {
	var workspace string
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved frameworks, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace, true)
			if err != nil {
				return err
			}
			store, _, err := ws.store(cmd.Context())
			if err != nil {
				return err
			}

			refs, err := usecase.NewFrameworkCatalog(store).List(cmd.Context())
			if err != nil {
				return err
			}
			return printRefs(cmd.OutOrStdout(), refs, format)
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return cmd
}

func frameworksShowCmd() *cobra.Command {
	var workspace string
	var raw bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Print a saved framework document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace, true)
			if err != nil {
				return err
			}
			store, _, err := ws.store(cmd.Context())
			if err != nil {
				return err
			}

			f, err := usecase.NewFrameworkCatalog(store).Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if raw {
				_, err = io.WriteString(w, f.Document)
				return err
			}

			r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
			if err != nil {
				return err
			}
			out, err := r.Render(f.Document)
			if err != nil {
				return err
			}
			_, err = io.WriteString(w, out)
			return err
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the markdown without rendering")
	return cmd
}

func printRefs(w io.Writer, refs []domain.FrameworkRef, format string) error {
	switch format {
	case "json":
		out := make([]wire.FrameworkRef, 0, len(refs))
		for _, r := range refs {
			out = append(out, wire.FromRef(r))
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)

	case "pretty", "":
		if len(refs) == 0 {
			_, err := fmt.Fprintln(w, "(no frameworks saved)")
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITLE\tCREATED")
		for _, r := range refs {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r.ID, r.Title, r.CreatedAt.UTC().Format("2006-01-02 15:04:05Z"))
		}
		return tw.Flush()

	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
