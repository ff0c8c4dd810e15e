package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newRenderCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the dashboard page as a standalone HTML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dash, err := app.dashboard()
			if err != nil {
				return err
			}
			renderer, err := app.renderer()
			if err != nil {
				return err
			}

			view, err := dash.Build(cmd.Context())
			if err != nil {
				return err
			}
			for _, sec := range view.Sections() {
				if sec.Notice != nil {
					app.Logger.Warn("section rendered without chart", "section", sec.ID, "kind", sec.Notice.Kind, "message", sec.Notice.Message)
				}
			}

			if out == "" || out == "-" {
				return renderer.Render(cmd.OutOrStdout(), view)
			}
			if err := writePage(out, func(w io.Writer) error { return renderer.Render(w, view) }); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().String("plotly-url", "", "Override the Plotly.js script URL")

	return cmd
}

// writePage creates path and writes the page through render. The close
// error is returned since it reports whether the data reached the file.
func writePage(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := render(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}
