package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-wizard/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved draft",
	RunE:  runShow,
}

var showPreviewFile string

func init() {
	showCmd.Flags().StringVar(&showPreviewFile, "preview", "", "Also write an HTML preview to this path")

	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	draft := app.store.Draft()
	app.printer.PrintDraftSummary(draft)

	if showPreviewFile != "" {
		html, err := render.Preview(draft.SelectedTemplate, draft)
		if err != nil {
			return err
		}
		if err := os.WriteFile(showPreviewFile, []byte(html), 0o644); err != nil {
			return fmt.Errorf("failed to write preview: %w", err)
		}
		fmt.Printf("Preview written to %s\n", showPreviewFile)
	}

	return nil
}
