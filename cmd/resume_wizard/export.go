package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-wizard/internal/export"
	"github.com/jonathan/resume-wizard/internal/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the saved draft as a PDF or Word document",
	RunE:  runExportCmd,
}

var (
	exportFormat   string
	exportTemplate string
	exportOutDir   string
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "pdf", "Output format: pdf or docx")
	exportCmd.Flags().StringVarP(&exportTemplate, "template", "t", "", "Template id override (classic, modern, compact, executive, canva); affects PDF output only, Word documents use a fixed layout")
	exportCmd.Flags().StringVarP(&exportOutDir, "out", "o", "", "Directory to write the document to")

	rootCmd.AddCommand(exportCmd)
}

func runExportCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	if exportTemplate != "" {
		id := types.TemplateID(exportTemplate)
		if !id.Valid() {
			return fmt.Errorf("unknown template id %q", exportTemplate)
		}
		app.store.SetTemplate(id)
	}

	path, err := runExport(ctx, app, exportFormat)
	if err != nil {
		return err
	}

	fmt.Printf("Saved %s\n", path)
	return nil
}

// runExport builds an exporter from the app config and runs one export.
// Shared between the export subcommand and the wizard's preview step.
func runExport(ctx context.Context, app *app, format string) (string, error) {
	outDir := exportOutDir
	if outDir == "" {
		outDir = app.cfg.OutputDir
	}
	if outDir == "" {
		outDir = "."
	}

	exporter := export.New(
		export.WithOutputDir(outDir),
		export.WithSerializer(export.FormatPDF, export.NewPDFSerializer(app.cfg.ChromePath)),
	)
	return exporter.Export(ctx, app.store.Draft(), export.Format(format))
}
