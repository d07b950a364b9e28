package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-wizard/internal/generate"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate resume content with AI",
}

var bulletsCmd = &cobra.Command{
	Use:   "bullets",
	Short: "Generate achievement bullets for work experience entries",
	Long:  "Generate achievement bullet points from each experience's responsibilities, tailored to the selected industry and job level. Regenerating overwrites previous bullets.",
	RunE:  runGenerateBullets,
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Generate a professional summary",
	RunE:  runGenerateSummary,
}

var (
	bulletsExperience int
	summaryYears      int
)

func init() {
	bulletsCmd.Flags().IntVarP(&bulletsExperience, "experience", "e", 0, "1-based experience entry to generate for (0 = all)")
	summaryCmd.Flags().IntVarP(&summaryYears, "years", "y", 0, "Years of experience to mention (0 = omit)")

	generateCmd.AddCommand(bulletsCmd)
	generateCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(generateCmd)
}

func runGenerateBullets(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	client, err := app.newLLMClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	gateway := generate.New(app.store, client)
	draft := app.store.Draft()

	if bulletsExperience > 0 {
		if bulletsExperience > len(draft.WorkExperience) {
			return fmt.Errorf("experience %d does not exist (you have %d entries)", bulletsExperience, len(draft.WorkExperience))
		}
		exp := draft.WorkExperience[bulletsExperience-1]
		bullets, err := gateway.GenerateBullets(ctx, exp.ID, exp.Title, exp.Company, exp.Responsibilities)
		if err != nil {
			return err
		}
		app.printer.PrintBullets(&exp, bullets)
		return nil
	}

	if len(draft.WorkExperience) == 0 {
		return fmt.Errorf("no work experience entries to generate for")
	}

	if err := gateway.GenerateAllBullets(ctx); err != nil {
		return err
	}

	updated := app.store.Draft()
	for i := range updated.WorkExperience {
		exp := updated.WorkExperience[i]
		app.printer.PrintBullets(&exp, updated.AIBullets[exp.ID])
	}
	return nil
}

func runGenerateSummary(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	client, err := app.newLLMClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	gateway := generate.New(app.store, client)
	summary, err := gateway.GenerateSummary(ctx, summaryYears)
	if err != nil {
		return err
	}

	app.printer.PrintSummaryText(summary)
	return nil
}
