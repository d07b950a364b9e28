package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-wizard/internal/catalog"
	"github.com/jonathan/resume-wizard/internal/generate"
	"github.com/jonathan/resume-wizard/internal/types"
	"github.com/jonathan/resume-wizard/internal/validation"
	"github.com/jonathan/resume-wizard/internal/wizard"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive resume wizard",
	Long:  "Walk through every step of the resume builder, from personal details to template selection and export. Progress is saved after every change, so you can quit and resume where you left off.",
	RunE:  runWizard,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// errQuit signals an orderly exit requested at a prompt.
var errQuit = errors.New("quit")

type console struct {
	reader *bufio.Reader
}

func (c *console) prompt(label string) (string, error) {
	fmt.Printf("%s: ", label)
	line, err := c.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *console) confirm(label string) (bool, error) {
	answer, err := c.prompt(label + " [y/N]")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

// pick reads a 1-based selection from a numbered list.
func (c *console) pick(label string, count int) (int, error) {
	for {
		answer, err := c.prompt(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 && n <= count {
			return n - 1, nil
		}
		fmt.Printf("Please enter a number between 1 and %d.\n", count)
	}
}

func runWizard(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	// Resume where a previous session left off: steps whose data already
	// validates count as completed. Steps with no required data (optional
	// sections, template choice) are always revisited.
	draft := app.store.Draft()
	for _, step := range wizard.Steps {
		if step == wizard.StepOptional {
			break
		}
		if validation.Step(step, draft) != nil {
			break
		}
		app.wiz.MarkStepComplete(step)
		app.wiz.NextStep()
	}

	console := &console{reader: bufio.NewReader(os.Stdin)}

	for {
		app.printer.PrintStepHeader(app.wiz)
		if err := stepMenu(app, console); err != nil {
			if errors.Is(err, errQuit) {
				fmt.Println("Progress saved. Run again to continue where you left off.")
				return nil
			}
			return err
		}

		if app.wiz.Current() == wizard.StepPreview && app.wiz.Completed(wizard.StepPreview) {
			fmt.Println("All done. Your resume is ready.")
			return nil
		}
	}
}

// stepMenu offers navigation before running the current step's controller.
func stepMenu(app *app, c *console) error {
	answer, err := c.prompt("[Enter] edit step, (b)ack, (j)ump <n>, (q)uit")
	if err != nil {
		return err
	}

	switch {
	case answer == "q" || answer == "quit":
		return errQuit
	case answer == "b" || answer == "back":
		app.wiz.PreviousStep()
		return nil
	case strings.HasPrefix(answer, "j"):
		fields := strings.Fields(answer)
		if len(fields) != 2 {
			fmt.Println("Usage: j <step number>")
			return nil
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 || n > len(wizard.Steps) {
			fmt.Printf("Step number must be between 1 and %d.\n", len(wizard.Steps))
			return nil
		}
		target := wizard.Steps[n-1]
		if !app.wiz.GoToStep(target) {
			fmt.Println("Complete the earlier steps first.")
		}
		return nil
	}

	return runStep(app, c)
}

func runStep(app *app, c *console) error {
	var err error
	switch app.wiz.Current() {
	case wizard.StepPersonal:
		err = stepPersonal(app, c)
	case wizard.StepIndustry:
		err = stepIndustry(app, c)
	case wizard.StepExperience:
		err = stepExperience(app, c)
	case wizard.StepEducation:
		err = stepEducation(app, c)
	case wizard.StepSkills:
		err = stepSkills(app, c)
	case wizard.StepOptional:
		err = stepOptional(app, c)
	case wizard.StepTemplate:
		err = stepTemplate(app, c)
	case wizard.StepPreview:
		err = stepPreview(app, c)
	}
	if err != nil {
		return err
	}

	// The controller only returns nil once its data validates, so the step
	// is complete and the wizard can advance.
	app.wiz.MarkStepComplete(app.wiz.Current())
	if app.wiz.Current() != wizard.StepPreview {
		app.wiz.NextStep()
	}
	return nil
}

func stepPersonal(app *app, c *console) error {
	for {
		current := app.store.Draft().PersonalDetails

		fullName, err := promptWithDefault(c, "Full name", current.FullName)
		if err != nil {
			return err
		}
		title, err := promptWithDefault(c, "Professional title (optional)", current.Title)
		if err != nil {
			return err
		}
		email, err := promptWithDefault(c, "Email", current.Email)
		if err != nil {
			return err
		}
		phone, err := promptWithDefault(c, "Phone", current.Phone)
		if err != nil {
			return err
		}
		location, err := promptWithDefault(c, "Location", current.Location)
		if err != nil {
			return err
		}
		linkedIn, err := promptWithDefault(c, "LinkedIn URL (optional)", current.LinkedIn)
		if err != nil {
			return err
		}
		summary, err := promptWithDefault(c, "Professional summary (optional)", current.ProfessionalSummary)
		if err != nil {
			return err
		}

		candidate := types.PersonalDetails{
			FullName: fullName, Title: title, Email: email, Phone: phone,
			Location: location, LinkedIn: linkedIn, ProfessionalSummary: summary,
		}
		if err := validation.PersonalDetails(candidate); err != nil {
			printStepError(app, err)
			continue
		}

		app.store.SetPersonalDetails(types.PersonalDetailsPatch{
			FullName: &fullName, Title: &title, Email: &email, Phone: &phone,
			Location: &location, LinkedIn: &linkedIn, ProfessionalSummary: &summary,
		})
		return nil
	}
}

func stepIndustry(app *app, c *console) error {
	fmt.Println("Industries:")
	for i, opt := range catalog.Industries {
		fmt.Printf("  %2d. %-16s %s\n", i+1, opt.Label, opt.Description)
	}
	idx, err := c.pick("Industry number", len(catalog.Industries))
	if err != nil {
		return err
	}
	app.store.SetIndustry(catalog.Industries[idx].Value)

	fmt.Println("Job levels:")
	for i, opt := range catalog.JobLevels {
		fmt.Printf("  %2d. %-12s %s (%s)\n", i+1, opt.Label, opt.Description, opt.YearsExperience)
	}
	idx, err = c.pick("Job level number", len(catalog.JobLevels))
	if err != nil {
		return err
	}
	app.store.SetJobLevel(catalog.JobLevels[idx].Value)

	draft := app.store.Draft()
	return validation.IndustryLevel(draft.Industry, draft.JobLevel)
}

func stepExperience(app *app, c *console) error {
	for {
		draft := app.store.Draft()
		fmt.Printf("You have %d of %d experience entries.\n", len(draft.WorkExperience), validation.MaxWorkExperiences)
		for i, exp := range draft.WorkExperience {
			fmt.Printf("  %d. %s at %s\n", i+1, exp.Title, exp.Company)
		}

		if len(draft.WorkExperience) > 0 {
			if err := validation.WorkExperience(draft.WorkExperience); err == nil {
				more, err := c.confirm("Add another experience?")
				if err != nil {
					return err
				}
				if !more || len(draft.WorkExperience) >= validation.MaxWorkExperiences {
					return nil
				}
			}
		}

		if err := addExperience(app, c); err != nil {
			return err
		}
	}
}

func addExperience(app *app, c *console) error {
	for {
		company, err := c.prompt("Company")
		if err != nil {
			return err
		}
		title, err := c.prompt("Job title")
		if err != nil {
			return err
		}
		start, err := c.prompt("Start date (YYYY-MM)")
		if err != nil {
			return err
		}
		current, err := c.confirm("Is this your current role?")
		if err != nil {
			return err
		}
		var end string
		if !current {
			end, err = c.prompt("End date (YYYY-MM)")
			if err != nil {
				return err
			}
		}
		responsibilities, err := c.prompt("Describe your responsibilities (at least 10 characters)")
		if err != nil {
			return err
		}

		candidate := types.WorkExperience{
			ID: "pending", Company: company, Title: title, StartDate: start,
			EndDate: end, IsCurrentRole: current, Responsibilities: responsibilities,
		}
		if err := validation.WorkExperience([]types.WorkExperience{candidate}); err != nil {
			printStepError(app, err)
			continue
		}

		candidate.ID = ""
		id := app.store.AddWorkExperience(candidate)

		generateNow, err := c.confirm("Generate achievement bullets for this role now?")
		if err != nil {
			return err
		}
		if generateNow {
			generateBulletsFor(app, id)
		}
		return nil
	}
}

// generateBulletsFor invokes the gateway for one experience, reporting
// failures without aborting the wizard.
func generateBulletsFor(app *app, experienceID string) {
	ctx := context.Background()
	client, err := app.newLLMClient(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Skipping generation: %v\n", err)
		return
	}
	defer client.Close()

	exp := app.store.Draft().FindWorkExperience(experienceID)
	if exp == nil {
		return
	}

	gateway := generate.New(app.store, client)
	bullets, err := gateway.GenerateBullets(ctx, exp.ID, exp.Title, exp.Company, exp.Responsibilities)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generation failed (you can retry later with 'generate bullets'): %v\n", err)
		return
	}
	app.printer.PrintBullets(exp, bullets)
}

func stepEducation(app *app, c *console) error {
	for {
		draft := app.store.Draft()
		fmt.Printf("You have %d of %d education entries.\n", len(draft.Education), validation.MaxEducation)
		for i, edu := range draft.Education {
			fmt.Printf("  %d. %s, %s\n", i+1, edu.Degree, edu.Institution)
		}

		if len(draft.Education) > 0 {
			more, err := c.confirm("Add another education entry?")
			if err != nil {
				return err
			}
			if !more || len(draft.Education) >= validation.MaxEducation {
				return validation.Education(app.store.Draft().Education)
			}
		}

		institution, err := c.prompt("Institution")
		if err != nil {
			return err
		}
		degree, err := c.prompt("Degree")
		if err != nil {
			return err
		}
		field, err := c.prompt("Field of study")
		if err != nil {
			return err
		}
		start, err := c.prompt("Start date (YYYY-MM)")
		if err != nil {
			return err
		}
		end, err := c.prompt("End date (YYYY-MM, empty if ongoing)")
		if err != nil {
			return err
		}
		honors, err := c.prompt("Honors (optional)")
		if err != nil {
			return err
		}
		gpa, err := c.prompt("GPA (optional)")
		if err != nil {
			return err
		}

		candidate := types.Education{
			ID: "pending", Institution: institution, Degree: degree, FieldOfStudy: field,
			StartDate: start, EndDate: end, Honors: honors, GPA: gpa,
		}
		if err := validation.Education([]types.Education{candidate}); err != nil {
			printStepError(app, err)
			continue
		}

		candidate.ID = ""
		app.store.AddEducation(candidate)
	}
}

func stepSkills(app *app, c *console) error {
	for {
		draft := app.store.Draft()
		if len(draft.Skills) > 0 {
			fmt.Printf("Current skills: %s\n", strings.Join(draft.Skills, ", "))
		}

		answer, err := c.prompt(fmt.Sprintf("Enter skills, comma-separated (at least %d)", validation.MinSkills))
		if err != nil {
			return err
		}

		var skills []string
		for _, skill := range strings.Split(answer, ",") {
			if trimmed := strings.TrimSpace(skill); trimmed != "" {
				skills = append(skills, trimmed)
			}
		}

		if err := validation.Skills(skills); err != nil {
			printStepError(app, err)
			continue
		}
		app.store.SetSkills(skills)
		return nil
	}
}

func stepOptional(app *app, c *console) error {
	for {
		answer, err := c.prompt("Add (c)ertification, (l)anguage, (p)roject, or (d)one")
		if err != nil {
			return err
		}

		switch strings.ToLower(answer) {
		case "d", "done", "":
			draft := app.store.Draft()
			if err := validation.Optional(draft.Certifications, draft.Languages, draft.Projects); err != nil {
				printStepError(app, err)
				continue
			}
			return nil
		case "c":
			if err := addCertification(app, c); err != nil {
				return err
			}
		case "l":
			if err := addLanguage(app, c); err != nil {
				return err
			}
		case "p":
			if err := addProject(app, c); err != nil {
				return err
			}
		}
	}
}

func addCertification(app *app, c *console) error {
	name, err := c.prompt("Certification name")
	if err != nil {
		return err
	}
	issuer, err := c.prompt("Issuer")
	if err != nil {
		return err
	}
	date, err := c.prompt("Date (optional)")
	if err != nil {
		return err
	}
	app.store.AddCertification(types.Certification{Name: name, Issuer: issuer, Date: date})
	return nil
}

func addLanguage(app *app, c *console) error {
	name, err := c.prompt("Language")
	if err != nil {
		return err
	}
	fmt.Println("Proficiency:")
	for i, p := range types.Proficiencies {
		fmt.Printf("  %d. %s\n", i+1, p)
	}
	idx, err := c.pick("Proficiency number", len(types.Proficiencies))
	if err != nil {
		return err
	}
	app.store.AddLanguage(types.Language{Name: name, Proficiency: types.Proficiencies[idx]})
	return nil
}

func addProject(app *app, c *console) error {
	name, err := c.prompt("Project name")
	if err != nil {
		return err
	}
	description, err := c.prompt("Description (at least 10 characters)")
	if err != nil {
		return err
	}
	url, err := c.prompt("URL (optional)")
	if err != nil {
		return err
	}
	app.store.AddProject(types.Project{Name: name, Description: description, URL: url})
	return nil
}

func stepTemplate(app *app, c *console) error {
	app.printer.PrintTemplateCatalog(app.store.Draft().SelectedTemplate)
	idx, err := c.pick("Template number", len(catalog.Templates))
	if err != nil {
		return err
	}
	app.store.SetTemplate(catalog.Templates[idx].ID)
	return nil
}

func stepPreview(app *app, c *console) error {
	app.printer.PrintDraftSummary(app.store.Draft())

	for {
		answer, err := c.prompt("Export as (p)df, (w)ord, generate (s)ummary, or (f)inish")
		if err != nil {
			return err
		}

		switch strings.ToLower(answer) {
		case "f", "finish", "":
			return nil
		case "p":
			exportFrom(app, "pdf")
		case "w":
			exportFrom(app, "docx")
		case "s":
			generateSummaryInteractive(app, c)
		}
	}
}

func exportFrom(app *app, format string) {
	path, err := runExport(context.Background(), app, format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
		return
	}
	fmt.Printf("Saved %s\n", path)
}

func generateSummaryInteractive(app *app, c *console) {
	answer, err := c.prompt("Years of experience (empty to skip)")
	if err != nil {
		return
	}
	years, _ := strconv.Atoi(answer)

	ctx := context.Background()
	client, err := app.newLLMClient(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Skipping generation: %v\n", err)
		return
	}
	defer client.Close()

	gateway := generate.New(app.store, client)
	summary, err := gateway.GenerateSummary(ctx, years)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generation failed: %v\n", err)
		return
	}
	app.printer.PrintSummaryText(summary)
}

// promptWithDefault keeps the existing value when the user enters nothing.
func promptWithDefault(c *console, label, current string) (string, error) {
	if current != "" {
		label = fmt.Sprintf("%s [%s]", label, current)
	}
	answer, err := c.prompt(label)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return current, nil
	}
	return answer, nil
}

func printStepError(app *app, err error) {
	var stepErr *validation.StepError
	if errors.As(err, &stepErr) {
		app.printer.PrintValidationErrors(stepErr)
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
