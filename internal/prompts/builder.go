package prompts

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-wizard/internal/types"
)

// promptFile is the embedded file holding the generation prompt templates.
const promptFile = "generation.json"

// maxPromptSkills caps how many skills are listed in a summary prompt.
const maxPromptSkills = 8

// maxPromptTerms caps how many terminology hints appear in a bullet prompt.
const maxPromptTerms = 5

// BulletParams carries the inputs for a bullet-point prompt.
type BulletParams struct {
	JobTitle         string
	Company          string
	Responsibilities string
	Industry         types.Industry
	JobLevel         types.JobLevel
}

// SummaryParams carries the inputs for a professional-summary prompt.
type SummaryParams struct {
	FullName        string
	Industry        types.Industry
	JobLevel        types.JobLevel
	RecentJobTitle  string
	Skills          []string
	YearsExperience int // 0 means unknown; the line is omitted
}

// BuildBulletPointPrompt assembles the bullet-generation prompt, embedding
// level-specific writing guidance and industry terminology hints.
func BuildBulletPointPrompt(params BulletParams) string {
	terms := TermsFor(params.Industry)
	if len(terms) > maxPromptTerms {
		terms = terms[:maxPromptTerms]
	}

	return Format(MustGet(promptFile, "bullet_points"), map[string]string{
		"JobTitle":         params.JobTitle,
		"Company":          params.Company,
		"Industry":         string(params.Industry),
		"JobLevel":         string(params.JobLevel),
		"Responsibilities": params.Responsibilities,
		"LevelGuidance":    GuidanceFor(params.JobLevel),
		"IndustryTerms":    strings.Join(terms, ", "),
	})
}

// BuildSummaryPrompt assembles the professional-summary prompt with the
// candidate's top skills and an optional years-of-experience line.
func BuildSummaryPrompt(params SummaryParams) string {
	skills := params.Skills
	if len(skills) > maxPromptSkills {
		skills = skills[:maxPromptSkills]
	}

	yearsLine := "\n"
	if params.YearsExperience > 0 {
		yearsLine = fmt.Sprintf("- Years of Experience: %d\n\n", params.YearsExperience)
	}

	return Format(MustGet(promptFile, "professional_summary"), map[string]string{
		"FullName":       params.FullName,
		"Industry":       string(params.Industry),
		"JobLevel":       string(params.JobLevel),
		"RecentJobTitle": params.RecentJobTitle,
		"Skills":         strings.Join(skills, ", "),
		"YearsLine":      yearsLine,
		"LevelGuidance":  GuidanceFor(params.JobLevel),
	})
}

// bulletMarkers are the line prefixes recognized as bullet points in model
// output.
var bulletMarkers = []string{"•", "-", "*"}

// ParseBulletPoints extracts bullet lines from raw model output: lines are
// trimmed, only marker-prefixed lines are kept, the marker and any following
// whitespace are stripped, and empty results are discarded.
func ParseBulletPoints(text string) []string {
	bullets := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		stripped, ok := stripMarker(line)
		if !ok {
			continue
		}
		if stripped != "" {
			bullets = append(bullets, stripped)
		}
	}
	return bullets
}

// stripMarker removes a leading bullet marker and following whitespace.
func stripMarker(line string) (string, bool) {
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(line, marker) {
			return strings.TrimLeft(strings.TrimPrefix(line, marker), " \t"), true
		}
	}
	return "", false
}
