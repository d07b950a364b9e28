// Package generate implements the generation gateway: it validates
// prerequisites, builds prompts, invokes the LLM client, parses the result,
// and writes successful output back into the draft store. Failures never
// mutate the store.
package generate

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-wizard/internal/llm"
	"github.com/jonathan/resume-wizard/internal/prompts"
	"github.com/jonathan/resume-wizard/internal/store"
	"github.com/jonathan/resume-wizard/internal/types"
)

const (
	// bulletMaxTokens caps a bullet-generation response.
	bulletMaxTokens = 1024
	// summaryMaxTokens caps a summary-generation response.
	summaryMaxTokens = 256
	// fallbackBulletLimit is how many raw lines are kept when no
	// marker-prefixed bullets parse out of a response.
	fallbackBulletLimit = 5
	// minResponsibilitiesLen is the minimum free-text length accepted
	// before a bullet request is sent.
	minResponsibilitiesLen = 10
	// summaryTarget keys the summary's slot in the sequence table.
	summaryTarget = "summary"
)

// Gateway mediates between the wizard and the text-generation provider.
// Each call is independent; concurrent calls for different experience ids do
// not interfere. Calls for the same target carry a per-target sequence
// number, and a response that is no longer the latest is discarded instead
// of overwriting newer content.
type Gateway struct {
	store  *store.Store
	client llm.Client

	mu  sync.Mutex
	seq map[string]uint64
}

// New creates a gateway writing into the given store.
func New(s *store.Store, client llm.Client) *Gateway {
	return &Gateway{
		store:  s,
		client: client,
		seq:    make(map[string]uint64),
	}
}

// nextSeq issues the next sequence number for a target.
func (g *Gateway) nextSeq(target string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq[target]++
	return g.seq[target]
}

// isLatest reports whether token is still the newest issued for target.
func (g *Gateway) isLatest(target string, token uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seq[target] == token
}

// checkDraftPrerequisites verifies industry and job level are set.
func checkDraftPrerequisites(draft *types.ResumeDraft) error {
	if draft.Industry == "" {
		return &PrerequisiteError{Field: "industry", Message: "select an industry first"}
	}
	if draft.JobLevel == "" {
		return &PrerequisiteError{Field: "job_level", Message: "select a job level first"}
	}
	return nil
}

// GenerateBullets produces resume bullet points for one work experience and
// stores them keyed by the experience id. All prerequisite failures are
// caught before any network call. On provider failure the store is left
// untouched and a retryable error is returned.
func (g *Gateway) GenerateBullets(ctx context.Context, experienceID, jobTitle, company, responsibilities string) ([]string, error) {
	draft := g.store.Draft()
	if err := checkDraftPrerequisites(draft); err != nil {
		return nil, err
	}
	if strings.TrimSpace(jobTitle) == "" {
		return nil, &PrerequisiteError{Field: "title", Message: "job title is required"}
	}
	if strings.TrimSpace(company) == "" {
		return nil, &PrerequisiteError{Field: "company", Message: "company is required"}
	}
	if len(strings.TrimSpace(responsibilities)) < minResponsibilitiesLen {
		return nil, &PrerequisiteError{Field: "responsibilities", Message: "describe your responsibilities in at least 10 characters"}
	}

	prompt := prompts.BuildBulletPointPrompt(prompts.BulletParams{
		JobTitle:         jobTitle,
		Company:          company,
		Responsibilities: responsibilities,
		Industry:         draft.Industry,
		JobLevel:         draft.JobLevel,
	})

	token := g.nextSeq(experienceID)
	text, err := g.client.GenerateText(ctx, prompt, bulletMaxTokens)
	if err != nil {
		return nil, &GenerationError{Message: "bullet generation request failed", Cause: err}
	}

	bullets := prompts.ParseBulletPoints(text)
	if len(bullets) == 0 {
		bullets = fallbackLines(text)
	}
	if len(bullets) == 0 {
		return nil, &GenerationError{Message: "provider returned no usable bullet lines"}
	}

	if !g.isLatest(experienceID, token) {
		return nil, ErrStaleResponse
	}
	g.store.SetAIBullets(experienceID, bullets)
	return bullets, nil
}

// GenerateAllBullets generates bullets for every experience on the draft
// concurrently, one request per experience. The first error cancels the
// remaining requests.
func (g *Gateway) GenerateAllBullets(ctx context.Context) error {
	draft := g.store.Draft()
	if err := checkDraftPrerequisites(draft); err != nil {
		return err
	}

	group, ctx := errgroup.WithContext(ctx)
	for _, exp := range draft.WorkExperience {
		group.Go(func() error {
			_, err := g.GenerateBullets(ctx, exp.ID, exp.Title, exp.Company, exp.Responsibilities)
			return err
		})
	}
	return group.Wait()
}

// GenerateSummary produces a professional summary from the draft's personal
// details, most recent title, and skills, and stores it as the AI summary.
// yearsExperience of zero omits the years line from the prompt.
func (g *Gateway) GenerateSummary(ctx context.Context, yearsExperience int) (string, error) {
	draft := g.store.Draft()
	if err := checkDraftPrerequisites(draft); err != nil {
		return "", err
	}

	recentTitle := ""
	if len(draft.WorkExperience) > 0 {
		recentTitle = draft.WorkExperience[0].Title
	}

	prompt := prompts.BuildSummaryPrompt(prompts.SummaryParams{
		FullName:        draft.PersonalDetails.FullName,
		Industry:        draft.Industry,
		JobLevel:        draft.JobLevel,
		RecentJobTitle:  recentTitle,
		Skills:          draft.Skills,
		YearsExperience: yearsExperience,
	})

	token := g.nextSeq(summaryTarget)
	text, err := g.client.GenerateText(ctx, prompt, summaryMaxTokens)
	if err != nil {
		return "", &GenerationError{Message: "summary generation request failed", Cause: err}
	}

	summary := strings.TrimSpace(text)
	if summary == "" {
		return "", &GenerationError{Message: "provider returned an empty summary"}
	}

	if !g.isLatest(summaryTarget, token) {
		return "", ErrStaleResponse
	}
	g.store.SetAISummary(summary)
	return summary, nil
}

// fallbackLines keeps the first few non-blank lines of a response that
// contained no marker-prefixed bullets.
func fallbackLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == fallbackBulletLimit {
			break
		}
	}
	return lines
}
