package prompts

import "github.com/jonathan/resume-wizard/internal/types"

// LevelGuidance maps each job level to the writing guidance embedded in
// generation prompts.
var LevelGuidance = map[types.JobLevel]string{
	types.LevelEntry:     "Focus on learning, growth, foundational skills, and potential. Emphasize training completed, skills developed, internships, and eagerness to contribute. Use action verbs that show initiative.",
	types.LevelMid:       "Balance technical execution with emerging leadership. Show project ownership, collaboration, and measurable contributions. Highlight specific achievements and growth trajectory.",
	types.LevelSenior:    "Emphasize expertise, mentorship, and significant project leadership. Demonstrate strategic thinking, innovation, and substantial impact on team/organization outcomes.",
	types.LevelManager:   "Focus on team leadership, resource management, and department-level impact. Include team size, budget responsibility, cross-functional collaboration, and organizational improvements.",
	types.LevelExecutive: "Emphasize strategic vision, organizational transformation, P&L responsibility, and enterprise-level impact. Show board-level communication, stakeholder management, and long-term strategic outcomes.",
}

// IndustryTerminology maps each industry to vocabulary hints woven into
// bullet prompts. Unrecognized industries fall back to the Other entry.
var IndustryTerminology = map[types.Industry][]string{
	types.IndustryTechnology:     {"agile", "scalable", "deployed", "optimized", "integrated", "architected", "automated", "implemented"},
	types.IndustryFinance:        {"portfolio", "compliance", "risk assessment", "due diligence", "ROI", "financial modeling", "regulatory"},
	types.IndustryHealthcare:     {"patient outcomes", "clinical", "HIPAA", "care coordination", "evidence-based", "quality improvement"},
	types.IndustryMarketing:      {"engagement", "conversion", "brand awareness", "campaign", "ROI", "analytics", "market research"},
	types.IndustryEducation:      {"curriculum", "student outcomes", "differentiated instruction", "assessment", "learning objectives"},
	types.IndustryEngineering:    {"specifications", "tolerances", "CAD", "prototyping", "quality assurance", "optimization"},
	types.IndustryLegal:          {"litigation", "compliance", "due diligence", "contracts", "regulatory", "case management"},
	types.IndustrySales:          {"revenue", "pipeline", "quota", "client relationships", "closing", "prospecting", "negotiation"},
	types.IndustryHumanResources: {"talent acquisition", "employee engagement", "retention", "onboarding", "performance management"},
	types.IndustryOperations:     {"efficiency", "supply chain", "logistics", "cost reduction", "process improvement", "KPIs"},
	types.IndustryConsulting:     {"stakeholder management", "deliverables", "strategic recommendations", "client engagement", "best practices"},
	types.IndustryOther:          {"delivered", "managed", "led", "improved", "developed", "coordinated"},
}

// GuidanceFor returns the writing guidance for a level, falling back to the
// mid-level entry for unknown levels.
func GuidanceFor(level types.JobLevel) string {
	if guidance, ok := LevelGuidance[level]; ok {
		return guidance
	}
	return LevelGuidance[types.LevelMid]
}

// TermsFor returns the terminology hints for an industry, falling back to
// the generic Other vocabulary for unrecognized industries.
func TermsFor(industry types.Industry) []string {
	if terms, ok := IndustryTerminology[industry]; ok {
		return terms
	}
	return IndustryTerminology[types.IndustryOther]
}
