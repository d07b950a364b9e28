package types

// Patch types express partial updates: nil fields are left untouched by the
// store's merge operations, mirroring the shallow-merge contract of the
// setter API.

// PersonalDetailsPatch is a partial update to PersonalDetails.
type PersonalDetailsPatch struct {
	FullName            *string
	Title               *string
	Email               *string
	Phone               *string
	Location            *string
	LinkedIn            *string
	ProfessionalSummary *string
}

// WorkExperiencePatch is a partial update to a WorkExperience entry.
type WorkExperiencePatch struct {
	Company          *string
	Title            *string
	StartDate        *string
	EndDate          *string
	IsCurrentRole    *bool
	Responsibilities *string
	Bullets          *[]string
}

// EducationPatch is a partial update to an Education entry.
type EducationPatch struct {
	Institution  *string
	Degree       *string
	FieldOfStudy *string
	StartDate    *string
	EndDate      *string
	Honors       *string
	GPA          *string
}

// CertificationPatch is a partial update to a Certification entry.
type CertificationPatch struct {
	Name   *string
	Issuer *string
	Date   *string
}

// LanguagePatch is a partial update to a Language entry.
type LanguagePatch struct {
	Name        *string
	Proficiency *Proficiency
}

// ProjectPatch is a partial update to a Project entry.
type ProjectPatch struct {
	Name        *string
	Description *string
	URL         *string
}

// String returns a pointer to s, for building patches inline.
func String(s string) *string { return &s }

// Bool returns a pointer to b, for building patches inline.
func Bool(b bool) *bool { return &b }
