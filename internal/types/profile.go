package types

import "github.com/google/uuid"

// CandidateProfile accumulates everything the extractors learn about one
// resume. A profile is owned by a single analysis run and is never shared
// across runs; the orchestrator assembles it and discards it after building
// the immutable AnalysisResult.
type CandidateProfile struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Phone    string
	City     string
	JobTitle string
	LinkedIn string
	Website  string
	Summary  string
	Language string
	RawText  string

	Skills          *SkillSet
	WorkExperiences []WorkExperience
	Education       []Education
	Volunteering    []Volunteering
	Languages       []LanguageSkill
	Certifications  []Certification
	Projects        []Project
}

// NewCandidateProfile creates a profile seeded with the caller-supplied fields.
// Name and email may be empty; the contact extractor fills them from raw text
// without overwriting non-empty values.
func NewCandidateProfile(name, email, rawText, language string) *CandidateProfile {
	if language == "" {
		language = "en"
	}
	return &CandidateProfile{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		RawText:  rawText,
		Language: language,
		Skills:   NewSkillSet(),
	}
}

// AddSkill adds a skill to the profile, ignoring case-insensitive duplicates
func (p *CandidateProfile) AddSkill(skill Skill) bool {
	return p.Skills.Add(skill)
}
