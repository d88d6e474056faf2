package types

import "github.com/google/uuid"

// JobDescription represents the job posting a resume is analyzed against
type JobDescription struct {
	ID              uuid.UUID
	Title           string
	DescriptionText string
	Language        string

	RequiredSkills *SkillSet
}

// NewJobDescription creates a job description ready for skill accumulation
func NewJobDescription(title, descriptionText, language string) *JobDescription {
	if language == "" {
		language = "en"
	}
	return &JobDescription{
		ID:              uuid.New(),
		Title:           title,
		DescriptionText: descriptionText,
		Language:        language,
		RequiredSkills:  NewSkillSet(),
	}
}

// AddRequiredSkill adds a required skill, ignoring case-insensitive duplicates
func (j *JobDescription) AddRequiredSkill(skill Skill) bool {
	return j.RequiredSkills.Add(skill)
}
