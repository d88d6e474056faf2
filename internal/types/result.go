package types

import "github.com/google/uuid"

// CandidateLevel is the closed set of seniority predictions
type CandidateLevel string

// Candidate levels, ordered from worst to best
const (
	LevelReject CandidateLevel = "Reject"
	LevelJunior CandidateLevel = "Junior"
	LevelMid    CandidateLevel = "Mid"
	LevelSenior CandidateLevel = "Senior"
)

// LevelFromLabel maps a free-form classifier label to a CandidateLevel.
// Unrecognized labels map to LevelReject.
func LevelFromLabel(label string) CandidateLevel {
	switch label {
	case "Junior":
		return LevelJunior
	case "Mid":
		return LevelMid
	case "Senior":
		return LevelSenior
	default:
		return LevelReject
	}
}

// Suggestion categories emitted by the suggestion generator
const (
	SuggestionCategorySkills = "Skills"
	SuggestionCategoryATS    = "ATS Optimization"
)

// Suggestion is a single remediation item for the candidate
type Suggestion struct {
	Category      string `json:"category"`
	OriginalText  string `json:"original_text"`
	SuggestedText string `json:"suggested_text"`
	Reason        string `json:"reason"`
}

// AnalysisResult is the immutable outcome of one analysis run. It is created
// once by the orchestrator and never mutated afterwards.
type AnalysisResult struct {
	ResumeID uuid.UUID `json:"resume_id"`
	JobID    uuid.UUID `json:"job_id"`

	CompatibilityScore   float64        `json:"compatibility_score"`
	SkillMatchPercentage float64        `json:"skill_match_percentage"`
	ATSScore             float64        `json:"ats_score"`
	PredictedLevel       CandidateLevel `json:"predicted_level"`

	ExtractedName     string `json:"extracted_name"`
	ExtractedEmail    string `json:"extracted_email"`
	ExtractedPhone    string `json:"extracted_phone"`
	ExtractedJobTitle string `json:"extracted_job_title"`
	ExtractedCity     string `json:"extracted_city"`
	ExtractedLinkedIn string `json:"extracted_linkedin"`
	ExtractedWebsite  string `json:"extracted_website"`
	ExtractedSummary  string `json:"extracted_summary"`

	WorkExperiences []WorkExperience `json:"work_experiences"`
	Education       []Education      `json:"education"`
	Volunteering    []Volunteering   `json:"volunteering"`
	Languages       []LanguageSkill  `json:"languages"`
	Certifications  []Certification  `json:"certifications"`
	Projects        []Project        `json:"projects"`

	ExtractedSkills  []string `json:"extracted_skills"`
	AdditionalSkills []string `json:"additional_skills"`
	MatchedSkills    []string `json:"matched_skills"`
	MissingSkills    []string `json:"missing_skills"`

	Suggestions []Suggestion `json:"suggestions"`
}
