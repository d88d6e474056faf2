package types

import "github.com/google/uuid"

// Structured records extracted from resume sections. Every field is free text;
// a field the heuristics could not locate is an empty string, never an error.

// WorkExperience represents one position held by the candidate
type WorkExperience struct {
	ID               uuid.UUID `json:"id"`
	Company          string    `json:"company"`
	Role             string    `json:"role"`
	Location         string    `json:"location"`
	StartDate        string    `json:"start_date"`
	EndDate          string    `json:"end_date"`
	DateRange        string    `json:"date_range"`
	Responsibilities string    `json:"responsibilities"`
}

// NewWorkExperience creates an empty work experience entry with a fresh ID
func NewWorkExperience() WorkExperience {
	return WorkExperience{ID: uuid.New()}
}

// Education represents one degree or study program
type Education struct {
	ID           uuid.UUID `json:"id"`
	School       string    `json:"school"`
	Degree       string    `json:"degree"`
	FieldOfStudy string    `json:"field_of_study"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
}

// NewEducation creates an empty education entry with a fresh ID
func NewEducation() Education {
	return Education{ID: uuid.New()}
}

// Volunteering represents one volunteering engagement
type Volunteering struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
}

// LanguageSkill represents a spoken-language proficiency
type LanguageSkill struct {
	ID       uuid.UUID `json:"id"`
	Language string    `json:"language"`
	Fluency  string    `json:"fluency"`
}

// Certification represents one certification or license
type Certification struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Project represents one personal or professional project
type Project struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}
