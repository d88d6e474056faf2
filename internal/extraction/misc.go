package extraction

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/sections"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func newRecordID() uuid.UUID {
	return uuid.New()
}

// Per-category caps and line thresholds
const (
	maxVolunteering   = 5
	maxLanguages      = 5
	maxCertifications = 10
	maxProjects       = 5

	minMiscLineLen    = 10 // volunteering / certification lines
	minProjectLineLen = 20
)

// DefaultFluency is assumed when a language line carries no proficiency
const DefaultFluency = "Native/Fluent"

// ExtractVolunteering takes non-trivial lines of the volunteering section verbatim
func ExtractVolunteering(text string) []types.Volunteering {
	var entries []types.Volunteering
	for _, line := range sectionLines(text, sections.VolunteeringHeaders) {
		if len(line) <= minMiscLineLen {
			continue
		}
		entries = append(entries, types.Volunteering{ID: newRecordID(), Description: line})
		if len(entries) == maxVolunteering {
			break
		}
	}
	return entries
}

// ExtractCertifications takes non-trivial lines of the certifications section verbatim
func ExtractCertifications(text string) []types.Certification {
	var entries []types.Certification
	for _, line := range sectionLines(text, sections.CertificationHeaders) {
		if len(line) <= minMiscLineLen {
			continue
		}
		entries = append(entries, types.Certification{ID: newRecordID(), Name: line})
		if len(entries) == maxCertifications {
			break
		}
	}
	return entries
}

// ExtractLanguages splits each line of the languages section into a
// language/fluency pair. Lines without a separator default to DefaultFluency.
func ExtractLanguages(text string) []types.LanguageSkill {
	var entries []types.LanguageSkill
	for _, line := range sectionLines(text, sections.LanguageHeaders) {
		language, fluency := splitLanguageLine(line)
		if len(language) < 2 {
			continue
		}
		entries = append(entries, types.LanguageSkill{
			ID:       newRecordID(),
			Language: language,
			Fluency:  fluency,
		})
		if len(entries) == maxLanguages {
			break
		}
	}
	return entries
}

// splitLanguageLine splits on the first of ":", "-", "|", "(" into a
// language and its fluency
func splitLanguageLine(line string) (string, string) {
	idx := strings.IndexAny(line, ":-|(")
	if idx < 0 {
		return strings.TrimSpace(line), DefaultFluency
	}
	language := strings.TrimSpace(line[:idx])
	fluency := strings.TrimSpace(strings.Trim(line[idx+1:], " ()"))
	if fluency == "" {
		fluency = DefaultFluency
	}
	return language, fluency
}

// ExtractProjects takes non-trivial lines of the projects section as
// title/description entries
func ExtractProjects(text string) []types.Project {
	var entries []types.Project
	for _, line := range sectionLines(text, sections.ProjectsHeaders) {
		if len(line) <= minProjectLineLen {
			continue
		}
		p := types.Project{ID: newRecordID()}
		// "Title - description" and "Title: description" lines split in two
		if idx := strings.Index(line, " - "); idx > 0 {
			p.Title = strings.TrimSpace(line[:idx])
			p.Description = strings.TrimSpace(line[idx+3:])
		} else if idx := strings.Index(line, ": "); idx > 0 {
			p.Title = strings.TrimSpace(line[:idx])
			p.Description = strings.TrimSpace(line[idx+2:])
		} else {
			p.Title = line
		}
		entries = append(entries, p)
		if len(entries) == maxProjects {
			break
		}
	}
	return entries
}

// Delimiters that separate individual skills inside a SKILLS section
func isSkillDelimiter(r rune) bool {
	return r == ',' || r == ';' || r == '•' || r == '|' || r == '·' || r == '\n'
}

// ExtractAdditionalSkills scans the skills section and returns tokens of
// plausible length that are neither URLs nor "key: value" pairs. These are
// resume-declared skills outside the fixed dictionary.
func ExtractAdditionalSkills(text string) []string {
	section := sections.ExtractSection(text, sections.SkillsHeaders)
	if section == "" {
		return nil
	}

	var found []string
	for _, token := range strings.FieldsFunc(section, isSkillDelimiter) {
		token = strings.TrimSpace(strings.Trim(token, "-•· \t"))
		if len(token) < 2 || len(token) > 40 {
			continue
		}
		lower := strings.ToLower(token)
		if strings.Contains(lower, "http") || strings.Contains(lower, "www.") {
			continue
		}
		if strings.Contains(token, ":") {
			continue
		}
		found = append(found, token)
	}
	return found
}

// sectionLines bounds a section and returns its non-empty trimmed lines
func sectionLines(text string, headers []string) []string {
	section := sections.ExtractSection(text, headers)
	if section == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(section, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
