// Package extraction pulls discrete profile fields and structured records
// (work experience, education, ...) out of raw resume text with pattern and
// positional heuristics. Nothing here fails: a field that cannot be found is
// an empty string and a section that cannot be parsed is an empty list,
// because resume layouts are too varied to guarantee detection.
package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/sections"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// NamePlaceholder is returned as the candidate name for empty resume text
const NamePlaceholder = "Unknown"

// Line windows for positional heuristics
const (
	nameLineWindow  = 5
	titleLineWindow = 15
	cityLineWindow  = 25
)

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// Phone extraction is a cascade of independent strategies; the first one that
// produces a plausible match wins.
var phoneStrategies = []phoneStrategy{
	// Generalized international number: optional country code, grouped
	// digits, at least 10 digits total. Separators never cross lines.
	{regexp.MustCompile(`\+?\d{1,3}[ .\-]?\(?\d{2,4}\)?(?:[ .\-]?\d{2,4}){2,}`), 10, 15},
	// Looser fallback: an 8-12 digit group with separators.
	{regexp.MustCompile(`\d[\d ().\-]{6,12}\d`), 8, 12},
}

type phoneStrategy struct {
	pattern   *regexp.Regexp
	minDigits int
	maxDigits int
}

var (
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/([A-Za-z0-9_\-%.]+)`)
	githubPattern   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_\-]+`)
)

var (
	cityLabelPattern = regexp.MustCompile(`(?i)^\s*(?:location|address|adresse|ville|lieu)\s*[:：]\s*(.+)$`)
	cityPairPattern  = regexp.MustCompile(`\b(\p{Lu}[\p{Ll}\-]+(?:\s\p{Lu}[\p{Ll}\-]+)*),\s*(\p{Lu}[\p{L}\-]+)`)
	longDigitRun     = regexp.MustCompile(`\d{4,}`)
)

// Role nouns that mark a line as a plausible job title, bilingual
var titleKeywords = []string{
	"developer", "engineer", "manager", "analyst", "designer", "architect",
	"consultant", "scientist", "administrator", "specialist", "director",
	"lead", "intern",
	"ingénieur", "ingénieure", "développeur", "développeuse", "analyste",
	"concepteur", "conceptrice", "directeur", "directrice", "technicien",
	"technicienne", "stagiaire", "chef de projet",
}

// ExtractContactProfile fills the profile's contact and headline fields from
// its raw text. Name, email and phone supplied by the caller are preserved;
// links, city, title and summary are always recomputed.
func ExtractContactProfile(p *types.CandidateProfile) {
	text := p.RawText
	if p.Name == "" {
		p.Name = ExtractName(text)
	}
	if p.Email == "" {
		p.Email = ExtractEmail(text)
	}
	if p.Phone == "" {
		p.Phone = ExtractPhone(text)
	}
	p.LinkedIn = ExtractLinkedIn(text)
	p.Website = ExtractWebsite(text)
	p.City = ExtractCity(text)
	p.JobTitle = ExtractJobTitle(text, p.Name)
	p.Summary = ExtractSummary(text)
}

// ExtractEmail returns the first RFC-like email address in the text
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// ExtractPhone runs the phone strategy cascade and returns the first
// plausible match
func ExtractPhone(text string) string {
	for _, strat := range phoneStrategies {
		for _, match := range strat.pattern.FindAllString(text, -1) {
			digits := countDigits(match)
			if digits >= strat.minDigits && digits <= strat.maxDigits {
				return strings.TrimSpace(match)
			}
		}
	}
	return ""
}

// ExtractLinkedIn returns the first linkedin.com/in/ profile link, normalized
// to a full https URL
func ExtractLinkedIn(text string) string {
	m := linkedinPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return "https://www.linkedin.com/in/" + strings.TrimRight(m[1], ".")
}

// ExtractWebsite returns the first github.com URL, normalized to https.
// GitHub profiles are the supported "personal website" pattern.
func ExtractWebsite(text string) string {
	m := githubPattern.FindString(text)
	if m == "" {
		return ""
	}
	// Strip whatever scheme/www prefix was present and rebuild
	idx := strings.Index(strings.ToLower(m), "github.com")
	return "https://" + m[idx:]
}

// ExtractCity scans the top of the resume for a location. Strategies in
// order: an explicit Location/Address label, a "City, Region" capitalized
// pair, then a short alphabetic segment between separators on a contact line.
func ExtractCity(text string) string {
	lines := headLines(text, cityLineWindow)

	for _, line := range lines {
		if m := cityLabelPattern.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	for i, line := range lines {
		if i == 0 || strings.Contains(line, "@") {
			// The first line is almost always the name
			continue
		}
		if m := cityPairPattern.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[0])
		}
	}

	for _, line := range lines {
		if !strings.ContainsAny(line, "|•–-") {
			continue
		}
		for _, segment := range strings.FieldsFunc(line, func(r rune) bool {
			return r == '|' || r == '•' || r == '–' || r == '-'
		}) {
			segment = strings.TrimSpace(segment)
			if segment == "" || len(segment) > 30 {
				continue
			}
			if strings.Contains(segment, "@") || countDigits(segment) > 0 {
				continue
			}
			if isAlphabetic(segment) {
				return segment
			}
		}
	}
	return ""
}

// ExtractJobTitle scans the top lines for one containing a role noun,
// skipping the name line, contact lines and section headers
func ExtractJobTitle(text, name string) string {
	for _, line := range headLines(text, titleLineWindow) {
		if line == "" || line == name {
			continue
		}
		if strings.Contains(line, "@") || longDigitRun.MatchString(line) {
			continue
		}
		if isSectionHeader(line) {
			continue
		}
		lower := strings.ToLower(line)
		for _, kw := range titleKeywords {
			if strings.Contains(lower, kw) {
				return line
			}
		}
	}
	return ""
}

// ExtractName returns the first plausible name line from the top of the
// resume. Falls back to the very first line, or NamePlaceholder for empty
// text.
func ExtractName(text string) string {
	lines := headLines(text, nameLineWindow)
	if len(lines) == 0 {
		return NamePlaceholder
	}
	for _, line := range lines {
		if len(line) <= 2 {
			continue
		}
		if strings.Contains(line, "@") || countDigits(line) >= 7 {
			continue
		}
		return line
	}
	return lines[0]
}

// ExtractSummary returns the summary/profile/objective section body
func ExtractSummary(text string) string {
	return sections.ExtractSection(text, sections.SummaryHeaders)
}

// headLines returns up to n non-empty trimmed lines from the top of the text
func headLines(text string, n int) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == n {
			break
		}
	}
	return lines
}

// isSectionHeader reports whether the line exactly equals a known section
// header synonym
func isSectionHeader(line string) bool {
	normalized := strings.ToLower(strings.TrimRight(strings.TrimSpace(line), ":"))
	for _, group := range [][]string{
		sections.ExperienceHeaders, sections.EducationHeaders,
		sections.SkillsHeaders, sections.ProjectsHeaders,
		sections.CertificationHeaders, sections.LanguageHeaders,
		sections.VolunteeringHeaders, sections.SummaryHeaders,
	} {
		for _, h := range group {
			if normalized == h {
				return true
			}
		}
	}
	return false
}

func countDigits(s string) int {
	count := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			count++
		}
	}
	return count
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if r != ' ' && !isLetter(r) {
			return false
		}
	}
	return s != ""
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r >= 0x00C0
}
