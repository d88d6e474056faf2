package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/sections"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Heuristic false positives are bounded by capping every record category
const (
	maxWorkExperiences = 10
	maxEntryHeaderLen  = 150
)

// Date-range pattern, bilingual month names: "Jan 2020 - Present",
// "03/2019 – 12/2021", "2019 - 2023", "mars 2020 à aujourd'hui".
var (
	monthPart     = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec|janv|févr|avr|mai|juin|juil|août|sept|déc)[\p{L}]*\.?`
	datePart      = `(?:` + monthPart + `\s+\d{4}|\d{1,2}/\d{4}|\d{4})`
	dateEndPart   = `(?:present|current|présent|actuel(?:lement)?|aujourd'hui|` + datePart + `)`
	dateRangeExpr = regexp.MustCompile(`(?i)(` + datePart + `)\s*(?:-|–|—|to|au|à)\s*(` + dateEndPart + `)`)
)

// Separators that split an entry header line into role/company/location
var entrySeparators = []string{"|", " – ", " — ", " - ", " @ "}

// ExtractWorkExperience bounds the experience section and walks its lines,
// opening a new entry on a date-range line or a short separator-delimited
// header line, and folding everything else into the running entry's
// responsibilities.
func ExtractWorkExperience(text string) []types.WorkExperience {
	section := sections.ExtractSection(text, sections.ExperienceHeaders)
	if section == "" {
		return nil
	}

	var entries []types.WorkExperience
	var current *types.WorkExperience

	flush := func() {
		if current != nil {
			current.Responsibilities = strings.TrimSpace(current.Responsibilities)
			entries = append(entries, *current)
			current = nil
		}
	}

	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(entries) == maxWorkExperiences {
			break
		}

		if m := dateRangeExpr.FindStringSubmatch(line); m != nil {
			// A date line belongs to the open entry when that entry has no
			// dates yet (header-then-dates layout); otherwise it opens a
			// new entry (dates-first layout).
			if current != nil && current.DateRange == "" {
				setDates(current, m)
				continue
			}
			flush()
			e := types.NewWorkExperience()
			current = &e
			setDates(current, m)
			if rest := strings.TrimSpace(strings.Replace(line, m[0], "", 1)); rest != "" {
				populateEntryHeader(current, rest)
			}
			continue
		}

		if isEntryHeaderLine(line) {
			// Dates-first layouts open the entry on the date line; the
			// header line that follows completes it.
			if current != nil && current.Role == "" && current.Company == "" &&
				current.Responsibilities == "" {
				populateEntryHeader(current, line)
				continue
			}
			flush()
			e := types.NewWorkExperience()
			current = &e
			populateEntryHeader(current, line)
			continue
		}

		if current != nil {
			if current.Responsibilities != "" {
				current.Responsibilities += "\n"
			}
			current.Responsibilities += line
		}
	}
	if len(entries) < maxWorkExperiences {
		flush()
	}
	return entries
}

// isEntryHeaderLine reports whether a line looks like the start of a new
// entry: short, separator-delimited and not a bullet continuation
func isEntryHeaderLine(line string) bool {
	if len(line) >= maxEntryHeaderLen {
		return false
	}
	if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") ||
		strings.HasPrefix(line, "*") || strings.HasPrefix(line, "·") {
		return false
	}
	for _, sep := range entrySeparators {
		if strings.Contains(line, sep) {
			return true
		}
	}
	return false
}

// populateEntryHeader splits a header line into role, company and location,
// in that priority order
func populateEntryHeader(e *types.WorkExperience, line string) {
	parts := splitEntryHeader(line)
	if len(parts) > 0 {
		e.Role = parts[0]
	}
	if len(parts) > 1 {
		e.Company = parts[1]
	}
	if len(parts) > 2 {
		e.Location = parts[2]
	}
}

// splitEntryHeader splits on the first separator kind found in the line
func splitEntryHeader(line string) []string {
	for _, sep := range entrySeparators {
		if !strings.Contains(line, sep) {
			continue
		}
		raw := strings.Split(line, sep)
		parts := make([]string, 0, len(raw))
		for _, p := range raw {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		return parts
	}
	if trimmed := strings.TrimSpace(line); trimmed != "" {
		return []string{trimmed}
	}
	return nil
}

func setDates(e *types.WorkExperience, m []string) {
	e.DateRange = strings.TrimSpace(m[0])
	e.StartDate = strings.TrimSpace(m[1])
	e.EndDate = strings.TrimSpace(m[2])
}
