package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/sections"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const maxEducationEntries = 5

// Degree-indicating keywords, bilingual
var degreePattern = regexp.MustCompile(`(?i)\b(bachelor|master|phd|ph\.d|doctorate|diploma|degree|b\.?sc|m\.?sc|b\.?eng|m\.?eng|mba|licence|maîtrise|doctorat|diplôme|bts|dut|ingéniorat)\b`)

// ExtractEducation bounds the education section and scans its lines for
// degree keywords. A degree line becomes an entry; the following line is
// consumed as the school name unless it is itself a degree line.
func ExtractEducation(text string) []types.Education {
	section := sections.ExtractSection(text, sections.EducationHeaders)
	if section == "" {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(section, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	var entries []types.Education
	for i := 0; i < len(lines) && len(entries) < maxEducationEntries; i++ {
		line := lines[i]
		if !degreePattern.MatchString(line) {
			continue
		}

		e := types.NewEducation()
		e.Degree = line
		if m := dateRangeExpr.FindStringSubmatch(line); m != nil {
			e.StartDate = strings.TrimSpace(m[1])
			e.EndDate = strings.TrimSpace(m[2])
		}
		if i+1 < len(lines) && !degreePattern.MatchString(lines[i+1]) {
			e.School = lines[i+1]
			i++
		}
		entries = append(entries, e)
	}
	return entries
}
