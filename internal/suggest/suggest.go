// Package suggest turns analysis outcomes into human-readable remediation
// items for the candidate.
package suggest

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// LowScorabilityThreshold is the score below which a structure suggestion is
// emitted.
const LowScorabilityThreshold = 70.0

// maxNamedMissingSkills caps how many missing skills the Skills suggestion
// names.
const maxNamedMissingSkills = 5

// Generate produces the ordered suggestion list for a run: at most one
// "Skills" item naming the first missing skills, and at most one
// "ATS Optimization" item when the scorability score is low.
func Generate(missingSkills []string, scorability float64) []types.Suggestion {
	var out []types.Suggestion

	if len(missingSkills) > 0 {
		named := missingSkills
		if len(named) > maxNamedMissingSkills {
			named = named[:maxNamedMissingSkills]
		}
		out = append(out, types.Suggestion{
			Category:      types.SuggestionCategorySkills,
			OriginalText:  "Existing skills list",
			SuggestedText: "Add the following skills: " + strings.Join(named, ", "),
			Reason:        "These skills are required or preferred in the job description but missing from your resume.",
		})
	}

	if scorability < LowScorabilityThreshold {
		out = append(out, types.Suggestion{
			Category:      types.SuggestionCategoryATS,
			OriginalText:  "Resume Structure",
			SuggestedText: "Improve resume formatting and contact information.",
			Reason:        "Your ATS score is low. Ensure you have clear headings, standard fonts, and all contact details (Phone, Email, LinkedIn).",
		})
	}

	return out
}
