package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleResume = `Jane Smith
jane@x.com
EXPERIENCE
Software Engineer | Acme Corp
2019 - Present
Built APIs.
EDUCATION
State University
BSc Computer Science
SKILLS
Go, Docker`

func TestExtractSection_BoundedByNextHeader(t *testing.T) {
	section := ExtractSection(sampleResume, ExperienceHeaders)

	assert.Equal(t, "Software Engineer | Acme Corp\n2019 - Present\nBuilt APIs.", section)
}

func TestExtractSection_LastSectionRunsToEndOfText(t *testing.T) {
	section := ExtractSection(sampleResume, SkillsHeaders)

	assert.Equal(t, "Go, Docker", section)
}

func TestExtractSection_MiddleSection(t *testing.T) {
	section := ExtractSection(sampleResume, EducationHeaders)

	assert.Equal(t, "State University\nBSc Computer Science", section)
}

func TestExtractSection_NotFound(t *testing.T) {
	assert.Equal(t, "", ExtractSection(sampleResume, VolunteeringHeaders))
	assert.Equal(t, "", ExtractSection("", ExperienceHeaders))
}

func TestExtractSection_CaseInsensitive(t *testing.T) {
	text := "experience\nDid things.\neducation\nSchool"

	assert.Equal(t, "Did things.", ExtractSection(text, ExperienceHeaders))
}

func TestExtractSection_MidSentenceHeaderIgnored(t *testing.T) {
	// "experience" appears inside prose far from the line start, so it must
	// not open a section.
	text := "Jane Smith\nA developer with ten years of experience in Go.\nEDUCATION\nState University"

	assert.Equal(t, "", ExtractSection(text, ExperienceHeaders))
}

func TestExtractSection_MidSentenceHeaderNotABoundary(t *testing.T) {
	text := "EXPERIENCE\nLed teams and gained broad exposure to education technology platforms over several years.\nSKILLS\nGo"

	section := ExtractSection(text, ExperienceHeaders)

	assert.Contains(t, section, "education technology")
	assert.NotContains(t, section, "Go")
}

func TestExtractSection_FrenchHeaders(t *testing.T) {
	text := "Marie Dupont\nEXPÉRIENCE PROFESSIONNELLE\nIngénieure logiciel | Acme\nFORMATION\nUniversité de Lyon"

	section := ExtractSection(text, ExperienceHeaders)

	assert.Equal(t, "Ingénieure logiciel | Acme", section)
}

func TestExtractSection_HeaderWithTrailingColon(t *testing.T) {
	text := "SKILLS:\nGo, Docker\nEDUCATION\nState University"

	section := ExtractSection(text, SkillsHeaders)

	assert.Equal(t, "Go, Docker", section)
}
