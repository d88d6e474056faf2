package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestMatchSkills(t *testing.T) {
	m := MatchSkills([]string{"go", "react", "docker"}, []string{"React", "C#"})

	assert.Equal(t, []string{"React"}, m.Matched)
	assert.Equal(t, []string{"C#"}, m.Missing)
	assert.Equal(t, 50.0, m.Percentage)
}

func TestMatchSkills_CaseInsensitive(t *testing.T) {
	m := MatchSkills([]string{"PYTHON"}, []string{"python"})

	assert.Equal(t, []string{"python"}, m.Matched)
	assert.Empty(t, m.Missing)
	assert.Equal(t, 100.0, m.Percentage)
}

func TestMatchSkills_EmptyJob(t *testing.T) {
	m := MatchSkills([]string{"go"}, nil)

	assert.Empty(t, m.Matched)
	assert.Empty(t, m.Missing)
	assert.Equal(t, 0.0, m.Percentage)
}

func TestMatchSkills_PartitionsJobSkills(t *testing.T) {
	job := []string{"go", "react", "kafka", "terraform"}
	m := MatchSkills([]string{"react", "terraform"}, job)

	assert.Len(t, m.Matched, 2)
	assert.Len(t, m.Missing, 2)
	assert.ElementsMatch(t, job, append(append([]string{}, m.Matched...), m.Missing...))
}

func TestScorability_FullMarks(t *testing.T) {
	raw := "EXPERIENCE EDUCATION SKILLS PROJECTS SUMMARY " +
		strings.Repeat("word ", 400)
	p := types.NewCandidateProfile("Jane Smith", "jane@x.com", raw, "en")
	p.Phone = "555-111-2222"
	p.LinkedIn = "https://www.linkedin.com/in/jane"

	assert.Equal(t, 100.0, Scorability(p, 2, 2))
}

func TestScorability_ShortResumeNoMatches(t *testing.T) {
	raw := "Jane Smith\njane@x.com\nEXPERIENCE\nthings\nEDUCATION\nschool"
	p := types.NewCandidateProfile("Jane Smith", "jane@x.com", raw, "en")
	p.Phone = "555-111-2222"

	// coverage 0/2, contact 15 (no LinkedIn), length 0 (far under the band),
	// headings 2 of 5 present
	assert.InDelta(t, 23.0, Scorability(p, 0, 2), 1e-9)
}

func TestScorability_NoJobSkillsFlatCredit(t *testing.T) {
	p := types.NewCandidateProfile("", "", "", "en")

	// flat 20 for the empty job, nothing else scores
	assert.Equal(t, 20.0, Scorability(p, 0, 0))
}

func TestScorability_PlaceholderNameEarnsNoCredit(t *testing.T) {
	p := types.NewCandidateProfile(extraction.NamePlaceholder, "", "", "en")
	base := Scorability(p, 0, 1)

	p2 := types.NewCandidateProfile("Jane Smith", "", "", "en")
	named := Scorability(p2, 0, 1)

	assert.Equal(t, base+5.0, named)
}

func TestLengthComponentBands(t *testing.T) {
	assert.Equal(t, 0.0, lengthComponent(0))
	assert.Equal(t, 0.0, lengthComponent(100))
	assert.Equal(t, 10.0, lengthComponent(101))
	assert.Equal(t, 10.0, lengthComponent(299))
	assert.Equal(t, 20.0, lengthComponent(300))
	assert.Equal(t, 20.0, lengthComponent(1000))
	assert.Equal(t, 10.0, lengthComponent(1001))
	assert.Equal(t, 10.0, lengthComponent(1499))
	assert.Equal(t, 0.0, lengthComponent(1500))
}

func TestCompatibility(t *testing.T) {
	assert.Equal(t, 50.0, Compatibility(0.5, 50))
	assert.Equal(t, 100.0, Compatibility(1.0, 100))
	assert.Equal(t, 0.0, Compatibility(0, 0))
}

func TestCompatibility_RoundsToTwoDecimals(t *testing.T) {
	// 0.333 * 60 = 19.98
	assert.InDelta(t, 19.98, Compatibility(0.333, 0), 1e-9)
}
