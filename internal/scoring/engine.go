// Package scoring computes the numeric outcomes of an analysis run: the
// skill-match breakdown, the 0-100 scorability ("ATS") score, and the headline
// compatibility score. Pure arithmetic over already-extracted inputs, no I/O.
package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/nlp"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Scorability point weights
const (
	skillCoveragePoints  = 40.0
	noJobSkillsFlat      = 20.0
	contactFieldPoints   = 5.0
	lengthFullPoints     = 20.0
	lengthPartialPoints  = 10.0
	headingPoints        = 20.0
	similarityBlendRatio = 0.6
	skillBlendRatio      = 0.4
)

// Word-count bands for the length component
const (
	lengthFullMin    = 300
	lengthFullMax    = 1000
	lengthPartialMin = 100
	lengthPartialMax = 1500
)

// Headings whose literal presence in the raw text earns structure points
var structureHeadings = []string{
	"experience", "education", "skills", "projects", "summary",
}

// SkillMatch is the outcome of intersecting job skills with resume skills.
// Matched and Missing preserve the job-side encounter order and partition the
// job skill set.
type SkillMatch struct {
	Matched    []string
	Missing    []string
	Percentage float64
}

// MatchSkills intersects the job's required skills with the resume's skills,
// case-insensitively. Percentage is 0 when the job names no skills.
func MatchSkills(resumeSkills, jobSkills []string) SkillMatch {
	have := make(map[string]struct{}, len(resumeSkills))
	for _, s := range resumeSkills {
		have[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}

	var m SkillMatch
	for _, s := range jobSkills {
		if _, ok := have[strings.ToLower(strings.TrimSpace(s))]; ok {
			m.Matched = append(m.Matched, s)
		} else {
			m.Missing = append(m.Missing, s)
		}
	}
	if len(jobSkills) > 0 {
		m.Percentage = float64(len(m.Matched)) / float64(len(jobSkills)) * 100
	}
	return m
}

// Scorability estimates how well a resume survives automated screening:
// skill coverage (40), contact completeness (20), content length (20) and
// section-heading presence (20), clamped to [0,100].
func Scorability(p *types.CandidateProfile, matchedCount, jobSkillCount int) float64 {
	score := coverageComponent(matchedCount, jobSkillCount)
	score += contactComponent(p)
	score += lengthComponent(nlp.WordCount(p.RawText))
	score += headingComponent(p.RawText)

	return math.Min(100, math.Max(0, score))
}

func coverageComponent(matchedCount, jobSkillCount int) float64 {
	if jobSkillCount == 0 {
		return noJobSkillsFlat
	}
	return float64(matchedCount) / float64(jobSkillCount) * skillCoveragePoints
}

func contactComponent(p *types.CandidateProfile) float64 {
	score := 0.0
	if p.Email != "" {
		score += contactFieldPoints
	}
	if p.Name != "" && p.Name != extraction.NamePlaceholder {
		score += contactFieldPoints
	}
	if p.Phone != "" {
		score += contactFieldPoints
	}
	if p.LinkedIn != "" {
		score += contactFieldPoints
	}
	return score
}

func lengthComponent(wordCount int) float64 {
	switch {
	case wordCount >= lengthFullMin && wordCount <= lengthFullMax:
		return lengthFullPoints
	case wordCount > lengthPartialMin && wordCount < lengthPartialMax:
		return lengthPartialPoints
	default:
		return 0
	}
}

func headingComponent(rawText string) float64 {
	lower := strings.ToLower(rawText)
	found := 0
	for _, h := range structureHeadings {
		if strings.Contains(lower, h) {
			found++
		}
	}
	return float64(found) / float64(len(structureHeadings)) * headingPoints
}

// Compatibility blends the similarity port's output with skill coverage into
// the headline 0-100 score, rounded to two decimals.
func Compatibility(similarity, skillMatchPercentage float64) float64 {
	raw := similarity*100*similarityBlendRatio + skillMatchPercentage*skillBlendRatio
	return math.Round(raw*100) / 100
}
