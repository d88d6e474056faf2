// Package analyzer composes the engine: normalize, extract skills, segment
// and extract entities, score, suggest, and assemble the immutable result.
package analyzer

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/mlmodel"
	"github.com/jonathan/resume-analyzer/internal/nlp"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/suggest"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Request carries the caller-supplied inputs of one analysis run. Candidate
// name and email are optional seeds; when empty they are extracted from the
// resume text.
type Request struct {
	CandidateName  string
	CandidateEmail string
	JobTitle       string
	JobText        string
	ResumeText     string
	Language       string
}

// Analyzer runs one (resume, job) pair end to end. Safe for concurrent use:
// every run owns its own profile and result.
type Analyzer struct {
	dict   *skills.Dictionary
	scorer mlmodel.Scorer
}

// New creates an analyzer around a skill dictionary and a similarity scorer
func New(dict *skills.Dictionary, scorer mlmodel.Scorer) *Analyzer {
	return &Analyzer{dict: dict, scorer: scorer}
}

// Analyze runs the full pipeline and returns the assembled result. The resume
// and job branches are independent and run concurrently.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*types.AnalysisResult, error) {
	profile := types.NewCandidateProfile(req.CandidateName, req.CandidateEmail, req.ResumeText, req.Language)
	job := types.NewJobDescription(req.JobTitle, req.JobText, req.Language)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.buildProfile(profile)
		return gctx.Err()
	})
	g.Go(func() error {
		a.buildJob(job)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analysis cancelled: %w", err)
	}

	similarity, label, err := a.scorer.ScoreAndPredict(ctx, req.ResumeText, req.JobText)
	if err != nil {
		return nil, fmt.Errorf("similarity scoring: %w", err)
	}

	match := scoring.MatchSkills(profile.Skills.Names(), job.RequiredSkills.Names())
	ats := scoring.Scorability(profile, len(match.Matched), job.RequiredSkills.Len())

	return &types.AnalysisResult{
		ResumeID: profile.ID,
		JobID:    job.ID,

		CompatibilityScore:   scoring.Compatibility(similarity, match.Percentage),
		SkillMatchPercentage: match.Percentage,
		ATSScore:             ats,
		PredictedLevel:       types.LevelFromLabel(label),

		ExtractedName:     profile.Name,
		ExtractedEmail:    profile.Email,
		ExtractedPhone:    profile.Phone,
		ExtractedJobTitle: profile.JobTitle,
		ExtractedCity:     profile.City,
		ExtractedLinkedIn: profile.LinkedIn,
		ExtractedWebsite:  profile.Website,
		ExtractedSummary:  profile.Summary,

		WorkExperiences: profile.WorkExperiences,
		Education:       profile.Education,
		Volunteering:    profile.Volunteering,
		Languages:       profile.Languages,
		Certifications:  profile.Certifications,
		Projects:        profile.Projects,

		ExtractedSkills:  skillNamesByCategory(profile.Skills, types.SkillCategoryAuto),
		AdditionalSkills: skillNamesByCategory(profile.Skills, types.SkillCategoryExtracted),
		MatchedSkills:    match.Matched,
		MissingSkills:    match.Missing,

		Suggestions: suggest.Generate(match.Missing, ats),
	}, nil
}

// buildProfile fills the profile from its raw text: dictionary skills from the
// normalized token stream, declared skills from the SKILLS section, contact
// fields, and the structured record lists.
func (a *Analyzer) buildProfile(p *types.CandidateProfile) {
	tokens := nlp.Normalize(p.RawText, p.Language)
	for _, name := range a.dict.ExtractSkills(tokens) {
		p.AddSkill(types.NewSkill(name, types.SkillCategoryAuto))
	}
	for _, name := range extraction.ExtractAdditionalSkills(p.RawText) {
		p.AddSkill(types.NewSkill(name, types.SkillCategoryExtracted))
	}

	extraction.ExtractContactProfile(p)

	p.WorkExperiences = extraction.ExtractWorkExperience(p.RawText)
	p.Education = extraction.ExtractEducation(p.RawText)
	p.Volunteering = extraction.ExtractVolunteering(p.RawText)
	p.Languages = extraction.ExtractLanguages(p.RawText)
	p.Certifications = extraction.ExtractCertifications(p.RawText)
	p.Projects = extraction.ExtractProjects(p.RawText)
}

// buildJob derives the job's required skill set from its description text
func (a *Analyzer) buildJob(j *types.JobDescription) {
	tokens := nlp.Normalize(j.DescriptionText, j.Language)
	for _, name := range a.dict.ExtractSkills(tokens) {
		j.AddRequiredSkill(types.NewSkill(name, types.SkillCategoryRequired))
	}
}

// skillNamesByCategory returns the names of skills in one category, in
// insertion order
func skillNamesByCategory(set *types.SkillSet, category string) []string {
	var names []string
	for _, s := range set.Skills() {
		if s.Category == category {
			names = append(names, s.Name)
		}
	}
	return names
}
