package types

import "strings"

// Skill categories used by the analyzer.
const (
	SkillCategoryAuto      = "auto"      // matched against the dictionary in resume text
	SkillCategoryRequired  = "required"  // matched against the dictionary in job text
	SkillCategoryExtracted = "extracted" // taken verbatim from a SKILLS section
)

// Skill represents a single skill or technology term
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Weight   int    `json:"weight"`
}

// NewSkill creates a skill with the default weight of 1
func NewSkill(name, category string) Skill {
	return Skill{Name: name, Category: category, Weight: 1}
}

// SkillSet is an ordered collection of skills deduplicated case-insensitively.
// The first-seen casing of a name is preserved as the display value; adding a
// skill whose canonical (lower-cased, trimmed) name already exists is a no-op.
type SkillSet struct {
	skills []Skill
	seen   map[string]struct{}
}

// NewSkillSet creates an empty skill set
func NewSkillSet() *SkillSet {
	return &SkillSet{seen: make(map[string]struct{})}
}

// canonicalSkillName returns the key used for deduplication
func canonicalSkillName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Add inserts a skill unless a case-insensitive duplicate exists.
// Returns true if the skill was added.
func (s *SkillSet) Add(skill Skill) bool {
	key := canonicalSkillName(skill.Name)
	if key == "" {
		return false
	}
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = struct{}{}
	s.skills = append(s.skills, skill)
	return true
}

// Contains reports whether a skill with the given name is present (case-insensitive)
func (s *SkillSet) Contains(name string) bool {
	_, ok := s.seen[canonicalSkillName(name)]
	return ok
}

// Names returns the skill names in insertion order
func (s *SkillSet) Names() []string {
	names := make([]string, 0, len(s.skills))
	for _, sk := range s.skills {
		names = append(names, sk.Name)
	}
	return names
}

// Skills returns a copy of the underlying skill slice in insertion order
func (s *SkillSet) Skills() []Skill {
	out := make([]Skill, len(s.skills))
	copy(out, s.skills)
	return out
}

// Len returns the number of distinct skills
func (s *SkillSet) Len() int {
	return len(s.skills)
}
