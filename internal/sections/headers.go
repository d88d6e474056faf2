package sections

// Bilingual (English/French) header vocabularies, most specific first. The
// segmenter tries synonyms in order, so "work experience" must come before
// the bare "experience".
var (
	ExperienceHeaders = []string{
		"work experience", "professional experience", "employment history",
		"experience",
		"expérience professionnelle", "expériences professionnelles", "expérience",
	}

	EducationHeaders = []string{
		"education", "academic background",
		"formation", "éducation", "études",
	}

	SkillsHeaders = []string{
		"technical skills", "skills",
		"compétences techniques", "compétences", "technologies",
	}

	ProjectsHeaders = []string{
		"personal projects", "projects",
		"projets personnels", "projets",
	}

	CertificationHeaders = []string{
		"certifications", "certificates", "licenses",
		"certificats",
	}

	LanguageHeaders = []string{
		"languages", "langues",
	}

	VolunteeringHeaders = []string{
		"volunteer experience", "volunteering", "volunteer",
		"bénévolat",
	}

	SummaryHeaders = []string{
		"professional summary", "summary", "profile", "objective", "about me",
		"à propos", "profil", "résumé", "objectif",
	}
)

// boundaryHeaders is the fixed list of known section headers used to find
// where a section ends. Summary headers are excluded: a summary usually sits
// at the top and its synonyms ("profile", "résumé") appear too often in prose
// to be safe end markers.
var boundaryHeaders = buildBoundaryHeaders()

func buildBoundaryHeaders() []string {
	var all []string
	for _, group := range [][]string{
		ExperienceHeaders, EducationHeaders, SkillsHeaders, ProjectsHeaders,
		CertificationHeaders, LanguageHeaders, VolunteeringHeaders,
	} {
		all = append(all, group...)
	}
	return all
}
