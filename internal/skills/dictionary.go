// Package skills provides the fixed dictionary of recognized skill and
// technology terms used for keyword matching.
package skills

import "strings"

// vocabulary is the fixed, lower-cased set of recognized terms. Terms are
// stored in the form the normalizer produces ("microservice", not
// "microservices") so dictionary lookups see the same shape as tokens.
var vocabulary = []string{
	"c#", "c++", ".net", "dotnet", "asp.net", "aspnet",
	"go", "golang", "java", "kotlin", "swift", "php", "ruby", "python",
	"javascript", "typescript", "react", "angular", "vue", "node.js",
	"html", "css", "django", "flask", "spring", "rails",
	"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
	"kafka", "rabbitmq", "graphql", "rest", "grpc", "microservice",
	"docker", "kubernetes", "terraform", "ansible", "linux",
	"aws", "azure", "gcp",
	"git", "jira", "scrum", "agile", "kanban",
	"nlp", "tensorflow", "pytorch", "ml.net", "spark", "hadoop",
}

// Dictionary is a fixed, case-insensitive set of recognized skill terms
type Dictionary struct {
	terms map[string]string // canonical (lower) -> display form
}

// NewDictionary creates the dictionary with the built-in vocabulary
func NewDictionary() *Dictionary {
	d := &Dictionary{terms: make(map[string]string, len(vocabulary))}
	for _, term := range vocabulary {
		d.terms[strings.ToLower(term)] = term
	}
	return d
}

// Contains reports whether the term is in the vocabulary (case-insensitive)
func (d *Dictionary) Contains(term string) bool {
	_, ok := d.terms[strings.ToLower(term)]
	return ok
}

// Match resolves a normalized token to its canonical dictionary form. The
// suffix stripper turns "kubernetes" into "kubernete", so a failed exact
// lookup retries with the trailing "s" restored.
func (d *Dictionary) Match(token string) (string, bool) {
	key := strings.ToLower(token)
	if canonical, ok := d.terms[key]; ok {
		return canonical, true
	}
	if canonical, ok := d.terms[key+"s"]; ok {
		return canonical, true
	}
	return "", false
}

// ExtractSkills returns the distinct dictionary terms present in the token
// sequence, canonicalized, preserving first-seen order. The result is a
// subset of the vocabulary with no case-insensitive duplicates.
func (d *Dictionary) ExtractSkills(tokens []string) []string {
	seen := make(map[string]struct{})
	var found []string
	for _, token := range tokens {
		canonical, ok := d.Match(token)
		if !ok {
			continue
		}
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		found = append(found, canonical)
	}
	return found
}
