package nlp

import "strings"

// Stop-word sets per supported language. Unknown languages fall back to the
// English set.
var englishStopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "of": {}, "to": {},
	"in": {}, "on": {}, "for": {}, "with": {}, "at": {}, "from": {}, "by": {},
	"as": {}, "is": {}, "are": {}, "was": {}, "were": {},
}

var frenchStopWords = map[string]struct{}{
	"le": {}, "la": {}, "les": {}, "un": {}, "une": {}, "et": {}, "ou": {},
	"de": {}, "des": {}, "du": {}, "en": {}, "dans": {}, "pour": {},
	"avec": {}, "par": {}, "est": {}, "sont": {}, "étais": {},
}

// stopWordsFor selects the stop-word set for a BCP 47-ish language tag
func stopWordsFor(language string) map[string]struct{} {
	if strings.HasPrefix(strings.ToLower(language), "fr") {
		return frenchStopWords
	}
	return englishStopWords
}
