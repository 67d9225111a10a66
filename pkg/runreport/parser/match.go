package parser

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/ukaji3/runreport-go/pkg/runreport/models"
)

// Candidate is a vocabulary code with its similarity to the input.
type Candidate struct {
	Code  string
	Score float64
}

// MatchApplication resolves a filename suffix to an application label.
// The suffix is lowercased and compared with every known code; the best
// candidate scoring at least cutoff wins, otherwise ApplicationUnknown.
func MatchApplication(suffix string, cutoff float64) models.Application {
	best, ok := BestMatch(strings.ToLower(suffix), models.ApplicationCodes(), cutoff)
	if !ok {
		return models.ApplicationUnknown
	}
	app, ok := models.LookupApplication(best.Code)
	if !ok {
		return models.ApplicationUnknown
	}
	return app
}

// BestMatch returns the possibility most similar to word with a ratio of at
// least cutoff. Equal ratios resolve to the lexicographically greatest code,
// the order in which difflib's get_close_matches ranks (score, word) pairs.
func BestMatch(word string, possibilities []string, cutoff float64) (Candidate, bool) {
	var (
		best  Candidate
		found bool
	)

	m := difflib.NewMatcher(nil, splitChars(word))
	for _, p := range possibilities {
		m.SetSeq1(splitChars(p))
		// Cheap upper bounds first, as difflib does.
		if m.RealQuickRatio() < cutoff || m.QuickRatio() < cutoff {
			continue
		}
		score := m.Ratio()
		if score < cutoff {
			continue
		}
		if !found || score > best.Score || (score == best.Score && p > best.Code) {
			best = Candidate{Code: p, Score: score}
			found = true
		}
	}
	return best, found
}

// Similarity is the difflib ratio 2*M/T between two strings.
func Similarity(a, b string) float64 {
	return difflib.NewMatcher(splitChars(a), splitChars(b)).Ratio()
}

func splitChars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
