package matcher

import (
	"fmt"
	"regexp"
	"strings"
)

// vocabulary is the fixed set of domain, technical, and soft-skill terms the
// extractor recognizes.
var vocabulary = []string{
	"javascript", "python", "java", "react", "node", "angular", "vue",
	"sql", "mongodb", "postgresql", "aws", "azure", "docker", "kubernetes",
	"git", "agile", "scrum", "html", "css", "bootstrap", "tailwind",
	"management", "leadership", "project", "team", "communication",
	"problem solving", "analytical", "data analysis", "machine learning",
	"artificial intelligence", "backend", "frontend", "fullstack",
	"devops", "ci/cd", "testing", "debugging", "optimization",
}

var wordPattern = regexp.MustCompile(`\b\w+\b`)

// ExtractKeywords scans text for vocabulary terms. A term is kept when any
// word token is a substring of it or it is a substring of any token. The
// bidirectional rule is intentionally loose so plurals and compounds still
// match ("javascripts", "reactjs"); it also admits false positives such as
// "java" matching "javascript", which is the documented behavior.
func ExtractKeywords(text string) []string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)

	var found []string
	for _, keyword := range vocabulary {
		for _, word := range words {
			if strings.Contains(word, keyword) || strings.Contains(keyword, word) {
				found = append(found, keyword)
				break
			}
		}
	}
	return found
}

// matchKeywords returns the JD keywords that the resume keyword set covers,
// using the same bidirectional substring rule as extraction.
func matchKeywords(jdKeywords, resumeKeywords []string) []string {
	var matched []string
	for _, keyword := range jdKeywords {
		kw := strings.ToLower(keyword)
		for _, resumeKeyword := range resumeKeywords {
			rk := strings.ToLower(resumeKeyword)
			if strings.Contains(rk, kw) || strings.Contains(kw, rk) {
				matched = append(matched, keyword)
				break
			}
		}
	}
	return matched
}

// missingKeywords returns JD keywords not present in the matched list.
func missingKeywords(jdKeywords, matched []string) []string {
	matchedSet := make(map[string]bool, len(matched))
	for _, kw := range matched {
		matchedSet[kw] = true
	}

	var missing []string
	for _, kw := range jdKeywords {
		if !matchedSet[kw] {
			missing = append(missing, kw)
		}
	}
	return missing
}

// scoreKeywords computes the keyword match score and feedback. A JD that
// yields no vocabulary hits scores the neutral default of 75.
func scoreKeywords(jdKeywords, matched []string) (int, string) {
	score := 75
	if len(jdKeywords) > 0 {
		score = len(matched) * 100 / len(jdKeywords)
	}

	var feedback string
	switch {
	case score >= 80:
		feedback = fmt.Sprintf("Excellent keyword coverage! %d/%d key terms found.", len(matched), len(jdKeywords))
	case score >= 60:
		missing := missingKeywords(jdKeywords, matched)
		if len(missing) > 3 {
			missing = missing[:3]
		}
		if len(missing) == 0 {
			feedback = "Good keyword match."
		} else {
			feedback = fmt.Sprintf("Good keyword match. Consider adding: %s", strings.Join(missing, ", "))
		}
	default:
		feedback = "Low keyword match. Focus on including more job-specific terms."
	}

	return score, feedback
}
