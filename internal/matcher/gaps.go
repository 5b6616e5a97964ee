package matcher

import (
	"sort"
	"strings"

	"github.com/jobsync/jobsync/internal/types"
)

// Skill levels used for gap construction. A matched keyword is credited at
// the required level, so its gap is zero.
const (
	requiredSkillLevel = 80
	matchedSkillLevel  = 80
)

// buildSkillGaps derives one gap entry per unique JD keyword. Sorting is
// stable so ties keep their original extraction order.
func buildSkillGaps(jdKeywords, matched []string) []types.SkillGap {
	matchedSet := make(map[string]bool, len(matched))
	for _, kw := range matched {
		matchedSet[normalizeKeyword(kw)] = true
	}

	seen := make(map[string]bool, len(jdKeywords))
	gaps := make([]types.SkillGap, 0, len(jdKeywords))
	for _, keyword := range jdKeywords {
		trimmed := strings.TrimSpace(keyword)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		seen[trimmed] = true

		normalized := normalizeKeyword(trimmed)
		gap := types.SkillGap{
			Name:     titleCase(normalized),
			Current:  0,
			Required: requiredSkillLevel,
			Gap:      requiredSkillLevel,
		}
		if matchedSet[normalized] {
			gap.Current = matchedSkillLevel
			gap.Gap = 0
		}
		gaps = append(gaps, gap)
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Gap > gaps[j].Gap
	})
	return gaps
}

// normalizeKeyword collapses runs of whitespace and lower-cases the keyword.
func normalizeKeyword(keyword string) string {
	return strings.ToLower(strings.Join(strings.Fields(keyword), " "))
}

// titleCase upper-cases the first letter of each word for display.
func titleCase(keyword string) string {
	words := strings.Split(keyword, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
