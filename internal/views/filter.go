package views

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FilterFiles returns the files matching query, keeping their order. Fuzzy
// matches win; a plain substring match is the fallback.
func FilterFiles(files []string, query string) []string {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return append([]string(nil), files...)
	}

	ranks := fuzzy.RankFindNormalizedFold(trimmed, files)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]string, 0, len(matches))
		for idx, f := range files {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, f)
			}
		}
		return filtered
	}

	lower := strings.ToLower(trimmed)
	filtered := make([]string, 0, len(files))
	for _, f := range files {
		if strings.Contains(strings.ToLower(f), lower) {
			filtered = append(filtered, f)
		}
	}
	return filtered
}
