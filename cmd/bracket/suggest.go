package main

import (
	"slices"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/ezBadminton/gobracket/core"
)

const maxSuggestions = 3

// Returns up to maxSuggestions player names that look like
// the unknown name. Subsequence matches (e.g. "Ana" for
// "Anna") rank first, then names within an edit distance of 2.
func suggestPlayers(name string, leaves []*core.Node) []string {
	players := make([]string, 0, len(leaves))
	for _, l := range leaves {
		if l.IsBye() {
			continue
		}
		players = append(players, l.String())
	}

	ranks := fuzzy.RankFindFold(name, players)
	sort.Sort(ranks)

	suggestions := make([]string, 0, maxSuggestions)
	for _, r := range ranks {
		if len(suggestions) == maxSuggestions {
			return suggestions
		}
		if !slices.Contains(suggestions, r.Target) {
			suggestions = append(suggestions, r.Target)
		}
	}

	for _, p := range players {
		if len(suggestions) == maxSuggestions {
			break
		}
		if slices.Contains(suggestions, p) {
			continue
		}
		if fuzzy.LevenshteinDistance(name, p) <= 2 {
			suggestions = append(suggestions, p)
		}
	}

	return suggestions
}
