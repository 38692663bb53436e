package core

import (
	"encoding/json"
)

func marshalListingValue(value string) string {
	if value == Undetermined {
		return ""
	}
	return value
}

func marshalRounds(rounds []RoundListing) [][]map[string]any {
	result := make([][]map[string]any, len(rounds))
	for i, round := range rounds {
		roundMatches := make([]map[string]any, len(round.Matches))
		for i, match := range round.Matches {
			roundMatches[i] = marshalMatch(match)
		}
		result[i] = roundMatches
	}
	return result
}

func marshalMatch(match MatchListing) map[string]any {
	result := map[string]any{
		"id":     match.ID,
		"slot1":  marshalListingValue(match.Player1),
		"slot2":  marshalListingValue(match.Player2),
		"winner": marshalListingValue(match.Winner),
	}
	return result
}

func marshalBracket(b *Bracket) map[string]any {
	result := map[string]any{
		"type":   "SingleElimination",
		"id":     b.id.String(),
		"leaves": b.LeafNames(),
		"rounds": marshalRounds(b.Rounds()),
	}

	if champion, ok := b.Champion(); ok {
		result["champion"] = champion
	}

	return result
}

func (b *Bracket) MarshalJSON() ([]byte, error) {
	anymap := marshalBracket(b)
	return json.Marshal(anymap)
}
