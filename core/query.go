package core

import (
	"errors"
	"fmt"
)

var (
	ErrPlayerNotFound    = errors.New("player not found")
	ErrSamePlayer        = errors.New("a player cannot meet themselves")
	ErrAsymmetricAbsence = errors.New("only one of the players is in the bracket")
)

// The match and round where the paths of two players
// would cross.
type Meeting struct {
	Match int
	Round int
}

// Returned by WouldMeet when there is no meeting
var NoMeeting = Meeting{Match: -1, Round: -1}

// Returns the leftmost leaf of the player or nil. Bye
// leaves are never found.
func (b *Bracket) findLeaf(player string) *Node {
	for _, l := range b.leaves {
		if !l.bye && l.value == player {
			return l
		}
	}
	return nil
}

// Returns the ids of the matches that the player would play
// on the way to winning the tournament, starting with the
// first round match and ending with the final.
//
// The path only depends on the bracket's structure, not on
// any results. When the name is in the bracket more than
// once the leftmost entry is used.
//
// Returns an empty path and ErrPlayerNotFound for names that
// are not in the bracket.
func (b *Bracket) PathToFinal(player string) ([]int, error) {
	leaf := b.findLeaf(player)
	if leaf == nil {
		return []int{}, fmt.Errorf("%w: %q", ErrPlayerNotFound, player)
	}

	chain, err := b.ancestorChain(leaf)
	if err != nil {
		return []int{}, err
	}

	path := make([]int, 0, len(chain)-1)
	for _, m := range chain[1:] {
		path = append(path, m.matchID)
	}

	return path, nil
}

// Returns the match and round in which the two players
// would meet if both of them kept winning.
//
// Like PathToFinal this is a structural query that ignores
// results. On failure NoMeeting is returned with one of
// ErrSamePlayer, ErrPlayerNotFound (both absent) or
// ErrAsymmetricAbsence (one absent, also matches
// ErrPlayerNotFound).
func (b *Bracket) WouldMeet(player1, player2 string) (Meeting, error) {
	if player1 == player2 {
		return NoMeeting, fmt.Errorf("%w: %q", ErrSamePlayer, player1)
	}

	leaf1 := b.findLeaf(player1)
	leaf2 := b.findLeaf(player2)

	switch {
	case leaf1 == nil && leaf2 == nil:
		return NoMeeting, fmt.Errorf("%w: %q and %q", ErrPlayerNotFound, player1, player2)
	case leaf1 == nil:
		return NoMeeting, fmt.Errorf("%w: %w: %q", ErrAsymmetricAbsence, ErrPlayerNotFound, player1)
	case leaf2 == nil:
		return NoMeeting, fmt.Errorf("%w: %w: %q", ErrAsymmetricAbsence, ErrPlayerNotFound, player2)
	}

	lca, err := b.LowestCommonAncestor(leaf1, leaf2)
	if err != nil {
		return NoMeeting, err
	}

	round, err := b.RoundOf(lca)
	if err != nil {
		return NoMeeting, err
	}

	return Meeting{Match: lca.matchID, Round: round}, nil
}
