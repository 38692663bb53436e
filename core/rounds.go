package core

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

var (
	ErrUnknownRound = errors.New("unknown round")
)

// A flat view of one match for presenting the bracket.
//
// Participants that are not determined yet and the winner
// of an undecided match are Undetermined. Bye1 and Bye2 mark
// the sides that are byes.
type MatchListing struct {
	ID      int
	Player1 string
	Player2 string
	Winner  string
	Bye1    bool
	Bye2    bool
}

// A RoundListing holds the matches of one round from
// left to right.
type RoundListing struct {
	Number  int
	Matches []MatchListing
}

func listMatch(match *Node) MatchListing {
	player1, _ := match.left.Participant()
	player2, _ := match.right.Participant()
	winner, ok := match.Winner()
	if !ok {
		winner = Undetermined
	}

	return MatchListing{
		ID:      match.matchID,
		Player1: player1,
		Player2: player2,
		Winner:  winner,
		Bye1:    match.left.IsBye(),
		Bye2:    match.right.IsBye(),
	}
}

// Returns every round from the first to the final with its
// matches in the current state of the bracket.
//
// A single player bracket has no rounds.
func (b *Bracket) Rounds() []RoundListing {
	numRounds := b.NumRounds()
	rounds := make([]RoundListing, numRounds)
	for i := range rounds {
		rounds[i].Number = i + 1
	}

	for node, depth := range b.graph.BreadthSearchIter(b.root) {
		if node.IsLeaf() {
			continue
		}
		round := numRounds - depth
		rounds[round-1].Matches = append(rounds[round-1].Matches, listMatch(node))
	}

	// Match ids grow from left to right within a round
	for _, r := range rounds {
		slices.SortFunc(r.Matches, func(a, b MatchListing) int {
			return cmp.Compare(a.ID, b.ID)
		})
	}

	return rounds
}

// Returns the listing of a single round
func (b *Bracket) Round(number int) (RoundListing, error) {
	if number < 1 || number > b.NumRounds() {
		return RoundListing{}, fmt.Errorf("%w: %d", ErrUnknownRound, number)
	}
	return b.Rounds()[number-1], nil
}
