package core

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	ErrAlreadyDecided       = errors.New("match already decided")
	ErrParticipantsNotReady = errors.New("match participants are not determined yet")
	ErrRerollsExhausted     = errors.New("match is still tied after the maximum number of re-rolls")
)

// Number of tie re-rolls a Resolver allows per match
// when the settings do not specify it
const DefaultMaxRerolls = 1000

// A ScoreSource draws the score of one side of a match.
//
// Matches with a bye are settled without drawing, so a
// source is never asked for a bye's score.
type ScoreSource interface {
	Draw() int
}

// A ScoreFunc is a plain function used as a ScoreSource.
type ScoreFunc func() int

func (f ScoreFunc) Draw() int {
	return f()
}

type ResolverSettings struct {
	// Maximum number of times a tied match is re-rolled
	// before giving up. Values <= 0 use DefaultMaxRerolls.
	MaxRerolls int

	// Receives a record for every decided match and every
	// re-roll. Nil discards the records.
	Logger *slog.Logger
}

// The result of a decided match.
type Outcome struct {
	MatchID int

	Player1 string
	Player2 string
	Bye1    bool
	Bye2    bool

	// The scores are zero when the match was decided
	// by a bye and Scored is false
	Score1 int
	Score2 int
	Scored bool

	// How often the match was tied before the final draw
	Rerolls int

	Winner string
}

// A Resolver decides matches of a bracket one at a time
// with scores from its ScoreSource.
type Resolver struct {
	bracket    *Bracket
	source     ScoreSource
	maxRerolls int
	logger     *slog.Logger
}

func NewResolver(bracket *Bracket, source ScoreSource, settings ResolverSettings) *Resolver {
	maxRerolls := settings.MaxRerolls
	if maxRerolls <= 0 {
		maxRerolls = DefaultMaxRerolls
	}

	logger := settings.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Resolver{
		bracket:    bracket,
		source:     source,
		maxRerolls: maxRerolls,
		logger:     logger.With("bracket", bracket.ID().String()),
	}
}

// Decides the match with the given id and writes the
// winner into it.
//
// A bye loses against a real player without any scores being
// drawn. When both sides are byes the bye wins and moves on.
// Otherwise both sides draw a score and the higher score wins.
// A tie discards the scores and the whole resolution is
// attempted again.
//
// Errors when the match does not exist, was decided before,
// has an undetermined participant or stays tied for more
// than the allowed number of re-rolls. The match is left
// untouched on error.
func (r *Resolver) RecordResult(matchID int) (*Outcome, error) {
	match, err := r.bracket.Match(matchID)
	if err != nil {
		return nil, err
	}

	for rerolls := 0; rerolls <= r.maxRerolls; rerolls += 1 {
		outcome, winnerSide, err := r.attempt(match)
		if err != nil {
			return nil, err
		}

		if winnerSide == nil {
			r.logger.Debug(
				"match tied, re-rolling",
				"match", matchID,
				"score", outcome.Score1,
				"reroll", rerolls+1,
			)
			continue
		}

		match.setWinner(winnerSide)
		outcome.Rerolls = rerolls

		r.logger.Info(
			"match decided",
			"match", matchID,
			"player1", outcome.Player1,
			"player2", outcome.Player2,
			"score1", outcome.Score1,
			"score2", outcome.Score2,
			"winner", outcome.Winner,
		)

		return outcome, nil
	}

	r.logger.Warn("match could not be decided", "match", matchID, "rerolls", r.maxRerolls)

	return nil, fmt.Errorf("%w: match %d, %d re-rolls", ErrRerollsExhausted, matchID, r.maxRerolls)
}

// Makes one attempt at deciding the match. The returned
// winner side is nil when the drawn scores are tied.
func (r *Resolver) attempt(match *Node) (*Outcome, *Node, error) {
	if winner, ok := match.Winner(); ok {
		return nil, nil, fmt.Errorf("%w: match %d was won by %s", ErrAlreadyDecided, match.matchID, winner)
	}

	name1, ready1 := match.left.Participant()
	name2, ready2 := match.right.Participant()
	if !ready1 || !ready2 {
		return nil, nil, fmt.Errorf("%w: match %d", ErrParticipantsNotReady, match.matchID)
	}

	bye1 := match.left.IsBye()
	bye2 := match.right.IsBye()

	outcome := &Outcome{
		MatchID: match.matchID,
		Player1: name1,
		Player2: name2,
		Bye1:    bye1,
		Bye2:    bye2,
	}

	// Two byes send the first bye up
	switch {
	case bye2:
		outcome.Winner = name1
		return outcome, match.left, nil
	case bye1:
		outcome.Winner = name2
		return outcome, match.right, nil
	}

	outcome.Scored = true
	outcome.Score1 = r.source.Draw()
	outcome.Score2 = r.source.Draw()

	switch {
	case outcome.Score1 > outcome.Score2:
		outcome.Winner = name1
		return outcome, match.left, nil
	case outcome.Score2 > outcome.Score1:
		outcome.Winner = name2
		return outcome, match.right, nil
	}

	return outcome, nil, nil
}

// Decides all undecided matches of the round from left
// to right and returns their outcomes.
//
// Stops at the first match that fails and returns the
// outcomes up to that point together with the error.
func (r *Resolver) ResolveRound(round int) ([]*Outcome, error) {
	listing, err := r.bracket.Round(round)
	if err != nil {
		return nil, err
	}

	outcomes := make([]*Outcome, 0, len(listing.Matches))
	for _, m := range listing.Matches {
		match, err := r.bracket.Match(m.ID)
		if err != nil {
			return outcomes, err
		}
		if match.decided {
			continue
		}

		outcome, err := r.RecordResult(m.ID)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

// Decides every match of the bracket round by round.
func (r *Resolver) ResolveAll() ([]*Outcome, error) {
	outcomes := make([]*Outcome, 0, r.bracket.NumMatches())
	for round := 1; round <= r.bracket.NumRounds(); round += 1 {
		roundOutcomes, err := r.ResolveRound(round)
		outcomes = append(outcomes, roundOutcomes...)
		if err != nil {
			return outcomes, err
		}
	}
	return outcomes, nil
}
