package score

import (
	"errors"
	"math/rand"
	"slices"
)

var (
	ErrMinZero     = errors.New("minimum score is zero or less")
	ErrMaxBelowMin = errors.New("maximum score is less than the minimum score")

	ErrEmpty      = errors.New("empty score sequence")
	ErrOutOfRange = errors.New("score is outside of the score range")
)

// The inclusive range that match scores are drawn from.
type Range struct {
	Min, Max int
}

// The range of 1 to 10 points
var DefaultRange = Range{Min: 1, Max: 10}

// Creates a score range.
//
// Scores are points, so the minimum has to be at least 1.
// A score of 0 is only ever shown for the bye side of a
// match, which is settled without drawing.
func NewRange(min, max int) (Range, error) {
	r := Range{Min: min, Max: max}

	if min <= 0 {
		return r, ErrMinZero
	}
	if max < min {
		return r, ErrMaxBelowMin
	}

	return r, nil
}

func (r Range) Contains(points int) bool {
	return points >= r.Min && points <= r.Max
}

// A RandomSource draws uniformly distributed scores
// from a Range.
type RandomSource struct {
	rng    *rand.Rand
	scores Range
}

// Creates a RandomSource. Given the same seed the source
// always draws the same sequence of scores.
func NewRandomSource(scores Range, rngSeed int64) *RandomSource {
	return &RandomSource{
		rng:    rand.New(rand.NewSource(rngSeed)),
		scores: scores,
	}
}

func (s *RandomSource) Draw() int {
	return s.scores.Min + s.rng.Intn(s.scores.Max-s.scores.Min+1)
}

// A Sequence draws a fixed list of scores and starts over
// once the list is used up.
type Sequence struct {
	points []int
	next   int
}

func NewSequence(points []int, scores Range) (*Sequence, error) {
	if len(points) == 0 {
		return nil, ErrEmpty
	}
	for _, p := range points {
		if !scores.Contains(p) {
			return nil, ErrOutOfRange
		}
	}

	return &Sequence{points: slices.Clone(points)}, nil
}

func (s *Sequence) Draw() int {
	p := s.points[s.next]
	s.next = (s.next + 1) % len(s.points)
	return p
}

// Returns how many scores were drawn since the sequence
// last started over
func (s *Sequence) Position() int {
	return s.next
}
