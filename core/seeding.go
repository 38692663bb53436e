package core

import (
	"errors"
	"math/rand"
	"slices"
)

var (
	ErrUnknownSeedingMode = errors.New("unknown seeding mode")
)

// Decides how the entry list is arranged before the
// bracket is built. The bracket itself never reorders
// its entries.
type SeedingMode int

const (
	// Keep the given order
	SeedSingle SeedingMode = iota
	// Shuffle all entries
	SeedRandom
	// Keep the first two entries and shuffle the rest
	// within tiers of growing size (2-4, 4-8, 8-16, ...)
	SeedTiered
)

func ParseSeedingMode(name string) (SeedingMode, error) {
	switch name {
	case "", "single":
		return SeedSingle, nil
	case "random":
		return SeedRandom, nil
	case "tiered":
		return SeedTiered, nil
	}
	return SeedSingle, ErrUnknownSeedingMode
}

func (m SeedingMode) String() string {
	switch m {
	case SeedRandom:
		return "random"
	case SeedTiered:
		return "tiered"
	default:
		return "single"
	}
}

// Returns a copy of the players arranged according to the
// seeding mode. The same seed always gives the same order.
func SeedPlayers(players []string, mode SeedingMode, rngSeed int64) []string {
	seeded := slices.Clone(players)
	SeededShuffle(seeded, mode, rngSeed)
	return seeded
}

func SeededShuffle[S ~[]E, E any](slice S, seedingMode SeedingMode, rngSeed int64) {
	if seedingMode == SeedSingle {
		return
	}

	rng := rand.New(rand.NewSource(rngSeed))
	switch seedingMode {
	case SeedRandom:
		shuffle(slice, rng)
	case SeedTiered:
		tieredShuffle(slice, rng)
	}
}

func tieredShuffle[S ~[]E, E any](slice S, rng *rand.Rand) {
	for start := 2; start < len(slice); start *= 2 {
		end := min(len(slice), 2*start)
		shuffle(slice[start:end], rng)
	}
}

func shuffle[S ~[]E, E any](slice S, rng *rand.Rand) {
	rng.Shuffle(
		len(slice),
		func(i, j int) { slice[i], slice[j] = slice[j], slice[i] },
	)
}
