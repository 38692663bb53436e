// Runs a demo of a single elimination bracket: builds it from a
// player list, decides it round by round with random scores and
// answers would-meet and path-to-final queries.
//
// Usage: go run ./cmd/bracket -players="Anna,Ben,Chou" -meet="Anna,Chou" -path=Ben
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ezBadminton/gobracket/config"
	"github.com/ezBadminton/gobracket/core"
	"github.com/ezBadminton/gobracket/render"
	"github.com/ezBadminton/gobracket/score"
)

// A flag that can be given multiple times
type listFlag []string

func (l *listFlag) String() string {
	return strings.Join(*l, " ")
}

func (l *listFlag) Set(v string) error {
	*l = append(*l, v)
	return nil
}

type options struct {
	players string
	seeding string
	seed    int64
	scores  string
	meet    listFlag
	path    listFlag
	json    bool
	plain   bool
}

func main() {
	if err := config.LoadDotEnv(); err != nil {
		slog.Error("failed to load .env file", "error", err)
		os.Exit(1)
	}

	conf, err := config.NewConfigFromEnv()
	if err != nil {
		slog.Error("failed to load env", "error", err)
		os.Exit(1)
	}

	var opts options
	flag.StringVar(&opts.players, "players", "", "Comma separated player names, overrides BRACKET_PLAYERS")
	flag.StringVar(&opts.seeding, "seeding", "", "Entry arrangement before the bracket is built: single, random or tiered")
	flag.Int64Var(&opts.seed, "seed", conf.Seed, "RNG seed for seeding and scores")
	flag.StringVar(&opts.scores, "scores", "", "Comma separated scores to draw instead of random ones, e.g. 7,3,5,5,9,2")
	flag.Var(&opts.meet, "meet", "Two comma separated players for a would-meet query (repeatable)")
	flag.Var(&opts.path, "path", "Player for a path-to-final query (repeatable)")
	flag.BoolVar(&opts.json, "json", false, "Print the decided bracket as JSON at the end")
	flag.BoolVar(&opts.plain, "plain", false, "Disable terminal styling")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: conf.LogLevel}))
	slog.SetDefault(logger)

	if err := applyFlags(conf, &opts); err != nil {
		slog.Error("invalid flags", "error", err)
		os.Exit(1)
	}

	if err := run(os.Stdout, conf, &opts, logger); err != nil {
		slog.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func applyFlags(conf *config.Config, opts *options) error {
	if opts.players != "" {
		players, err := config.ParseList(opts.players)
		if err != nil {
			return fmt.Errorf("players: %w", err)
		}
		conf.Players = players
	}

	if opts.seeding != "" {
		mode, err := core.ParseSeedingMode(opts.seeding)
		if err != nil {
			return fmt.Errorf("seeding: %w: %q", err, opts.seeding)
		}
		conf.Seeding = mode
	}

	conf.Seed = opts.seed

	if len(opts.meet) == 0 {
		opts.meet = listFlag{"Chou,Hout", "Anna,Dara"}
	}
	if len(opts.path) == 0 {
		opts.path = listFlag{"Anna", "Faye"}
	}

	return nil
}

func newScoreSource(conf *config.Config, opts *options) (core.ScoreSource, error) {
	if opts.scores == "" {
		return score.NewRandomSource(conf.Scores, conf.Seed), nil
	}

	points, err := config.ParseScores(opts.scores)
	if err != nil {
		return nil, fmt.Errorf("scores: %w", err)
	}

	sequence, err := score.NewSequence(points, conf.Scores)
	if err != nil {
		return nil, fmt.Errorf("scores: %w", err)
	}
	return sequence, nil
}

func run(out io.Writer, conf *config.Config, opts *options, logger *slog.Logger) error {
	renderOpts := render.Options{Plain: opts.plain}

	players := core.SeedPlayers(conf.Players, conf.Seeding, conf.Seed)
	bracket, err := core.NewBracket(players)
	if err != nil {
		return err
	}
	logger.Info(
		"bracket built",
		"bracket", bracket.ID().String(),
		"players", len(players),
		"leaves", bracket.LeafCount(),
		"matches", bracket.NumMatches(),
		"seeding", conf.Seeding.String(),
	)

	source, err := newScoreSource(conf, opts)
	if err != nil {
		return err
	}
	resolver := core.NewResolver(bracket, source, core.ResolverSettings{
		MaxRerolls: conf.MaxRerolls,
		Logger:     logger,
	})

	fmt.Fprintf(out, "Teams before Round 1: %s\n\n", strings.Join(players, " "))
	fmt.Fprintln(out, "Initial Bracket:")
	if err := render.Render(out, bracket, renderOpts); err != nil {
		return err
	}

	for round := 1; round <= bracket.NumRounds(); round += 1 {
		fmt.Fprintf(out, "\n--- Simulating %s ---\n", roundName(round, bracket.NumRounds()))
		outcomes, err := resolver.ResolveRound(round)
		if rerr := render.RenderOutcomes(out, outcomes, renderOpts); rerr != nil {
			return rerr
		}
		if err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}

		fmt.Fprintf(out, "\nAfter %s:\n", roundName(round, bracket.NumRounds()))
		if err := render.Render(out, bracket, renderOpts); err != nil {
			return err
		}
	}

	if champion, ok := bracket.Champion(); ok {
		fmt.Fprintf(out, "\nChampion: %s\n", champion)
	}

	fmt.Fprintln(out, "\n--- Would-Meet Queries ---")
	for _, q := range opts.meet {
		wouldMeetQuery(out, bracket, q)
	}

	fmt.Fprintln(out, "\n--- Path-to-Final Queries (Theoretical) ---")
	for _, p := range opts.path {
		pathQuery(out, bracket, p)
	}

	if opts.json {
		data, err := bracket.MarshalJSON()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%s\n", data)
	}

	return nil
}

func roundName(round, numRounds int) string {
	switch numRounds - round {
	case 0:
		return "Final"
	case 1:
		return fmt.Sprintf("Round %d (semis)", round)
	}
	return fmt.Sprintf("Round %d", round)
}

func wouldMeetQuery(out io.Writer, bracket *core.Bracket, query string) {
	players, err := config.ParseList(query)
	if err != nil || len(players) != 2 {
		fmt.Fprintf(out, "%q: expected two comma separated players\n", query)
		return
	}

	meeting, err := bracket.WouldMeet(players[0], players[1])
	if err != nil {
		fmt.Fprintf(out, "%s vs %s: no meeting (%v)\n", players[0], players[1], err)
		if errors.Is(err, core.ErrPlayerNotFound) {
			for _, p := range players {
				printSuggestions(out, bracket, p)
			}
		}
		return
	}
	fmt.Fprintf(out, "%s vs %s: Match %d, Round %d\n", players[0], players[1], meeting.Match, meeting.Round)
}

func pathQuery(out io.Writer, bracket *core.Bracket, player string) {
	path, err := bracket.PathToFinal(player)
	if err != nil {
		fmt.Fprintf(out, "%s's path: none (%v)\n", player, err)
		printSuggestions(out, bracket, player)
		return
	}

	ids := make([]string, len(path))
	for i, id := range path {
		ids[i] = fmt.Sprint(id)
	}
	fmt.Fprintf(out, "%s's path: %s\n", player, strings.Join(ids, " "))
}

func printSuggestions(out io.Writer, bracket *core.Bracket, player string) {
	if _, err := bracket.PathToFinal(player); err == nil {
		return
	}
	suggestions := suggestPlayers(player, bracket.Leaves())
	if len(suggestions) > 0 {
		fmt.Fprintf(out, "  did you mean %s?\n", strings.Join(suggestions, ", "))
	}
}
