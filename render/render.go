// Package render prints a bracket as a round by round listing.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ezBadminton/gobracket/core"
)

// The parts of a bracket that the listing is made from
type Lister interface {
	Rounds() []core.RoundListing
	Leaves() []*core.Node
	Champion() (string, bool)
}

var _ Lister = &core.Bracket{}

type Options struct {
	// Disables all terminal styling
	Plain bool
}

type styles struct {
	title, round, winner, pending, bye lipgloss.Style
}

func newStyles(plain bool) styles {
	if plain {
		s := lipgloss.NewStyle()
		return styles{s, s, s, s, s}
	}
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		round:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("240")),
		winner:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		pending: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		bye:     lipgloss.NewStyle().Faint(true),
	}
}

func (s styles) participantStyle(name string, bye bool) (lipgloss.Style, bool) {
	switch {
	case bye:
		return s.bye, true
	case name == core.Undetermined:
		return s.pending, true
	}
	return lipgloss.Style{}, false
}

func (s styles) participant(name string, bye bool) string {
	if style, ok := s.participantStyle(name, bye); ok {
		return style.Render(name)
	}
	return name
}

func (s styles) result(winner string) string {
	if winner == core.Undetermined {
		return s.pending.Render(winner)
	}
	return s.winner.Render(winner)
}

// Writes the bracket to w: a header, every round with its
// matches from left to right and the leaves in entry order.
func Render(w io.Writer, bracket Lister, opts Options) error {
	st := newStyles(opts.Plain)

	var sb strings.Builder
	sb.WriteString(st.title.Render("=== Tournament Bracket ==="))
	sb.WriteString("\n")

	rounds := bracket.Rounds()
	if len(rounds) == 0 {
		champion, _ := bracket.Champion()
		fmt.Fprintf(&sb, "\nNo matches, %s wins by default\n", st.winner.Render(champion))
	}

	for _, round := range rounds {
		sb.WriteString("\n")
		sb.WriteString(st.round.Render(fmt.Sprintf("Round %d:", round.Number)))
		sb.WriteString("\n")
		for _, m := range round.Matches {
			fmt.Fprintf(
				&sb,
				"  Match %d: %s vs %s (Winner: %s)\n",
				m.ID,
				st.participant(m.Player1, m.Bye1),
				st.participant(m.Player2, m.Bye2),
				st.result(m.Winner),
			)
		}
	}

	leaves := bracket.Leaves()
	styled := make([]string, len(leaves))
	for i, l := range leaves {
		styled[i] = st.participant(l.String(), l.IsBye())
	}
	sb.WriteString("\nLeaves (L-to-R): ")
	sb.WriteString(strings.Join(styled, " "))
	sb.WriteString("\n")
	sb.WriteString(st.title.Render("=========================="))
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// Writes one line per decided match outcome
func RenderOutcomes(w io.Writer, outcomes []*core.Outcome, opts Options) error {
	st := newStyles(opts.Plain)

	var sb strings.Builder
	for _, o := range outcomes {
		if !o.Scored {
			fmt.Fprintf(&sb, "Match %d: %s vs %s -> Winner: %s (bye)\n",
				o.MatchID, st.participant(o.Player1, o.Bye1), st.participant(o.Player2, o.Bye2), st.result(o.Winner))
			continue
		}
		fmt.Fprintf(&sb, "Match %d: %s (%d) vs %s (%d) -> Winner: %s",
			o.MatchID, o.Player1, o.Score1, o.Player2, o.Score2, st.result(o.Winner))
		if o.Rerolls > 0 {
			fmt.Fprintf(&sb, " after %d re-rolls", o.Rerolls)
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
