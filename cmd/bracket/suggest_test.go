package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezBadminton/gobracket/core"
)

func leavesOf(t *testing.T, players ...string) []*core.Node {
	t.Helper()
	b, err := core.NewBracket(players)
	require.NoError(t, err)
	return b.Leaves()
}

func TestSuggestPlayers(t *testing.T) {
	leaves := leavesOf(t, "Anna", "Ben", "Chou", "Dara", "Ean", "Faye", "Gita", "Hout")

	assert.Equal(t, []string{"Anna"}, suggestPlayers("Ana", leaves))
	assert.Equal(t, []string{"Hout"}, suggestPlayers("Hot", leaves))
	assert.Equal(t, []string{"Gita"}, suggestPlayers("gta", leaves), "subsequences are not case insensitive")
	assert.Equal(t, []string{"Ben", "Ean"}, suggestPlayers("ben", leaves), "names within two edits were not suggested")

	assert.Len(t, suggestPlayers("a", leaves), maxSuggestions)
	assert.Empty(t, suggestPlayers("Zzzzzz", leaves))
}

func TestSuggestPlayersByes(t *testing.T) {
	padded := leavesOf(t, "Anna", "Chou", "Dara")
	require.True(t, padded[3].IsBye())
	assert.Empty(t, suggestPlayers("BYE", padded), "a padding bye was suggested")

	// A real player can carry the bye name
	named := leavesOf(t, "Anna", core.ByeName, "Chou")
	require.True(t, named[3].IsBye())
	assert.Equal(t, []string{core.ByeName}, suggestPlayers("bye", named))
}
