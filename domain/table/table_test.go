package table

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/showdown/domain/deck"
	"github.com/luca-patrignani/showdown/domain/poker"
)

func newTable(t *testing.T, names ...string) (*Table, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tbl, err := New(names, WithLogger(logger), WithDeck(deck.New(deck.WithSeed([]byte(t.Name())))))
	require.NoError(t, err)
	return tbl, &buf
}

func playHand(t *testing.T, tbl *Table) {
	t.Helper()
	require.NoError(t, tbl.DealHoleCards())
	require.NoError(t, tbl.DealFlop())
	require.NoError(t, tbl.DealTurn())
	require.NoError(t, tbl.DealRiver())
}

func TestNewValidatesPlayers(t *testing.T) {
	_, err := New([]string{"Alice"})
	require.ErrorIs(t, err, ErrTooFewPlayers)

	names := make([]string, MaxPlayers+1)
	for i := range names {
		names[i] = string(rune('A' + i))
	}
	_, err = New(names)
	require.ErrorIs(t, err, ErrTooManyPlayers)

	_, err = New(names[:MaxPlayers])
	require.NoError(t, err)

	_, err = New([]string{"Alice", "Alice"})
	require.ErrorIs(t, err, ErrDuplicatePlayer)
}

func TestFullHandDealsUniqueCards(t *testing.T) {
	tbl, _ := newTable(t, "Alice", "Bob", "Charlie")
	playHand(t, tbl)

	require.Len(t, tbl.Board, 5)
	seen := map[poker.Card]bool{}
	for _, c := range tbl.Board {
		seen[c] = true
	}
	for _, p := range tbl.Players {
		require.Len(t, p.Hole, 2)
		for _, c := range p.Hole {
			seen[c] = true
		}
	}
	require.Len(t, seen, 11)
	// 3 burns, 5 board cards, 6 hole cards
	require.Equal(t, poker.DeckSize-14, tbl.deck.Len())
}

func TestStageOrderIsEnforced(t *testing.T) {
	tbl, _ := newTable(t, "Alice", "Bob")
	require.ErrorIs(t, tbl.DealFlop(), ErrWrongStage)
	_, err := tbl.Showdown()
	require.ErrorIs(t, err, ErrWrongStage)

	require.NoError(t, tbl.DealHoleCards())
	require.ErrorIs(t, tbl.DealHoleCards(), ErrWrongStage)
	require.ErrorIs(t, tbl.DealRiver(), ErrWrongStage)
	require.NoError(t, tbl.DealFlop())
	require.NoError(t, tbl.DealTurn())
	_, err = tbl.Showdown()
	require.ErrorIs(t, err, ErrWrongStage)
}

func TestShowdownReportsWinners(t *testing.T) {
	tbl, logs := newTable(t, "Alice", "Bob", "Charlie")
	playHand(t, tbl)

	res, err := tbl.Showdown()
	require.NoError(t, err)
	require.Len(t, res.Standings, 3)
	require.NotEmpty(t, res.Winners)
	require.Equal(t, StageFinished, tbl.Stage)

	ranks := make([]poker.HandRank, len(res.Standings))
	for i, s := range res.Standings {
		ranks[i] = s.Rank
		want, _, err := poker.Best(append(append([]poker.Card{}, s.Hole...), tbl.Board...))
		require.NoError(t, err)
		require.Equal(t, want, s.Rank)
	}
	var want []string
	for _, i := range poker.Winners(ranks) {
		want = append(want, res.Standings[i].Name)
	}
	require.Equal(t, want, res.Winners)
	require.Contains(t, logs.String(), "showdown")
}

func TestFoldedPlayersAreExcluded(t *testing.T) {
	tbl, _ := newTable(t, "Alice", "Bob", "Charlie")
	require.NoError(t, tbl.DealHoleCards())
	require.NoError(t, tbl.Fold("Bob"))
	require.ErrorIs(t, tbl.Fold("Dave"), ErrUnknownPlayer)
	require.NoError(t, tbl.DealFlop())
	require.NoError(t, tbl.DealTurn())
	require.NoError(t, tbl.DealRiver())

	res, err := tbl.Showdown()
	require.NoError(t, err)
	require.Len(t, res.Standings, 2)
	for _, s := range res.Standings {
		require.NotEqual(t, "Bob", s.Name)
	}
	require.NotContains(t, res.Winners, "Bob")
}

func TestShowdownWithEveryoneFolded(t *testing.T) {
	tbl, _ := newTable(t, "Alice", "Bob")
	playHand(t, tbl)
	require.NoError(t, tbl.Fold("Alice"))
	require.NoError(t, tbl.Fold("Bob"))
	_, err := tbl.Showdown()
	require.ErrorIs(t, err, ErrNoActivePlayers)
}

func TestResetStartsNewHand(t *testing.T) {
	tbl, _ := newTable(t, "Alice", "Bob")
	playHand(t, tbl)
	require.NoError(t, tbl.Fold("Alice"))
	_, err := tbl.Showdown()
	require.NoError(t, err)
	require.ErrorIs(t, tbl.Fold("Bob"), ErrWrongStage)

	tbl.Reset()
	require.Equal(t, StagePreDeal, tbl.Stage)
	require.Empty(t, tbl.Board)
	require.Equal(t, poker.DeckSize, tbl.deck.Len())
	for _, p := range tbl.Players {
		require.False(t, p.Folded)
		require.Empty(t, p.Hole)
	}
	playHand(t, tbl)
}
