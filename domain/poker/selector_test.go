package poker

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestBestSelectsBroadway(t *testing.T) {
	seven := cards(t, "Ah Kh Qd Jc 10s 9h 8d")
	rank, hand, err := Best(seven)
	require.NoError(t, err)
	require.Equal(t, Straight, rank.Category)
	require.Equal(t, []int{Ace.Value()}, rank.TieBreak)
	require.Equal(t, cards(t, "Ah Kh Qd Jc 10s"), hand)
}

func TestBestPrefersFullHouseOverTrips(t *testing.T) {
	seven := cards(t, "7h 7d 7c Ks Kd 2h 4c")
	rank, hand, err := Best(seven)
	require.NoError(t, err)
	require.Equal(t, FullHouse, rank.Category)
	require.Equal(t, []int{Seven.Value(), King.Value()}, rank.TieBreak)
	require.ElementsMatch(t, cards(t, "7h 7d 7c Ks Kd"), hand)
}

func TestBestFindsStraightFlushAmongFlushes(t *testing.T) {
	seven := cards(t, "As Ks Qs Js Ts 2c 3d")
	rank, _, err := Best(seven)
	require.NoError(t, err)
	require.Equal(t, RoyalFlush, rank.Category)

	seven = cards(t, "9h 8h 7h 6h 5h Ah Kh")
	rank, hand, err := Best(seven)
	require.NoError(t, err)
	require.Equal(t, StraightFlush, rank.Category)
	require.Equal(t, []int{Nine.Value()}, rank.TieBreak)
	require.Equal(t, cards(t, "9h 8h 7h 6h 5h"), hand)
}

func TestBestOnFiveCardsMatchesClassify(t *testing.T) {
	five := cards(t, "4h 4d Jc Js 9h")
	direct, err := Classify(five)
	require.NoError(t, err)
	rank, hand, err := Best(five)
	require.NoError(t, err)
	require.Equal(t, direct, rank)
	require.ElementsMatch(t, five, hand)
}

func TestBestOnSixCards(t *testing.T) {
	six := cards(t, "2h 3d 4c 5s 6h Ac")
	rank, hand, err := Best(six)
	require.NoError(t, err)
	require.Equal(t, Straight, rank.Category)
	require.Equal(t, []int{Six.Value()}, rank.TieBreak)
	require.NotContains(t, hand, cards(t, "Ac")[0])
}

func TestBestArrangesWheelAceLast(t *testing.T) {
	rank, hand, err := Best(cards(t, "Ah 2d 3c 4s 5h Kd Qc"))
	require.NoError(t, err)
	require.Equal(t, Straight, rank.Category)
	require.Equal(t, cards(t, "5h 4s 3c 2d Ah"), hand)
}

func TestBestArrangesGroupsFirst(t *testing.T) {
	_, hand, err := Best(cards(t, "2c Kd 9h 9s Ah 3d 4h"))
	require.NoError(t, err)
	require.Equal(t, cards(t, "9h 9s Ah Kd 4h"), hand)
}

func TestBestInsufficientCards(t *testing.T) {
	for n := 0; n < HandSize; n++ {
		_, _, err := Best(allCards()[:n])
		require.ErrorIs(t, err, ErrInsufficientCards)
	}
}

func TestBestDoesNotMutateInput(t *testing.T) {
	in := cards(t, "2c Kd 9h 9s Ah 3d 4h")
	snapshot := append([]Card(nil), in...)
	_, hand, err := Best(in)
	require.NoError(t, err)
	require.Equal(t, snapshot, in)
	hand[0] = MustCard(Two, Hearts)
	require.Equal(t, snapshot, in)
}

func TestCombinationsCount(t *testing.T) {
	for n, want := range map[int]int{5: 1, 6: 6, 7: 21, 8: 56} {
		seen := map[[HandSize]int]bool{}
		err := combinations(n, func(idx [HandSize]int) error {
			for i := 1; i < HandSize; i++ {
				require.Less(t, idx[i-1], idx[i])
			}
			require.Less(t, idx[HandSize-1], n)
			seen[idx] = true
			return nil
		})
		require.NoError(t, err)
		require.Len(t, seen, want, "n=%d", n)
	}
}

func TestBestIsSafeForConcurrentUse(t *testing.T) {
	seven := cards(t, "Ah Kh Qd Jc 10s 9h 8d")
	want, _, err := Best(seven)
	require.NoError(t, err)

	var g errgroup.Group
	results := make([]HandRank, 32)
	for i := range results {
		g.Go(func() error {
			rank, _, err := Best(seven)
			results[i] = rank
			return err
		})
	}
	require.NoError(t, g.Wait())
	for _, r := range results {
		require.Equal(t, want, r)
	}
}

func randomSeven(rnd *rand.Rand) []Card {
	deck := allCards()
	out := make([]Card, 0, 7)
	for _, i := range rnd.Perm(DeckSize)[:7] {
		out = append(out, deck[i])
	}
	return out
}
