package poker

import (
	"errors"
	"fmt"
	"sort"
)

var ErrInsufficientCards = errors.New("at least 5 cards are required")

// Best finds the strongest five card hand that can be made from cards.
// Every 5-card subset is classified; when several subsets tie, the first
// one found is returned. The returned hand is a new slice ordered by group
// (primary group first) and the input is left untouched.
func Best(cards []Card) (HandRank, []Card, error) {
	if len(cards) < HandSize {
		return HandRank{}, nil, fmt.Errorf("%w: got %d", ErrInsufficientCards, len(cards))
	}

	var best HandRank
	var bestIdx [HandSize]int
	hand := make([]Card, HandSize)
	err := combinations(len(cards), func(idx [HandSize]int) error {
		for i, j := range idx {
			hand[i] = cards[j]
		}
		rank, err := Classify(hand)
		if err != nil {
			return err
		}
		if rank.Beats(best) {
			best = rank
			bestIdx = idx
		}
		return nil
	})
	if err != nil {
		return HandRank{}, nil, err
	}

	out := make([]Card, HandSize)
	for i, j := range bestIdx {
		out[i] = cards[j]
	}
	arrange(out, best)
	return best, out, nil
}

// combinations calls fn with every increasing 5-index combination of 0..n-1,
// in lexicographic order.
func combinations(n int, fn func([HandSize]int) error) error {
	var idx [HandSize]int
	for i := range idx {
		idx[i] = i
	}
	for {
		if err := fn(idx); err != nil {
			return err
		}
		i := HandSize - 1
		for i >= 0 && idx[i] == n-HandSize+i {
			i--
		}
		if i < 0 {
			return nil
		}
		idx[i]++
		for j := i + 1; j < HandSize; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// arrange sorts a classified hand in place so that it reads the way the
// rank does: bigger groups first, higher values first, and the ace at the
// bottom of a wheel.
func arrange(hand []Card, rank HandRank) {
	counts := map[int]int{}
	for _, c := range hand {
		counts[c.Value()]++
	}
	wheel := (rank.Category == Straight || rank.Category == StraightFlush) && rank.TieBreak[0] == wheelHigh
	weight := func(c Card) int {
		if wheel && c.Rank() == Ace {
			return -1
		}
		return c.Value()
	}
	sort.SliceStable(hand, func(i, j int) bool {
		ci, cj := counts[hand[i].Value()], counts[hand[j].Value()]
		if ci != cj {
			return ci > cj
		}
		return weight(hand[i]) > weight(hand[j])
	})
}
