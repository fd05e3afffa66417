package poker

import (
	"errors"
	"fmt"
	"sort"
)

// HandSize is the number of cards in a ranked poker hand.
const HandSize = 5

var ErrInvalidHandSize = errors.New("a hand must contain exactly 5 cards")

// wheelHigh is the tie-break value of A-2-3-4-5: the straight ranks as
// five high.
const wheelHigh = int(Five)

// group is a set of cards sharing one rank value.
type group struct {
	value int
	count int
}

// Classify evaluates exactly five cards and returns their category and
// tie-break key. The input slice is not modified.
func Classify(cards []Card) (HandRank, error) {
	if len(cards) != HandSize {
		return HandRank{}, fmt.Errorf("%w: got %d", ErrInvalidHandSize, len(cards))
	}

	values := make([]int, 0, HandSize)
	for _, c := range cards {
		values = append(values, c.Value())
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	flush := true
	for _, c := range cards[1:] {
		if c.Suit() != cards[0].Suit() {
			flush = false
			break
		}
	}
	high, straight := straightHigh(values)
	groups := groupValues(values)

	switch {
	case flush && straight:
		if high == Ace.Value() {
			return HandRank{Category: RoyalFlush, TieBreak: []int{high}}, nil
		}
		return HandRank{Category: StraightFlush, TieBreak: []int{high}}, nil
	case groups[0].count == 4:
		return HandRank{Category: FourOfAKind, TieBreak: []int{groups[0].value, groups[1].value}}, nil
	case groups[0].count == 3 && groups[1].count == 2:
		return HandRank{Category: FullHouse, TieBreak: []int{groups[0].value, groups[1].value}}, nil
	case flush:
		return HandRank{Category: Flush, TieBreak: values}, nil
	case straight:
		return HandRank{Category: Straight, TieBreak: []int{high}}, nil
	case groups[0].count == 3:
		return HandRank{Category: ThreeOfAKind, TieBreak: groupKey(groups)}, nil
	case groups[0].count == 2 && groups[1].count == 2:
		return HandRank{Category: TwoPair, TieBreak: groupKey(groups)}, nil
	case groups[0].count == 2:
		return HandRank{Category: OnePair, TieBreak: groupKey(groups)}, nil
	}
	return HandRank{Category: HighCard, TieBreak: values}, nil
}

// straightHigh reports whether the distinct values contain five consecutive
// ranks and returns the value of the straight's top card. The wheel
// (A-2-3-4-5) is matched as a pattern and reported as five high; the ace
// keeps its value everywhere else.
func straightHigh(values []int) (int, bool) {
	var present [13]bool
	for _, v := range values {
		present[v] = true
	}
	run := 0
	for v := Ace.Value(); v >= 0; v-- {
		if !present[v] {
			run = 0
			continue
		}
		run++
		if run == 5 {
			return v + 4, true
		}
	}
	if present[Ace] && present[Two] && present[Three] && present[Four] && present[Five] {
		return wheelHigh, true
	}
	return 0, false
}

// groupValues groups values by multiplicity, ordered by count descending
// and then by value descending. The first group is the primary one: with
// two pairs the higher pair comes first.
func groupValues(values []int) []group {
	counts := map[int]int{}
	for _, v := range values {
		counts[v]++
	}
	groups := make([]group, 0, len(counts))
	for v, n := range counts {
		groups = append(groups, group{value: v, count: n})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].value > groups[j].value
	})
	return groups
}

// groupKey flattens ordered groups into a tie-break key. Singletons end up
// last and descending, which gives kickers in the right order.
func groupKey(groups []group) []int {
	key := make([]int, 0, len(groups))
	for _, g := range groups {
		key = append(key, g.value)
	}
	return key
}
