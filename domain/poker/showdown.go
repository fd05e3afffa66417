package poker

import "fmt"

// Contender is a player still in the hand at showdown.
type Contender struct {
	Name string
	Hole []Card
}

// Standing is the evaluated best hand of a contender.
type Standing struct {
	Contender
	Rank HandRank
	Hand []Card
}

// Winners returns the indexes of every rank that no other rank beats.
// Equal ranks share the win; no extra tie-breaking is applied.
func Winners(ranks []HandRank) []int {
	if len(ranks) == 0 {
		return nil
	}
	best := ranks[0]
	winners := []int{0}
	for i := 1; i < len(ranks); i++ {
		cmp := Compare(ranks[i], best)
		if cmp > 0 {
			best = ranks[i]
			winners = []int{i}
		} else if cmp == 0 {
			winners = append(winners, i)
		}
	}
	return winners
}

// Showdown evaluates the hole cards of each contender together with the
// board and returns the standings, in contender order, plus the indexes of
// the winners.
func Showdown(board []Card, contenders []Contender) ([]Standing, []int, error) {
	standings := make([]Standing, 0, len(contenders))
	ranks := make([]HandRank, 0, len(contenders))
	for _, c := range contenders {
		cards := make([]Card, 0, len(c.Hole)+len(board))
		cards = append(cards, c.Hole...)
		cards = append(cards, board...)
		rank, hand, err := Best(cards)
		if err != nil {
			return nil, nil, fmt.Errorf("evaluating %s: %w", c.Name, err)
		}
		standings = append(standings, Standing{Contender: c, Rank: rank, Hand: hand})
		ranks = append(ranks, rank)
	}
	return standings, Winners(ranks), nil
}
