package poker

// HandCategory is the class of a five card hand. Categories are ordered by
// their integer weight, HighCard being the weakest.
type HandCategory int

const (
	HighCard HandCategory = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var categoryNames = map[HandCategory]string{
	HighCard:      "High Card",
	OnePair:       "One Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
	RoyalFlush:    "Royal Flush",
}

// Categories lists every category from weakest to strongest.
func Categories() []HandCategory {
	out := make([]HandCategory, 0, len(categoryNames))
	for c := HighCard; c <= RoyalFlush; c++ {
		out = append(out, c)
	}
	return out
}

func (c HandCategory) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}
