package poker

import (
	"fmt"
	"strings"
)

// HandRank is the comparison key of a five card hand: the category weight
// followed by a category specific sequence of rank values. The zero value
// ranks below every real hand.
type HandRank struct {
	Category HandCategory
	TieBreak []int
}

// Compare orders two ranks lexicographically, category first and then the
// tie-break values left to right. It returns -1, 0 or 1.
func Compare(a, b HandRank) int {
	if a.Category != b.Category {
		if a.Category > b.Category {
			return 1
		}
		return -1
	}
	for i := 0; i < len(a.TieBreak) && i < len(b.TieBreak); i++ {
		if a.TieBreak[i] > b.TieBreak[i] {
			return 1
		}
		if a.TieBreak[i] < b.TieBreak[i] {
			return -1
		}
	}
	// Keys produced by Classify have a fixed length per category.
	switch {
	case len(a.TieBreak) > len(b.TieBreak):
		return 1
	case len(a.TieBreak) < len(b.TieBreak):
		return -1
	}
	return 0
}

// Beats reports whether r is strictly stronger than other.
func (r HandRank) Beats(other HandRank) bool {
	return Compare(r, other) > 0
}

// Equal reports whether the two ranks tie.
func (r HandRank) Equal(other HandRank) bool {
	return Compare(r, other) == 0
}

func (r HandRank) String() string {
	parts := make([]string, len(r.TieBreak))
	for i, v := range r.TieBreak {
		parts[i] = Rank(v).String()
	}
	return fmt.Sprintf("%s (%s)", r.Category, strings.Join(parts, " "))
}
