package poker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Rank is the face value of a card. The underlying value is the strength
// used for every comparison: Two is 0 and Ace is 12.
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Suit is one of the four card suits.
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// DeckSize is the number of distinct cards.
const DeckSize = 52

var ErrInvalidCard = errors.New("invalid card")

var rankSymbols = [...]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "King", "Ace"}

var rankShort = [...]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

var suitSymbols = [...]string{"Hearts", "Diamonds", "Clubs", "Spades"}

var suitGlyphs = [...]string{"♥", "♦", "♣", "♠"}

// Ranks returns the rank symbols ordered from weakest to strongest.
func Ranks() []string {
	return append([]string(nil), rankSymbols[:]...)
}

// Suits returns the suit symbols.
func Suits() []string {
	return append([]string(nil), suitSymbols[:]...)
}

func (r Rank) valid() bool {
	return r <= Ace
}

// Value returns the numeric strength of the rank (0..12).
func (r Rank) Value() int {
	return int(r)
}

func (r Rank) Symbol() string {
	if !r.valid() {
		return "?"
	}
	return rankSymbols[r]
}

func (r Rank) String() string {
	if !r.valid() {
		return "?"
	}
	return rankShort[r]
}

func (s Suit) valid() bool {
	return s <= Spades
}

func (s Suit) Symbol() string {
	if !s.valid() {
		return "?"
	}
	return suitSymbols[s]
}

func (s Suit) String() string {
	if !s.valid() {
		return "?"
	}
	return suitGlyphs[s]
}

// Card represents a playing card with rank and suit.
// Cards are values and are never modified after construction.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a new Card with validation.
//
// Returns the Card or an error wrapping ErrInvalidCard if rank or suit is
// outside its domain.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.valid() || !suit.valid() {
		return Card{}, fmt.Errorf("%w: rank %d, suit %d", ErrInvalidCard, rank, suit)
	}
	return Card{rank: rank, suit: suit}, nil
}

// MustCard is like NewCard but panics on invalid input. It is meant for
// literals in tests and tables.
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// CardFromSymbols builds a card from its long symbols, e.g. ("Jack", "Hearts").
func CardFromSymbols(rank, suit string) (Card, error) {
	r, ok := lookup(rankSymbols[:], rank)
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, rank)
	}
	s, ok := lookup(suitSymbols[:], suit)
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, suit)
	}
	return Card{rank: Rank(r), suit: Suit(s)}, nil
}

// ParseCard parses the short notation used by most poker tools: a rank
// ("2".."10", "T", "J", "Q", "K", "A") followed by a suit letter (h, d, c, s).
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	rankPart, suitPart := strings.ToUpper(s[:len(s)-1]), strings.ToLower(s[len(s)-1:])
	if rankPart == "T" {
		rankPart = "10"
	}
	r, ok := lookup(rankShort[:], rankPart)
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidCard, s)
	}
	var suit Suit
	switch suitPart {
	case "h":
		suit = Hearts
	case "d":
		suit = Diamonds
	case "c":
		suit = Clubs
	case "s":
		suit = Spades
	default:
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidCard, s)
	}
	return Card{rank: Rank(r), suit: suit}, nil
}

// ParseCards parses a list of cards separated by spaces or commas.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// CardFromIndex converts an index in 0..51 to a Card. Indexes enumerate
// ranks within each suit, suits in Hearts, Diamonds, Clubs, Spades order.
func CardFromIndex(i int) (Card, error) {
	if i < 0 || i >= DeckSize {
		return Card{}, fmt.Errorf("%w: index %d", ErrInvalidCard, i)
	}
	return Card{rank: Rank(i % 13), suit: Suit(i / 13)}, nil
}

// Index is the inverse of CardFromIndex.
func (c Card) Index() int {
	return int(c.suit)*13 + int(c.rank)
}

func (c Card) Rank() Rank {
	return c.rank
}

func (c Card) Suit() Suit {
	return c.suit
}

// Value returns the numeric strength of the card's rank (0..12).
func (c Card) Value() int {
	return c.rank.Value()
}

// Name returns the long form, e.g. "Ace of Hearts".
func (c Card) Name() string {
	return c.rank.Symbol() + " of " + c.suit.Symbol()
}

// String returns a short representation using suit symbols, red suits
// coloured through pterm.
func (c Card) String() string {
	var suit string
	switch c.suit {
	case Hearts, Diamonds:
		suit = pterm.LightRed(c.suit.String())
	default:
		suit = pterm.Black(c.suit.String())
	}
	return c.rank.String() + suit
}

func lookup(table []string, sym string) (int, bool) {
	for i, s := range table {
		if strings.EqualFold(s, sym) {
			return i, true
		}
	}
	return 0, false
}
