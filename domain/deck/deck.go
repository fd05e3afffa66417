// Package deck provides a standard 52 card deck that can be shuffled and
// dealt from the top.
package deck

import (
	"crypto/cipher"
	"errors"
	"fmt"
	"math/big"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"

	"github.com/luca-patrignani/showdown/domain/poker"
)

var ErrNotEnoughCards = errors.New("not enough cards in the deck")

var suite suites.Suite = suites.MustFind("Ed25519")

// Deck is an ordered pile of unique cards. The last card of the pile is
// the top of the deck. A Deck is not safe for concurrent use.
type Deck struct {
	cards []poker.Card
	seed  []byte
	// stream feeds every shuffle. Without a seed it is the suite's
	// cryptographic random stream.
	stream cipher.Stream
}

// Option configures a Deck built by New.
type Option func(Deck) Deck

// WithSeed makes shuffles reproducible: decks built with the same seed deal
// the same sequence of cards.
func WithSeed(seed []byte) Option {
	return func(d Deck) Deck {
		d.seed = append([]byte(nil), seed...)
		return d
	}
}

// New returns a full deck in index order. Call Shuffle before dealing.
func New(opts ...Option) *Deck {
	d := Deck{}
	for _, opt := range opts {
		d = opt(d)
	}
	if d.seed != nil {
		d.stream = suite.XOF(d.seed)
	} else {
		d.stream = suite.RandomStream()
	}
	d.Reset()
	return &d
}

// Reset puts all 52 cards back in index order.
func (d *Deck) Reset() {
	d.cards = make([]poker.Card, 0, poker.DeckSize)
	for i := 0; i < poker.DeckSize; i++ {
		c, err := poker.CardFromIndex(i)
		if err != nil {
			panic(err)
		}
		d.cards = append(d.cards, c)
	}
}

// Shuffle permutes the remaining cards with a Fisher-Yates shuffle drawing
// its indexes from the deck's stream.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), d.stream).Int64())
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes n cards from the top of the deck and returns them in the
// order they were dealt.
func (d *Deck) Deal(n int) ([]poker.Card, error) {
	if n < 0 || n > len(d.cards) {
		return nil, fmt.Errorf("%w: requested %d, %d left", ErrNotEnoughCards, n, len(d.cards))
	}
	out := make([]poker.Card, 0, n)
	for i := 0; i < n; i++ {
		top := len(d.cards) - 1
		out = append(out, d.cards[top])
		d.cards = d.cards[:top]
	}
	return out, nil
}

// Burn discards the top card.
func (d *Deck) Burn() error {
	_, err := d.Deal(1)
	return err
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return len(d.cards)
}
