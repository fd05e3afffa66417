// Package table runs the card flow of a single Texas Hold'em hand: hole
// cards, flop, turn, river and showdown. Chips and betting are left to the
// caller.
package table

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/luca-patrignani/showdown/domain/deck"
	"github.com/luca-patrignani/showdown/domain/poker"
)

type Stage string

const (
	StagePreDeal  Stage = "predeal"
	StagePreFlop  Stage = "preflop"
	StageFlop     Stage = "flop"
	StageTurn     Stage = "turn"
	StageRiver    Stage = "river"
	StageFinished Stage = "finished"
)

// MaxPlayers is the largest table a single deck can serve: two hole cards
// each, five community cards and three burns.
const MaxPlayers = (poker.DeckSize - 5 - 3) / 2

var (
	ErrTooFewPlayers   = errors.New("at least 2 players required")
	ErrTooManyPlayers  = fmt.Errorf("at most %d players allowed", MaxPlayers)
	ErrDuplicatePlayer = errors.New("duplicate player name")
	ErrUnknownPlayer   = errors.New("unknown player")
	ErrWrongStage      = errors.New("action not allowed at this stage")
	ErrNoActivePlayers = errors.New("no players remaining")
)

type Player struct {
	Name   string
	Hole   []poker.Card
	Folded bool
}

// Result is the outcome of a showdown. Winners lists every player sharing
// the best hand.
type Result struct {
	Standings []poker.Standing
	Winners   []string
}

type Table struct {
	Players []*Player
	Board   []poker.Card
	Stage   Stage
	deck    *deck.Deck
	logger  *slog.Logger
}

// Option configures a Table built by New.
type Option func(Table) Table

func WithLogger(logger *slog.Logger) Option {
	return func(t Table) Table {
		t.logger = logger
		return t
	}
}

// WithDeck makes the table deal from d instead of a fresh random deck.
func WithDeck(d *deck.Deck) Option {
	return func(t Table) Table {
		t.deck = d
		return t
	}
}

// New seats the named players and shuffles the deck.
func New(names []string, opts ...Option) (*Table, error) {
	if len(names) < 2 {
		return nil, ErrTooFewPlayers
	}
	if len(names) > MaxPlayers {
		return nil, ErrTooManyPlayers
	}
	t := Table{Stage: StagePreDeal}
	seen := map[string]bool{}
	for _, name := range names {
		if seen[name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlayer, name)
		}
		seen[name] = true
		t.Players = append(t.Players, &Player{Name: name})
	}
	for _, opt := range opts {
		t = opt(t)
	}
	if t.logger == nil {
		t.logger = slog.Default()
	}
	if t.deck == nil {
		t.deck = deck.New()
	}
	t.deck.Shuffle()
	return &t, nil
}

// DealHoleCards gives two cards to every player.
func (t *Table) DealHoleCards() error {
	if err := t.expect(StagePreDeal); err != nil {
		return err
	}
	for _, p := range t.Players {
		hole, err := t.deck.Deal(2)
		if err != nil {
			return err
		}
		p.Hole = hole
		t.logger.Debug("hole cards dealt", "player", p.Name)
	}
	t.Stage = StagePreFlop
	return nil
}

// DealFlop burns one card and deals three community cards.
func (t *Table) DealFlop() error {
	return t.dealBoard(StagePreFlop, StageFlop, 3)
}

// DealTurn burns one card and deals the fourth community card.
func (t *Table) DealTurn() error {
	return t.dealBoard(StageFlop, StageTurn, 1)
}

// DealRiver burns one card and deals the last community card.
func (t *Table) DealRiver() error {
	return t.dealBoard(StageTurn, StageRiver, 1)
}

func (t *Table) dealBoard(from, to Stage, n int) error {
	if err := t.expect(from); err != nil {
		return err
	}
	if err := t.deck.Burn(); err != nil {
		return err
	}
	cards, err := t.deck.Deal(n)
	if err != nil {
		return err
	}
	t.Board = append(t.Board, cards...)
	t.Stage = to
	t.logger.Info("board dealt", "stage", string(to), "board", fmt.Sprint(t.Board))
	return nil
}

// Fold removes a player from the showdown.
func (t *Table) Fold(name string) error {
	if t.Stage == StageFinished {
		return ErrWrongStage
	}
	for _, p := range t.Players {
		if p.Name == name {
			p.Folded = true
			t.logger.Info("player folded", "player", name)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownPlayer, name)
}

// Active returns the players that have not folded.
func (t *Table) Active() []*Player {
	out := make([]*Player, 0, len(t.Players))
	for _, p := range t.Players {
		if !p.Folded {
			out = append(out, p)
		}
	}
	return out
}

// Showdown evaluates the best hand of every active player once the river is
// out and reports the winners. Ties are reported as shared wins.
func (t *Table) Showdown() (Result, error) {
	if err := t.expect(StageRiver); err != nil {
		return Result{}, err
	}
	active := t.Active()
	if len(active) == 0 {
		return Result{}, ErrNoActivePlayers
	}
	contenders := make([]poker.Contender, 0, len(active))
	for _, p := range active {
		contenders = append(contenders, poker.Contender{Name: p.Name, Hole: p.Hole})
	}
	standings, winners, err := poker.Showdown(t.Board, contenders)
	if err != nil {
		return Result{}, err
	}
	res := Result{Standings: standings}
	for _, s := range standings {
		t.logger.Info("best hand", "player", s.Name, "hand", fmt.Sprint(s.Hand), "rank", s.Rank.String())
	}
	for _, i := range winners {
		res.Winners = append(res.Winners, standings[i].Name)
	}
	t.logger.Info("showdown", "winners", res.Winners)
	t.Stage = StageFinished
	return res, nil
}

// Reset clears hands and board and reshuffles a full deck for a new hand.
func (t *Table) Reset() {
	for _, p := range t.Players {
		p.Hole = nil
		p.Folded = false
	}
	t.Board = nil
	t.deck.Reset()
	t.deck.Shuffle()
	t.Stage = StagePreDeal
}

func (t *Table) expect(stage Stage) error {
	if t.Stage != stage {
		return fmt.Errorf("%w: at %s, want %s", ErrWrongStage, t.Stage, stage)
	}
	return nil
}
