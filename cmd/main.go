package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/showdown/domain/deck"
	"github.com/luca-patrignani/showdown/domain/poker"
	"github.com/luca-patrignani/showdown/domain/table"
	"github.com/luca-patrignani/showdown/ledger"
)

// maxEvalCards is the largest set eval accepts: two hole cards and a full
// board.
const maxEvalCards = 7

var (
	errTooManyCards  = fmt.Errorf("at most %d cards can be evaluated", maxEvalCards)
	errDuplicateCard = errors.New("card given more than once")
	errNoHands       = errors.New("at least one hand must be played")
)

var defaultNames = []string{"Alice", "Bob", "Charlie", "Dave", "Eve", "Frank", "Grace", "Heidi", "Ivan"}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	var logger *slog.Logger

	root := &cobra.Command{
		Use:          "showdown",
		Short:        "Texas Hold'em hand evaluator",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := pterm.LogLevelInfo
			if verbose {
				level = pterm.LogLevelDebug
			}
			// Create a new slog logger with the default PTerm logger
			handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(level).WithWriter(cmd.ErrOrStderr()))
			logger = slog.New(handler)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newEvalCmd(), newDemoCmd(func() *slog.Logger { return logger }))
	return root
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "eval <card>...",
		Short:   "Rank the best five card hand out of 5 to 7 cards",
		Example: "  showdown eval Ah Kh Qd Jc 10s 9h 8d",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cards, err := parseHand(strings.Join(args, " "))
			if err != nil {
				return err
			}
			rank, hand, err := poker.Best(cards)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), evalPanel(cards, rank, hand))
			return nil
		},
	}
}

// parseHand parses the cards given to eval and rejects what the evaluator
// expects its caller to rule out.
func parseHand(s string) ([]poker.Card, error) {
	cards, err := poker.ParseCards(s)
	if err != nil {
		return nil, err
	}
	if len(cards) > maxEvalCards {
		return nil, fmt.Errorf("%w: got %d", errTooManyCards, len(cards))
	}
	seen := map[poker.Card]bool{}
	for _, c := range cards {
		if seen[c] {
			return nil, fmt.Errorf("%w: %s", errDuplicateCard, c.Name())
		}
		seen[c] = true
	}
	return cards, nil
}

type demoOptions struct {
	players int
	hands   int
	names   []string
	seed    string
}

func newDemoCmd(logger func() *slog.Logger) *cobra.Command {
	opts := demoOptions{}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Deal a full hand and show who wins at showdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, opts, logger())
		},
	}
	cmd.Flags().IntVarP(&opts.players, "players", "p", 3, "number of players when --names is not given")
	cmd.Flags().IntVar(&opts.hands, "hands", 1, "number of hands to play")
	cmd.Flags().StringSliceVar(&opts.names, "names", nil, "comma separated player names")
	cmd.Flags().StringVar(&opts.seed, "seed", "", "seed for a reproducible deal")
	return cmd
}

func (o demoOptions) playerNames() []string {
	if len(o.names) > 0 {
		return o.names
	}
	names := make([]string, 0, o.players)
	for i := 0; i < o.players; i++ {
		if i < len(defaultNames) {
			names = append(names, defaultNames[i])
		} else {
			names = append(names, fmt.Sprintf("Player %d", i+1))
		}
	}
	return names
}

func runDemo(cmd *cobra.Command, opts demoOptions, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.hands < 1 {
		return errNoHands
	}
	out := cmd.OutOrStdout()

	title, err := banner()
	if err != nil {
		return err
	}
	fmt.Fprint(out, title)

	var deckOpts []deck.Option
	if opts.seed != "" {
		deckOpts = append(deckOpts, deck.WithSeed([]byte(opts.seed)))
	}
	tbl, err := table.New(opts.playerNames(), table.WithLogger(logger), table.WithDeck(deck.New(deckOpts...)))
	if err != nil {
		return err
	}

	history := ledger.NewHistory()
	for hand := 1; hand <= opts.hands; hand++ {
		if hand > 1 {
			tbl.Reset()
		}
		logger.Info("Starting a new hand", "hand", hand)
		if err := playHand(tbl, logger); err != nil {
			return err
		}
		res, err := tbl.Showdown()
		if err != nil {
			return err
		}
		if _, err := history.Append(tbl.Board, res.Standings, res.Winners); err != nil {
			return err
		}
		state, err := renderTable(tbl, res)
		if err != nil {
			return err
		}
		fmt.Fprint(out, state)
	}

	if err := history.Verify(); err != nil {
		return err
	}
	latest, err := history.Latest()
	if err != nil {
		return err
	}
	logger.Info("hand history verified", "hands", history.Len(), "hash", latest.Hash)
	return nil
}

func playHand(tbl *table.Table, logger *slog.Logger) error {
	steps := []struct {
		name string
		deal func() error
	}{
		{"hole cards", tbl.DealHoleCards},
		{"flop", tbl.DealFlop},
		{"turn", tbl.DealTurn},
		{"river", tbl.DealRiver},
	}
	for _, step := range steps {
		if err := step.deal(); err != nil {
			logger.Error("failed to deal", "step", step.name, "error", err)
			return err
		}
	}
	logger.Info("Showdown! Reveal your hands!")
	return nil
}
