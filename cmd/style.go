package main

import (
	"slices"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/showdown/domain/poker"
	"github.com/luca-patrignani/showdown/domain/table"
)

func banner() (string, error) {
	return pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("S", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("how", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("D", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("own", pterm.FgDarkGray.ToStyle()),
	).Srender()
}

func cardsString(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " - ")
}

// tieBreakString renders the tie-break key with rank letters, e.g. "A K 9".
func tieBreakString(rank poker.HandRank) string {
	parts := make([]string, len(rank.TieBreak))
	for i, v := range rank.TieBreak {
		parts[i] = poker.Rank(v).String()
	}
	return strings.Join(parts, " ")
}

func evalPanel(input []poker.Card, rank poker.HandRank, hand []poker.Card) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := pterm.Sprintfln("Cards: %s", cardsString(input))
	info += pterm.Sprintfln("Best hand: %s", pterm.BgGreen.Sprint(cardsString(hand)))
	info += pterm.Sprintfln("Category: %s (%d)", pterm.LightCyan(rank.Category.String()), int(rank.Category))
	info += pterm.Sprintf("Tie-break: %s", tieBreakString(rank))
	return pbox.WithTitle(pterm.LightYellow("|EVALUATION|")).WithTitleTopCenter().Sprintln(info)
}

func printPlayerInfo(p *table.Player, s *poker.Standing, winner bool) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	var active string
	switch {
	case p.Folded:
		active = pterm.LightRed("Folded")
	case winner:
		active = pterm.LightGreen("Winner")
	default:
		active = pterm.LightCyan("Active")
	}
	hand := pterm.BgGreen.Sprint(cardsString(p.Hole))
	info := active + "\n" + hand + "\n"
	if s != nil {
		info += pterm.Sprintfln("%s\n%s", s.Rank.Category, cardsString(s.Hand))
	}
	return pbox.WithTitle(p.Name).WithTitleTopLeft().Sprint(info)
}

func printBoardInfo(board []poker.Card, stage table.Stage) string {
	return pterm.BgGreen.Sprint("\n" + cardsString(board) + " | " + string(stage) + "\n")
}

func getWinnerPanel(res table.Result) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	infoString := ""
	if len(res.Winners) > 1 {
		infoString += pterm.Sprintfln("Split pot between %d players", len(res.Winners))
	}
	for _, s := range res.Standings {
		if !slices.Contains(res.Winners, s.Name) {
			continue
		}
		infoString += pterm.Sprintfln("%s wins with %s", pterm.LightCyan(s.Name), s.Rank.Category)
	}
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightGreen("|SHOWDOWN|")).WithTitleTopCenter().Sprint(infoString)}
}

func renderTable(tbl *table.Table, res table.Result) (string, error) {
	byName := map[string]*poker.Standing{}
	for i := range res.Standings {
		byName[res.Standings[i].Name] = &res.Standings[i]
	}
	var panels []pterm.Panel
	for _, p := range tbl.Players {
		winner := slices.Contains(res.Winners, p.Name)
		panels = append(panels, pterm.Panel{Data: printPlayerInfo(p, byName[p.Name], winner)})
	}
	board := pterm.Panel{Data: printBoardInfo(tbl.Board, tbl.Stage)}
	count := pterm.Panel{Data: "Players: " + strconv.Itoa(len(tbl.Players))}

	return pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		panels,
		{board, count},
		{getWinnerPanel(res)},
	}).Srender()
}
