package main

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/poker-solver/application"
	"github.com/luca-patrignani/poker-solver/domain/poker"
)

func renderBanner() string {
	banner, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("P", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("oker ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("S", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("olver", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err != nil {
		return "Poker Solver"
	}
	return banner
}

// renderReport shows every player's best combination, weakest first. Players
// in the same tie group share a place.
func renderReport(res application.Result) (string, error) {
	data := pterm.TableData{{"Place", "Player", "Best hand", "Category", "Description"}}
	place := len(res.Ranking.Groups)
	for _, group := range res.Ranking.Groups {
		for _, r := range group {
			desc, err := poker.Describe(r)
			if err != nil {
				return "", err
			}
			name := r.Label
			if len(group) > 1 {
				name = pterm.LightYellow(name)
			}
			data = append(data, []string{
				strconv.Itoa(place),
				name,
				prettyCards(r.Cards[:]),
				r.Category().String(),
				desc,
			})
		}
		place--
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", err
	}
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(pterm.LightGreen("|" + strings.ToUpper(res.Variant.String()) + "|")).WithTitleTopCenter().Sprint(table), nil
}

func prettyCards(cards []poker.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, c.Pretty())
	}
	return strings.Join(parts, " ")
}
