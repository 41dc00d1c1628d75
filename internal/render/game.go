package render

import (
	"fmt"
	"strconv"
	"tntfl-ladder/internal/domain"
	"tntfl-ladder/internal/stats"
)

// GamePage lays out one game: the sides and score, then each side's skill
// and rank movement.
func GamePage(g domain.Game, base string) Page {
	title := fmt.Sprintf("%s %d - %d %s", g.Red.Name, g.Red.Score, g.Blue.Score, g.Blue.Name)

	var classes []string
	if g.Deleted {
		classes = append(classes, "deleted")
	}
	if stats.IsTenNilWin(g.Red.Name, g) || stats.IsTenNilWin(g.Blue.Name, g) {
		classes = append(classes, "ten-nil")
	}

	score := Row{
		{Title: "Red", Value: g.Red.Name, Href: PlayerHref(base, g.Red.Name), Style: fade(false)},
		{Title: "Score", Value: fmt.Sprintf("%d - %d", g.Red.Score, g.Blue.Score), Kind: Instant, At: g.Date, Classes: classes},
		{Title: "Blue", Value: g.Blue.Name, Href: PlayerHref(base, g.Blue.Name), Style: fade(true)},
	}
	skill := Row{
		{Title: "Red skill change", Value: stats.Fixed(g.Red.SkillChange, 3), Style: fade(g.Red.SkillChange >= 0)},
		{Title: "Blue skill change", Value: stats.Fixed(g.Blue.SkillChange, 3), Style: fade(g.Blue.SkillChange >= 0)},
	}
	rank := Row{
		{Title: "Red rank", Value: rankValue(g.Red), Style: fade(g.Red.RankChange >= 0)},
		{Title: "Blue rank", Value: rankValue(g.Blue), Style: fade(g.Blue.RankChange >= 0)},
	}
	rows := []Row{score, skill, rank}
	if g.PositionSwap {
		rows = append(rows, Row{{Title: "Position swap", Value: "yes"}})
	}
	return Page{Title: title, Base: base, Rows: rows}
}

func rankValue(s domain.Side) string {
	if s.NewRank == 0 {
		return "-"
	}
	return strconv.Itoa(s.NewRank) + " (" + stats.FormatRankChange(s.RankChange) + ")"
}
