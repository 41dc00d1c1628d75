package render

import (
	"fmt"
	"strconv"
	"tntfl-ladder/internal/domain"
	"tntfl-ladder/internal/stats"
)

// PlayerPage lays out a player summary in five rows: standing, results,
// goals, today and records.
func PlayerPage(s stats.Summary, base string) Page {
	p := s.Player
	overrated := float64(s.Overrated)
	goalRatio := float64(s.GoalRatio)

	rank := "-"
	if p.Rank != -1 {
		rank = strconv.Itoa(p.Rank)
	}

	standing := Row{
		{Title: "Current Ranking", Value: rank, Classes: nonEmpty(s.LeagueClass, s.InactiveClass)},
		{Title: "Skill", Value: stats.Fixed(p.Skill, 3)},
		{Title: "Overrated", Value: stats.Fixed(overrated, 3), Style: fade(overrated >= 0)},
		{Title: "Side preference", Value: s.SidePreference.String(), Style: sideColour(float64(s.SidePreference.Redness))},
	}
	results := Row{
		{Title: "Total games", Value: strconv.Itoa(p.Total.Games)},
		{Title: "Wins", Value: strconv.Itoa(p.Total.Wins)},
		{Title: "Losses", Value: strconv.Itoa(p.Total.Losses)},
		{Title: "Draws", Value: strconv.Itoa(s.Draws)},
	}
	goals := Row{
		{Title: "Goals for", Value: strconv.Itoa(p.Total.For)},
		{Title: "Goals against", Value: strconv.Itoa(p.Total.Against)},
		{Title: "Goal ratio", Value: stats.Fixed(goalRatio, 3), Style: fade(goalRatio > 1)},
		{Title: "10-0 wins", Value: strconv.Itoa(s.TenNilWins)},
	}
	today := Row{
		{Title: "Games today", Value: strconv.Itoa(s.Today.Count)},
		{Title: "Skill change today", Value: stats.Fixed(s.Today.SkillChange, 3), Style: fade(s.Today.SkillChange >= 0)},
		{Title: "Rank change today", Value: stats.FormatRankChange(s.Today.RankChange), Style: fade(s.Today.RankChange >= 0)},
		streakBox("Current streak", s.Streaks.Current, currentStreakValue(s.Streaks.Current)),
	}
	records := Row{
		skillBox("Highest ever skill", s.HighestSkill),
		skillBox("Lowest ever skill", s.LowestSkill),
		streakBox("Longest winning streak", s.Streaks.Winning, streakLength(s.Streaks.Winning)),
		streakBox("Longest losing streak", s.Streaks.Losing, streakLength(s.Streaks.Losing)),
	}

	return Page{Title: p.Name, Base: base, Rows: []Row{standing, results, goals, today, records}}
}

func skillBox(title string, rec domain.SkillRecord) Box {
	return Box{Title: title, Value: stats.Fixed(rec.Skill, 3), Kind: Instant, At: rec.Date}
}

func streakBox(title string, s domain.Streak, value string) Box {
	return Box{Title: title, Value: value, Kind: Duration, From: s.First(), To: s.Last()}
}

func currentStreakValue(s domain.Streak) string {
	if s.Len() == 0 {
		return "-"
	}
	if s.Win {
		return fmt.Sprintf("%d wins", s.Len())
	}
	return fmt.Sprintf("%d losses", s.Len())
}

func streakLength(s domain.Streak) string {
	if s.Len() == 0 {
		return "-"
	}
	return strconv.Itoa(s.Len())
}
