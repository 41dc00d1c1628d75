package stats

import (
	"fmt"
	"strconv"

	"tntfl-ladder/internal/constants"
	"tntfl-ladder/internal/domain"
)

// tail returns games[len-n:], where a negative start counts back from the
// end once more and anything before the first game clamps to it. Asking
// for 10 of 7 games gives the last 3.
func tail(games []domain.Game, n int) []domain.Game {
	start := len(games) - n
	if start < 0 {
		start += len(games)
	}
	if start < 0 {
		start = 0
	}
	if start > len(games) {
		start = len(games)
	}
	return games[start:]
}

// Overrated compares the final cumulative skill delta over the tail window
// of ten games with the average of the running sums over that window. The
// divisor stays ten even when the window is shorter.
func Overrated(name string, games []domain.Game) float64 {
	skill := 0.0
	total := 0.0
	for _, g := range tail(games, constants.OverratedWindow) {
		skill += SkillChange(name, g)
		total += skill
	}
	return skill - (total / constants.OverratedWindow)
}

type Today struct {
	Games       []domain.Game `json:"-"`
	Count       int           `json:"games"`
	SkillChange float64       `json:"skillChange"`
	RankChange  int           `json:"rankChange"`
}

// TodayFor sums the player's deltas over the trailing GamesToday games,
// windowed the same way as Overrated.
func TodayFor(player domain.Player, games []domain.Game) Today {
	today := Today{Games: tail(games, player.Total.GamesToday)}
	today.Count = len(today.Games)
	for _, g := range today.Games {
		own, _ := g.SideOf(player.Name)
		today.SkillChange += own.SkillChange
		today.RankChange += own.RankChange
	}
	return today
}

// GoalRatio has no zero guard: no goals against gives +Inf, and a player
// with no goals at all gives NaN.
func GoalRatio(t domain.Totals) float64 {
	return float64(t.For) / float64(t.Against)
}

func Draws(t domain.Totals) int {
	return t.Games - t.Wins - t.Losses
}

type SidePreference struct {
	Redness Float  `json:"redness"`
	Side    string `json:"side"`
	Percent Float  `json:"percent"`
}

// SidePreferenceFor reports the side played more often; exactly half goes
// to red.
func SidePreferenceFor(t domain.Totals) SidePreference {
	redness := float64(t.GamesAsRed) / float64(t.Games)
	pc := redness * 100
	if pc >= 50 {
		return SidePreference{Redness: Float(redness), Side: "red", Percent: Float(pc)}
	}
	return SidePreference{Redness: Float(redness), Side: "blue", Percent: Float(100 - pc)}
}

func (p SidePreference) String() string {
	return fmt.Sprintf("%s%% %s", Fixed(float64(p.Percent), 2), p.Side)
}

func IsTenNilWin(name string, g domain.Game) bool {
	own, opp := g.SideOf(name)
	return g.Involves(name) && own.Score == constants.TenNilWinningScore && opp.Score == 0
}

func TenNilWins(name string, games []domain.Game) int {
	n := 0
	for _, g := range games {
		if IsTenNilWin(name, g) {
			n++
		}
	}
	return n
}

// SharedGames returns the games in which opponent also played.
func SharedGames(opponent string, games []domain.Game) []domain.Game {
	shared := make([]domain.Game, 0)
	for _, g := range games {
		if g.Involves(opponent) {
			shared = append(shared, g)
		}
	}
	return shared
}

func FormatRankChange(change int) string {
	if change > 0 {
		return "+" + strconv.Itoa(change)
	}
	return strconv.Itoa(change)
}
