package stats

import (
	"time"

	"tntfl-ladder/internal/constants"
	"tntfl-ladder/internal/domain"
)

// Summary is everything the player page shows.
type Summary struct {
	Player           domain.Player      `json:"player"`
	NumActivePlayers int                `json:"numActivePlayers"`
	LastPlayed       int64              `json:"lastPlayed"`
	LeagueClass      string             `json:"leagueClass,omitempty"`
	InactiveClass    string             `json:"inactiveClass,omitempty"`
	Overrated        Float              `json:"overrated"`
	SidePreference   SidePreference     `json:"sidePreference"`
	Draws            int                `json:"draws"`
	GoalRatio        Float              `json:"goalRatio"`
	TenNilWins       int                `json:"tenNilWins"`
	Today            Today              `json:"today"`
	HighestSkill     domain.SkillRecord `json:"highestSkill"`
	LowestSkill      domain.SkillRecord `json:"lowestSkill"`
	Streaks          Streaks            `json:"streaks"`
}

// Summarize runs every aggregate over the player's games, oldest first.
func Summarize(player domain.Player, games []domain.Game, numActivePlayers int, now time.Time) Summary {
	s := Summary{
		Player:           player,
		NumActivePlayers: numActivePlayers,
		Overrated:        Float(Overrated(player.Name, games)),
		SidePreference:   SidePreferenceFor(player.Total),
		Draws:            Draws(player.Total),
		GoalRatio:        Float(GoalRatio(player.Total)),
		TenNilWins:       TenNilWins(player.Name, games),
		Today:            TodayFor(player, games),
		Streaks:          StreakRecords(player.Name, games),
	}
	if len(games) > 0 {
		s.LastPlayed = games[len(games)-1].Date
	}
	s.HighestSkill, s.LowestSkill = SkillRecords(player.Name, games)
	s.LeagueClass = LeagueClass(player.Rank, numActivePlayers)
	s.InactiveClass = NearlyInactiveClass(s.LastPlayed, now)
	return s
}

// LeagueClass buckets a rank into the ladder's leagues. Unranked players
// (rank -1) get no class.
func LeagueClass(rank, numActivePlayers int) string {
	switch {
	case rank < 1:
		return ""
	case rank == 1:
		return "ladder-first"
	case float64(rank) <= float64(numActivePlayers)*0.1:
		return "ladder-gold"
	case float64(rank) <= float64(numActivePlayers)*0.3:
		return "ladder-silver"
	default:
		return "ladder-bronze"
	}
}

// NearlyInactiveClass flags players within NearlyInactiveWarningDays of
// dropping off the ladder.
func NearlyInactiveClass(lastPlayed int64, now time.Time) string {
	if lastPlayed == 0 {
		return ""
	}
	warnAfter := int64(60 * 60 * 24 * (constants.DaysInactive - constants.NearlyInactiveWarningDays))
	idle := now.Unix() - lastPlayed
	if idle > warnAfter && idle <= secondsInactive {
		return "nearly-inactive"
	}
	return ""
}
