// Package stats derives the player dashboard figures from a chronological
// game list. Every function is a pure single pass over already-loaded games.
package stats

import "tntfl-ladder/internal/domain"

// SkillChange is the named player's skill delta for one game.
func SkillChange(name string, g domain.Game) float64 {
	own, _ := g.SideOf(name)
	return own.SkillChange
}

// SkillLine folds the games into a cumulative skill sequence. The first
// element is always the {0, 0} baseline.
func SkillLine(name string, games []domain.Game) []domain.SkillRecord {
	line := make([]domain.SkillRecord, 0, len(games)+1)
	line = append(line, domain.SkillRecord{})
	skill := 0.0
	for _, g := range games {
		skill += SkillChange(name, g)
		line = append(line, domain.SkillRecord{Date: g.Date, Skill: skill})
	}
	return line
}

// SkillRecords returns the highest and lowest points of the skill line.
// Only a strictly greater (or lower) value replaces the current extreme, so
// the earliest occurrence wins and the baseline wins over a flat start.
func SkillRecords(name string, games []domain.Game) (highest, lowest domain.SkillRecord) {
	for _, rec := range SkillLine(name, games) {
		if rec.Skill > highest.Skill {
			highest = rec
		}
		if rec.Skill < lowest.Skill {
			lowest = rec
		}
	}
	return highest, lowest
}
