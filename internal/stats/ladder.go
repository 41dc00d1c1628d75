package stats

import (
	"sort"

	"tntfl-ladder/internal/constants"
	"tntfl-ladder/internal/domain"
)

const secondsInactive = 60 * 60 * 24 * constants.DaysInactive

type Standing struct {
	Rank  int     `json:"rank"`
	Name  string  `json:"name"`
	Skill float64 `json:"skill"`
	// ActiveUntil is the Unix time the player drops off the ladder.
	ActiveUntil int64 `json:"activeUntil"`
}

type ladderPlayer struct {
	name        string
	skill       float64
	activeUntil int64
}

// Ladder replays games to reconstruct ladder positions. Players are ranked
// by skill among those who played within the last DaysInactive days; ties
// keep first-seen order.
type Ladder struct {
	players map[string]*ladderPlayer
	seen    []*ladderPlayer
}

func NewLadder() *Ladder {
	return &Ladder{players: make(map[string]*ladderPlayer)}
}

func (l *Ladder) player(name string) *ladderPlayer {
	p, ok := l.players[name]
	if !ok {
		p = &ladderPlayer{name: name}
		l.players[name] = p
		l.seen = append(l.seen, p)
	}
	return p
}

func (l *Ladder) active(at int64) []*ladderPlayer {
	active := make([]*ladderPlayer, 0, len(l.seen))
	for _, p := range l.seen {
		if p.activeUntil-at > 0 {
			active = append(active, p)
		}
	}
	return active
}

func sortBySkill(players []*ladderPlayer) {
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].skill > players[j].skill
	})
}

func indexOf(players []*ladderPlayer, p *ladderPlayer) int {
	for i, q := range players {
		if q == p {
			return i
		}
	}
	return -1
}

// Apply replays the games in order and returns copies with NewRank and
// RankChange filled in for both sides. Deleted games are returned untouched
// and do not move the ladder. A rise is a positive RankChange; a player who
// was unranked before the game gets 0.
func (l *Ladder) Apply(games []domain.Game) []domain.Game {
	out := make([]domain.Game, len(games))
	for i, g := range games {
		out[i] = g
		if g.Deleted {
			continue
		}
		red := l.player(g.Red.Name)
		blue := l.player(g.Blue.Name)

		sorted := l.active(g.Date - 1)
		sortBySkill(sorted)
		redBefore := indexOf(sorted, red)
		blueBefore := indexOf(sorted, blue)

		red.skill -= g.Blue.SkillChange
		blue.skill += g.Blue.SkillChange
		until := g.Date + secondsInactive
		red.activeUntil = until
		blue.activeUntil = until

		if redBefore < 0 {
			sorted = append(sorted, red)
		}
		if blueBefore < 0 {
			sorted = append(sorted, blue)
		}
		sortBySkill(sorted)
		redAfter := indexOf(sorted, red)
		blueAfter := indexOf(sorted, blue)

		out[i].Red.NewRank = redAfter + 1
		out[i].Blue.NewRank = blueAfter + 1
		out[i].Red.RankChange = 0
		out[i].Blue.RankChange = 0
		if redBefore >= 0 {
			out[i].Red.RankChange = redBefore - redAfter
		}
		if blueBefore >= 0 {
			out[i].Blue.RankChange = blueBefore - blueAfter
		}
	}
	return out
}

// Standings lists the players active at the given time, best first.
func (l *Ladder) Standings(at int64) []Standing {
	active := l.active(at)
	sortBySkill(active)
	out := make([]Standing, len(active))
	for i, p := range active {
		out[i] = Standing{Rank: i + 1, Name: p.name, Skill: p.skill, ActiveUntil: p.activeUntil}
	}
	return out
}
