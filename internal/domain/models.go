package domain

import (
	"time"
)

// Side is one half of a game: the player on that table side and how the
// game moved them.
type Side struct {
	Name        string  `json:"name"`
	Score       int     `json:"score"`
	SkillChange float64 `json:"skillChange"`
	RankChange  int     `json:"rankChange"`
	NewRank     int     `json:"newRank,omitempty"`
}

// Game dates are Unix seconds and double as the game id.
type Game struct {
	Date         int64 `json:"date"`
	Red          Side  `json:"red"`
	Blue         Side  `json:"blue"`
	PositionSwap bool  `json:"positionSwap,omitempty"`
	Deleted      bool  `json:"deleted,omitempty"`
}

// SideOf returns the named player's side followed by the opponent's.
// Anyone who is not red is treated as blue.
func (g Game) SideOf(name string) (own, opponent Side) {
	if g.Red.Name == name {
		return g.Red, g.Blue
	}
	return g.Blue, g.Red
}

func (g Game) Involves(name string) bool {
	return g.Red.Name == name || g.Blue.Name == name
}

type Totals struct {
	Games      int `json:"games"`
	Wins       int `json:"wins"`
	Losses     int `json:"losses"`
	For        int `json:"for"`
	Against    int `json:"against"`
	GamesToday int `json:"gamesToday"`
	GamesAsRed int `json:"gamesAsRed"`
}

// Player is the upstream player record. Rank is -1 when unranked.
type Player struct {
	Name        string    `json:"name"`
	Rank        int       `json:"rank"`
	Skill       float64   `json:"skill"`
	Active      bool      `json:"active"`
	Total       Totals    `json:"total"`
	LastFetchAt time.Time `json:"-"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

type SkillRecord struct {
	Date  int64   `json:"date"`
	Skill float64 `json:"skill"`
}

type Streak struct {
	Win       bool    `json:"win"`
	GameTimes []int64 `json:"gameTimes"`
}

func (s Streak) Len() int { return len(s.GameTimes) }

// First and Last return 0 for an empty streak.
func (s Streak) First() int64 {
	if len(s.GameTimes) == 0 {
		return 0
	}
	return s.GameTimes[0]
}

func (s Streak) Last() int64 {
	if len(s.GameTimes) == 0 {
		return 0
	}
	return s.GameTimes[len(s.GameTimes)-1]
}

// SkillHistory is one persisted point of a player's cumulative skill line.
type SkillHistory struct {
	ID          string
	PlayerName  string
	GameDate    int64
	Skill       float64
	SkillChange float64
	CreatedAt   time.Time
}
