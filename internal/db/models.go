package db

import (
	"time"
)

type Game struct {
	Date            int64
	RedName         string
	RedScore        int64
	RedSkillChange  float64
	RedRankChange   int64
	RedNewRank      int64
	BlueName        string
	BlueScore       int64
	BlueSkillChange float64
	BlueRankChange  int64
	BlueNewRank     int64
	PositionSwap    bool
	Deleted         bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Player struct {
	Name         string
	Rank         int64
	Skill        float64
	Active       bool
	Games        int64
	Wins         int64
	Losses       int64
	GoalsFor     int64
	GoalsAgainst int64
	GamesToday   int64
	GamesAsRed   int64
	LastFetchAt  time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type SkillHistory struct {
	ID          string
	PlayerName  string
	GameDate    int64
	Skill       float64
	SkillChange float64
	CreatedAt   time.Time
}
