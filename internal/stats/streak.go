package stats

import "tntfl-ladder/internal/domain"

type Outcome int

const (
	Draw Outcome = iota
	Win
	Loss
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "draw"
	}
}

// OutcomeFor classifies a game from the named player's point of view.
func OutcomeFor(name string, g domain.Game) Outcome {
	own, opp := g.SideOf(name)
	switch {
	case own.Score > opp.Score:
		return Win
	case own.Score < opp.Score:
		return Loss
	default:
		return Draw
	}
}

type Streaks struct {
	Current domain.Streak `json:"currentStreak"`
	Winning domain.Streak `json:"winningStreak"`
	Losing  domain.Streak `json:"losingStreak"`
	// History holds every closed, non-empty streak in order.
	History []domain.Streak `json:"-"`
}

// StreakRecords splits the games into runs of consecutive wins or losses.
//
// A game extends the current streak when its outcome matches the streak's
// polarity. Anything else, including a draw, closes the current streak and
// starts a new one seeded with this game; a draw seeds an empty loss-polarity
// streak. The accumulator starts as an empty win streak.
func StreakRecords(name string, games []domain.Game) Streaks {
	var history []domain.Streak
	current := domain.Streak{Win: true}

	for _, g := range games {
		outcome := OutcomeFor(name, g)
		won := outcome == Win
		lost := outcome == Loss

		if (won && current.Win) || (lost && !current.Win) {
			current.GameTimes = append(current.GameTimes, g.Date)
			continue
		}

		if len(current.GameTimes) > 0 {
			history = append(history, current)
		}
		current = domain.Streak{Win: won}
		if won || lost {
			current.GameTimes = []int64{g.Date}
		}
	}

	winning := domain.Streak{Win: true}
	losing := domain.Streak{Win: false}
	candidates := append(history[:len(history):len(history)], current)
	for _, s := range candidates {
		if s.Win && len(s.GameTimes) > len(winning.GameTimes) {
			winning = s
		}
		if !s.Win && len(s.GameTimes) > len(losing.GameTimes) {
			losing = s
		}
	}

	return Streaks{
		Current: current,
		Winning: winning,
		Losing:  losing,
		History: history,
	}
}
