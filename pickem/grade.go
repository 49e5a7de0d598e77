// Package pickem holds the pool lifecycle, grading, scoring and leaderboard
// rules. Everything here is a pure function over the record types in models;
// callers own all I/O and any persistence of what these functions compute.
package pickem

import "github.com/174hz/duelkings/models"

// GameOutcome is the winning side of each bet type for one final game.
type GameOutcome struct {
	SpreadWinner    string `json:"spreadWinner"`
	MoneylineWinner string `json:"moneylineWinner"`
	TotalWinner     string `json:"totalWinner"`
}

// GradeGame determines the winning side of each bet type from a final score.
// It returns ok=false when either score is still null, meaning the game is
// not yet gradable.
//
// Ties resolve by strict comparison: an equal raw score grades the moneyline
// to the away side, and an equal handicap-adjusted score grades the spread to
// the away side. Only the total line models a tie explicitly, as a push.
func GradeGame(game models.Game, result models.GameResult) (GameOutcome, bool) {
	if !result.Final() {
		return GameOutcome{}, false
	}

	away := float64(*result.AwayScore)
	home := float64(*result.HomeScore)

	out := GameOutcome{
		MoneylineWinner: models.SideAway,
		SpreadWinner:    models.SideAway,
	}
	if home > away {
		out.MoneylineWinner = models.SideHome
	}
	if home+game.Spread.Home > away+game.Spread.Away {
		out.SpreadWinner = models.SideHome
	}

	total := home + away
	switch {
	case total > game.Total:
		out.TotalWinner = models.SideOver
	case total < game.Total:
		out.TotalWinner = models.SideUnder
	default:
		out.TotalWinner = models.TotalPush
	}

	return out, true
}
