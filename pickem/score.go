package pickem

import "github.com/174hz/duelkings/models"

// ScoreEntry totals one entry against a pool: +1 for each bet-type category
// on each game where the recorded pick matches the graded winner. Games with
// no pick or no final result contribute nothing, as do bet types the user
// left blank. The result is always in [0, 3×len(pool.Games)].
func ScoreEntry(pool models.Pool, entry models.Entry, results models.PoolResults) int {
	score := 0

	for _, game := range pool.Games {
		pick, ok := entry.Picks[game.ID]
		if !ok {
			continue
		}

		outcome, ok := GradeGame(game, results[game.ID])
		if !ok {
			continue
		}

		// A blank pick side never equals a winner, and a push never
		// equals an over/under pick, so plain equality is enough.
		if pick.Moneyline == outcome.MoneylineWinner {
			score++
		}
		if pick.Spread == outcome.SpreadWinner {
			score++
		}
		if pick.Total == outcome.TotalWinner {
			score++
		}
	}

	return score
}
