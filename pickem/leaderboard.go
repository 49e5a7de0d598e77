package pickem

import (
	"sort"

	"github.com/174hz/duelkings/models"
)

// Standing is one leaderboard row.
type Standing struct {
	User  string `json:"user"`
	Score int    `json:"score"`
}

// Leaderboard scores every entry against the pool and returns rows sorted by
// score, highest first. Each entry produces exactly one row; duplicate users
// are kept as separate rows. The sort is stable, so entries with equal scores
// keep their submission order. An empty entry list yields an empty slice.
func Leaderboard(pool models.Pool, entries []models.Entry, results models.PoolResults) []Standing {
	rows := make([]Standing, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, Standing{
			User:  entry.User,
			Score: ScoreEntry(pool, entry, results),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Score > rows[j].Score
	})

	return rows
}
