package models

// GameResult holds the final score of one game. Scores are pointers so a
// JSON null (not yet played) is distinguishable from a real zero.
type GameResult struct {
	AwayScore *int `json:"awayScore"`
	HomeScore *int `json:"homeScore"`
}

// Final reports whether both scores are present.
func (r GameResult) Final() bool {
	return r.AwayScore != nil && r.HomeScore != nil
}

// PoolResults maps game id to final result for one pool. Absence of a game
// id means the game has not been played yet.
type PoolResults map[string]GameResult

// ResultsDocument is the data/results.json shape: pool id to its results.
type ResultsDocument map[string]PoolResults
