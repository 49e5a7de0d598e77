package models

import "time"

// PoolStatus is the lifecycle state of a pool.
type PoolStatus string

const (
	StatusOpen      PoolStatus = "open"
	StatusClosed    PoolStatus = "closed"
	StatusCompleted PoolStatus = "completed"
)

// Line holds the away/home sides of a published betting line.
type Line struct {
	Away float64 `json:"away"`
	Home float64 `json:"home"`
}

// Game is one matchup inside a pool, with its published lines.
// Games are immutable once a pool is published.
type Game struct {
	ID        string    `json:"id"`
	AwayTeam  string    `json:"awayTeam"`
	HomeTeam  string    `json:"homeTeam"`
	StartTime time.Time `json:"startTime"`
	Spread    Line      `json:"spread"`
	Moneyline Line      `json:"moneyline"`
	Total     float64   `json:"total"`
}

// Pool is a themed group of games open for picks over a shared window.
// Game IDs are unique within a pool; pool IDs are unique system-wide.
type Pool struct {
	ID       string     `json:"id"`
	Sport    string     `json:"sport"`
	Label    string     `json:"label"`
	Deadline time.Time  `json:"deadline"`
	Status   PoolStatus `json:"status"`
	Games    []Game     `json:"games"`
}

// PoolsDocument is the authored data/pools.json envelope.
type PoolsDocument struct {
	CurrentPoolID string `json:"currentPoolId"`
	Pools         []Pool `json:"pools"`
}

// FindPool returns the pool with the given id, or false when absent.
func (d PoolsDocument) FindPool(id string) (Pool, bool) {
	for _, p := range d.Pools {
		if p.ID == id {
			return p, true
		}
	}
	return Pool{}, false
}

// CurrentPool returns the pool named by currentPoolId, falling back to the
// first pool when the id is missing or unknown.
func (d PoolsDocument) CurrentPool() (Pool, bool) {
	if p, ok := d.FindPool(d.CurrentPoolID); ok {
		return p, true
	}
	if len(d.Pools) > 0 {
		return d.Pools[0], true
	}
	return Pool{}, false
}
