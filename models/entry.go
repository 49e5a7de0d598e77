package models

// Sides a pick can take. Spread and moneyline picks are away/home;
// total picks are over/under.
const (
	SideAway  = "away"
	SideHome  = "home"
	SideOver  = "over"
	SideUnder = "under"
)

// TotalPush is the total-line outcome when the combined score lands exactly
// on the published number. It is never a legal pick value, so a push can
// never be matched.
const TotalPush = "push"

// Pick records a user's chosen side per bet type for one game. Any subset
// of the three bet types may be present.
type Pick struct {
	Spread    string `json:"spread,omitempty"`
	Moneyline string `json:"moneyline,omitempty"`
	Total     string `json:"total,omitempty"`
}

// Empty reports whether no bet type has been chosen.
func (p Pick) Empty() bool {
	return p.Spread == "" && p.Moneyline == "" && p.Total == ""
}

// Entry is one user's submitted picks for a pool, keyed by game id.
// One entry per (user, pool) is a caller invariant, not enforced here.
type Entry struct {
	User   string          `json:"user"`
	PoolID string          `json:"poolId,omitempty"`
	Picks  map[string]Pick `json:"picks"`
}
