package pickem

import (
	"fmt"
	"sort"

	"github.com/174hz/duelkings/models"
)

// ValidatePool checks one authored pool and returns a human-readable error
// list, empty when the pool is well-formed. These are authoring mistakes;
// the grading functions assume well-formed input and do not re-check.
func ValidatePool(pool models.Pool) []string {
	var errors []string

	if pool.ID == "" {
		errors = append(errors, "Missing pool.id")
	}
	if pool.Sport == "" {
		errors = append(errors, "Missing pool.sport")
	}
	if pool.Label == "" {
		errors = append(errors, "Missing pool.label")
	}
	if pool.Deadline.IsZero() {
		errors = append(errors, "Missing pool.deadline")
	}
	if len(pool.Games) == 0 {
		errors = append(errors, "Pool must contain at least one game")
	}

	ids := map[string]bool{}
	for i, g := range pool.Games {
		prefix := fmt.Sprintf("Game[%d]", i)

		if g.ID == "" {
			errors = append(errors, prefix+": missing id")
		} else if ids[g.ID] {
			errors = append(errors, fmt.Sprintf("%s: duplicate id %s", prefix, g.ID))
		} else {
			ids[g.ID] = true
		}

		if g.AwayTeam == "" {
			errors = append(errors, prefix+": missing awayTeam")
		}
		if g.HomeTeam == "" {
			errors = append(errors, prefix+": missing homeTeam")
		}
		if g.StartTime.IsZero() {
			errors = append(errors, prefix+": missing startTime")
		}

		// Spread handicaps always mirror each other.
		if g.Spread.Away != -g.Spread.Home {
			errors = append(errors, prefix+": invalid spread")
		}
		// A moneyline price of zero does not exist; it means the side
		// was never authored.
		if g.Moneyline.Away == 0 || g.Moneyline.Home == 0 {
			errors = append(errors, prefix+": invalid moneyline")
		}
		if g.Total == 0 {
			errors = append(errors, prefix+": missing total")
		}
	}

	return errors
}

// ValidatePools checks a whole pools document: the currentPoolId pointer,
// pool id uniqueness, and every pool via ValidatePool.
func ValidatePools(doc models.PoolsDocument) []string {
	var errors []string

	if doc.CurrentPoolID == "" {
		errors = append(errors, "Missing currentPoolId")
	}

	ids := map[string]bool{}
	for i, pool := range doc.Pools {
		if pool.ID == "" {
			errors = append(errors, fmt.Sprintf("Pool[%d]: missing id", i))
		} else if ids[pool.ID] {
			errors = append(errors, fmt.Sprintf("Pool[%d]: duplicate id %s", i, pool.ID))
		} else {
			ids[pool.ID] = true
		}

		for _, e := range ValidatePool(pool) {
			errors = append(errors, fmt.Sprintf("Pool[%s]: %s", pool.ID, e))
		}
	}

	return errors
}

// PoolsBySport groups pools by sport tag, each group ordered by deadline.
func PoolsBySport(doc models.PoolsDocument) map[string][]models.Pool {
	bySport := map[string][]models.Pool{}
	for _, pool := range doc.Pools {
		bySport[pool.Sport] = append(bySport[pool.Sport], pool)
	}
	for _, list := range bySport {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Deadline.Before(list[j].Deadline)
		})
	}
	return bySport
}

// NextPoolID returns the pool that follows currentPoolId within a sport's
// deadline order, wrapping to the first. ok is false when the sport has no
// pools.
func NextPoolID(doc models.PoolsDocument, sport string) (string, bool) {
	list := PoolsBySport(doc)[sport]
	if len(list) == 0 {
		return "", false
	}

	idx := -1
	for i, p := range list {
		if p.ID == doc.CurrentPoolID {
			idx = i
			break
		}
	}
	if idx == -1 || idx == len(list)-1 {
		return list[0].ID, true
	}
	return list[idx+1].ID, true
}

// RotateCurrentPool advances the document's currentPoolId to the next pool
// of the given sport. It reports whether anything changed.
func RotateCurrentPool(doc *models.PoolsDocument, sport string) bool {
	next, ok := NextPoolID(*doc, sport)
	if !ok {
		return false
	}
	doc.CurrentPoolID = next
	return true
}
