package pickem

import (
	"time"

	"github.com/174hz/duelkings/models"
)

// ClosingPolicy selects how a pool's closing threshold is derived. Both
// policies exist in authored data in the wild, so the choice is
// configuration, not a code fork.
type ClosingPolicy string

const (
	// CloseAtDeadline closes an open pool at its authored deadline.
	CloseAtDeadline ClosingPolicy = "deadline"
	// CloseAtFirstGame closes an open pool when its earliest game starts.
	CloseAtFirstGame ClosingPolicy = "earliestGameStart"
)

// StatusOptions carries the evaluation knobs for EvaluateStatus. PreviewOpen
// is the test/preview override, threaded explicitly per call rather than held
// in any shared flag.
type StatusOptions struct {
	Policy      ClosingPolicy
	PreviewOpen bool
}

// EvaluateStatus computes a pool's current lifecycle status. It is pure: the
// caller decides whether to persist the returned value.
//
// Precedence, highest first:
//
//  1. A completed pool stays completed. Once every game has both scores the
//     pool reports completed no matter what, including under PreviewOpen,
//     since editing picks after all results are in is meaningless.
//  2. PreviewOpen forces open without consulting time or results.
//  3. An open pool at or past its closing threshold becomes closed.
//
// Status only moves forward: a closed pool never reopens by time, and a pool
// whose stored status is already completed is reported completed regardless
// of the results on hand.
func EvaluateStatus(pool models.Pool, results models.PoolResults, now time.Time, opts StatusOptions) models.PoolStatus {
	if pool.Status == models.StatusCompleted || allFinal(pool, results) {
		return models.StatusCompleted
	}

	if opts.PreviewOpen {
		return models.StatusOpen
	}

	if pool.Status == models.StatusOpen {
		if threshold, ok := closingThreshold(pool, opts.Policy); ok && !now.Before(threshold) {
			return models.StatusClosed
		}
	}

	return pool.Status
}

// allFinal reports whether every game in the pool has a final result. A pool
// with no games is never considered completed.
func allFinal(pool models.Pool, results models.PoolResults) bool {
	if len(pool.Games) == 0 {
		return false
	}
	for _, game := range pool.Games {
		if !results[game.ID].Final() {
			return false
		}
	}
	return true
}

// closingThreshold returns the instant past which an open pool closes. Under
// CloseAtFirstGame a pool with no games has no threshold and stays open.
func closingThreshold(pool models.Pool, policy ClosingPolicy) (time.Time, bool) {
	if policy != CloseAtFirstGame {
		return pool.Deadline, true
	}

	var earliest time.Time
	for i, game := range pool.Games {
		if i == 0 || game.StartTime.Before(earliest) {
			earliest = game.StartTime
		}
	}
	if earliest.IsZero() {
		return time.Time{}, false
	}
	return earliest, true
}
