package pickem

import (
	"testing"
	"time"

	"github.com/174hz/duelkings/models"
)

func lifecyclePool(status models.PoolStatus) models.Pool {
	game := testGame()
	game.StartTime = time.Date(2024, 9, 1, 17, 0, 0, 0, time.UTC)
	return models.Pool{
		ID:       "p1",
		Sport:    "nfl",
		Label:    "Week 1",
		Deadline: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		Status:   status,
		Games:    []models.Game{game},
	}
}

func TestEvaluateStatus(t *testing.T) {
	beforeDeadline := time.Date(2024, 8, 30, 0, 0, 0, 0, time.UTC)
	afterDeadline := time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC)
	scored := models.PoolResults{"g1": final(20, 24)}

	tests := []struct {
		name    string
		status  models.PoolStatus
		results models.PoolResults
		now     time.Time
		opts    StatusOptions
		want    models.PoolStatus
	}{
		{
			"open before deadline stays open",
			models.StatusOpen, nil, beforeDeadline,
			StatusOptions{Policy: CloseAtDeadline},
			models.StatusOpen,
		},
		{
			"open past deadline closes",
			models.StatusOpen, nil, afterDeadline,
			StatusOptions{Policy: CloseAtDeadline},
			models.StatusClosed,
		},
		{
			"closes exactly at the deadline",
			models.StatusOpen, nil, time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
			StatusOptions{Policy: CloseAtDeadline},
			models.StatusClosed,
		},
		{
			"all games scored completes regardless of time",
			models.StatusOpen, scored, beforeDeadline,
			StatusOptions{Policy: CloseAtDeadline},
			models.StatusCompleted,
		},
		{
			"closed pool completes once scored",
			models.StatusClosed, scored, afterDeadline,
			StatusOptions{Policy: CloseAtDeadline},
			models.StatusCompleted,
		},
		{
			"closed never reopens by time",
			models.StatusClosed, nil, beforeDeadline,
			StatusOptions{Policy: CloseAtDeadline},
			models.StatusClosed,
		},
		{
			"preview forces a closed pool open",
			models.StatusClosed, nil, afterDeadline,
			StatusOptions{Policy: CloseAtDeadline, PreviewOpen: true},
			models.StatusOpen,
		},
		{
			"preview keeps an open pool open past the deadline",
			models.StatusOpen, nil, afterDeadline,
			StatusOptions{Policy: CloseAtDeadline, PreviewOpen: true},
			models.StatusOpen,
		},
		{
			"preview never resurrects a completed pool",
			models.StatusClosed, scored, afterDeadline,
			StatusOptions{Policy: CloseAtDeadline, PreviewOpen: true},
			models.StatusCompleted,
		},
		{
			"stored completed status sticks without results",
			models.StatusCompleted, nil, beforeDeadline,
			StatusOptions{Policy: CloseAtDeadline, PreviewOpen: true},
			models.StatusCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := lifecyclePool(tt.status)
			got := EvaluateStatus(pool, tt.results, tt.now, tt.opts)
			if got != tt.want {
				t.Errorf("EvaluateStatus = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEvaluateStatusFirstGamePolicy(t *testing.T) {
	pool := lifecyclePool(models.StatusOpen)
	opts := StatusOptions{Policy: CloseAtFirstGame}

	// Past the deadline but before the earliest kickoff: still open.
	beforeKickoff := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	if got := EvaluateStatus(pool, nil, beforeKickoff, opts); got != models.StatusOpen {
		t.Errorf("before kickoff: got %q, want open", got)
	}

	afterKickoff := time.Date(2024, 9, 1, 17, 0, 0, 0, time.UTC)
	if got := EvaluateStatus(pool, nil, afterKickoff, opts); got != models.StatusClosed {
		t.Errorf("at kickoff: got %q, want closed", got)
	}

	// Earlier second game moves the threshold up.
	early := testGame()
	early.ID = "g0"
	early.StartTime = time.Date(2024, 8, 31, 17, 0, 0, 0, time.UTC)
	pool.Games = append(pool.Games, early)
	if got := EvaluateStatus(pool, nil, beforeKickoff, opts); got != models.StatusClosed {
		t.Errorf("after earliest kickoff: got %q, want closed", got)
	}
}

func TestEvaluateStatusNoGames(t *testing.T) {
	pool := lifecyclePool(models.StatusOpen)
	pool.Games = nil
	later := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	// No games means no kickoff threshold under the first-game policy,
	// and never completion: there is nothing to score.
	if got := EvaluateStatus(pool, nil, later, StatusOptions{Policy: CloseAtFirstGame}); got != models.StatusOpen {
		t.Errorf("first-game policy with no games: got %q, want open", got)
	}
	if got := EvaluateStatus(pool, models.PoolResults{}, later, StatusOptions{Policy: CloseAtDeadline}); got != models.StatusClosed {
		t.Errorf("deadline policy with no games: got %q, want closed", got)
	}
}
