package pickem

import (
	"strings"
	"testing"
	"time"

	"github.com/174hz/duelkings/models"
)

func validPool() models.Pool {
	return models.Pool{
		ID:       "nfl-week-1",
		Sport:    "nfl",
		Label:    "NFL Week 1",
		Deadline: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		Status:   models.StatusOpen,
		Games:    []models.Game{testGame()},
	}
}

func TestValidatePoolOK(t *testing.T) {
	if errs := ValidatePool(validPool()); len(errs) != 0 {
		t.Errorf("ValidatePool(valid) = %v, want no errors", errs)
	}
}

func TestValidatePool(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Pool)
		want   string
	}{
		{"missing id", func(p *models.Pool) { p.ID = "" }, "Missing pool.id"},
		{"missing sport", func(p *models.Pool) { p.Sport = "" }, "Missing pool.sport"},
		{"missing label", func(p *models.Pool) { p.Label = "" }, "Missing pool.label"},
		{"missing deadline", func(p *models.Pool) { p.Deadline = time.Time{} }, "Missing pool.deadline"},
		{"no games", func(p *models.Pool) { p.Games = nil }, "Pool must contain at least one game"},
		{"missing game id", func(p *models.Pool) { p.Games[0].ID = "" }, "Game[0]: missing id"},
		{"duplicate game id", func(p *models.Pool) { p.Games = append(p.Games, p.Games[0]) }, "Game[1]: duplicate id g1"},
		{"missing away team", func(p *models.Pool) { p.Games[0].AwayTeam = "" }, "Game[0]: missing awayTeam"},
		{"missing home team", func(p *models.Pool) { p.Games[0].HomeTeam = "" }, "Game[0]: missing homeTeam"},
		{"missing start time", func(p *models.Pool) { p.Games[0].StartTime = time.Time{} }, "Game[0]: missing startTime"},
		{"unmirrored spread", func(p *models.Pool) { p.Games[0].Spread.Home = -4 }, "Game[0]: invalid spread"},
		{"zero moneyline side", func(p *models.Pool) { p.Games[0].Moneyline.Away = 0 }, "Game[0]: invalid moneyline"},
		{"missing total", func(p *models.Pool) { p.Games[0].Total = 0 }, "Game[0]: missing total"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := validPool()
			tt.mutate(&pool)
			errs := ValidatePool(pool)
			if !contains(errs, tt.want) {
				t.Errorf("ValidatePool = %v, want it to contain %q", errs, tt.want)
			}
		})
	}
}

func TestValidatePools(t *testing.T) {
	a := validPool()
	b := validPool()
	b.Label = "NFL Week 1 again"
	doc := models.PoolsDocument{Pools: []models.Pool{a, b}}

	errs := ValidatePools(doc)
	if !contains(errs, "Missing currentPoolId") {
		t.Errorf("want missing currentPoolId error, got %v", errs)
	}
	if !contains(errs, "Pool[1]: duplicate id nfl-week-1") {
		t.Errorf("want duplicate pool id error, got %v", errs)
	}

	// Per-pool errors are prefixed with the pool id.
	doc.CurrentPoolID = a.ID
	doc.Pools[1].ID = "nfl-week-2"
	doc.Pools[1].Games[0].Total = 0
	errs = ValidatePools(doc)
	found := false
	for _, e := range errs {
		if strings.HasPrefix(e, "Pool[nfl-week-2]:") {
			found = true
		}
	}
	if !found {
		t.Errorf("want a Pool[nfl-week-2] prefixed error, got %v", errs)
	}
}

func TestNextPoolID(t *testing.T) {
	week := func(id string, day int) models.Pool {
		p := validPool()
		p.ID = id
		p.Deadline = time.Date(2024, 9, day, 0, 0, 0, 0, time.UTC)
		return p
	}
	doc := models.PoolsDocument{
		CurrentPoolID: "w1",
		// Authored out of deadline order on purpose.
		Pools: []models.Pool{week("w2", 8), week("w1", 1), week("w3", 15)},
	}

	tests := []struct {
		current string
		want    string
	}{
		{"w1", "w2"},
		{"w2", "w3"},
		{"w3", "w1"}, // wrap
		{"unknown", "w1"},
	}
	for _, tt := range tests {
		doc.CurrentPoolID = tt.current
		got, ok := NextPoolID(doc, "nfl")
		if !ok || got != tt.want {
			t.Errorf("NextPoolID(current=%s) = %q, %v; want %q, true", tt.current, got, ok, tt.want)
		}
	}

	if _, ok := NextPoolID(doc, "nba"); ok {
		t.Error("NextPoolID for a sport with no pools returned ok=true")
	}

	doc.CurrentPoolID = "w1"
	if !RotateCurrentPool(&doc, "nfl") || doc.CurrentPoolID != "w2" {
		t.Errorf("RotateCurrentPool left currentPoolId = %q, want w2", doc.CurrentPoolID)
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
