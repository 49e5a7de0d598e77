package pickem

import (
	"testing"
	"time"

	"github.com/174hz/duelkings/models"
)

func testGame() models.Game {
	return models.Game{
		ID:        "g1",
		AwayTeam:  "Cowboys",
		HomeTeam:  "Eagles",
		StartTime: time.Date(2024, 9, 8, 17, 0, 0, 0, time.UTC),
		Spread:    models.Line{Away: 3, Home: -3},
		Moneyline: models.Line{Away: 150, Home: -180},
		Total:     47,
	}
}

func final(away, home int) models.GameResult {
	return models.GameResult{AwayScore: &away, HomeScore: &home}
}

func TestGradeGame(t *testing.T) {
	game := testGame()

	tests := []struct {
		name          string
		away, home    int
		wantSpread    string
		wantMoneyline string
		wantTotal     string
	}{
		// Adjusted: home 24-3=21 vs away 20+3=23.
		{"home wins outright, away covers", 20, 24, "away", "home", "under"},
		// Raw tie grades the moneyline away by strict comparison.
		{"tied score resolves away", 22, 22, "away", "away", "under"},
		// home 23+(-3)=20 vs away 17+3=20: adjusted tie resolves away.
		{"adjusted tie resolves away", 17, 23, "away", "home", "under"},
		// 24+23=47 lands exactly on the total.
		{"combined score on the number is a push", 24, 23, "away", "away", "push"},
		// home 28-3=25 vs away 24+3=27: home wins but away covers.
		{"over", 24, 28, "away", "home", "over"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok := GradeGame(game, final(tt.away, tt.home))
			if !ok {
				t.Fatal("GradeGame returned ok=false for a final score")
			}
			if out.SpreadWinner != tt.wantSpread {
				t.Errorf("SpreadWinner = %q, want %q", out.SpreadWinner, tt.wantSpread)
			}
			if out.MoneylineWinner != tt.wantMoneyline {
				t.Errorf("MoneylineWinner = %q, want %q", out.MoneylineWinner, tt.wantMoneyline)
			}
			if out.TotalWinner != tt.wantTotal {
				t.Errorf("TotalWinner = %q, want %q", out.TotalWinner, tt.wantTotal)
			}
		})
	}
}

func TestGradeGameNotFinal(t *testing.T) {
	game := testGame()
	twenty := 20

	tests := []struct {
		name   string
		result models.GameResult
	}{
		{"no result", models.GameResult{}},
		{"missing home score", models.GameResult{AwayScore: &twenty}},
		{"missing away score", models.GameResult{HomeScore: &twenty}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := GradeGame(game, tt.result); ok {
				t.Error("GradeGame returned ok=true without both scores")
			}
		})
	}
}
