package store

import (
	"strings"
	"testing"
	"time"

	"github.com/betanalytics/analytics-api/internal/models"
)

func TestRebind(t *testing.T) {
	got := Postgres.Rebind("SELECT 1 WHERE a = ? AND b = ?")
	if got != "SELECT 1 WHERE a = $1 AND b = $2" {
		t.Errorf("Rebind() = %q", got)
	}
	if SQLite.Rebind("a = ?") != "a = ?" {
		t.Error("SQLite must keep ? placeholders")
	}
}

func TestBuildMatchQuery(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		dialect   Dialect
		filter    models.MatchFilter
		wantParts []string
		wantArgs  int
	}{
		{
			name:      "No filters",
			dialect:   Postgres,
			filter:    models.MatchFilter{},
			wantParts: []string{"WHERE 1=1 ORDER BY m.match_date DESC"},
			wantArgs:  0,
		},
		{
			name:    "Team and status",
			dialect: Postgres,
			filter:  models.MatchFilter{TeamID: 7, Status: models.StatusFinished, Order: models.SortAsc},
			wantParts: []string{
				"(m.home_team_id = $1 OR m.away_team_id = $2)",
				"m.status = $3",
				"ORDER BY m.match_date ASC",
			},
			wantArgs: 3,
		},
		{
			name:    "League and dates on sqlite",
			dialect: SQLite,
			filter:  models.MatchFilter{League: "premier", DateFrom: from, DateTo: from.AddDate(0, 1, 0), Limit: 20, Offset: 40},
			wantParts: []string{
				"m.league_name LIKE ?",
				"m.match_date >= ?",
				"m.match_date <= ?",
				"LIMIT 20 OFFSET 40",
			},
			wantArgs: 3,
		},
		{
			name:      "Oversized page is clamped",
			dialect:   Postgres,
			filter:    models.MatchFilter{Limit: 50000},
			wantParts: []string{"LIMIT 1000 OFFSET 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, args := BuildMatchQuery(tt.dialect, tt.filter)
			for _, part := range tt.wantParts {
				if !strings.Contains(got, part) {
					t.Errorf("BuildMatchQuery() = %v\nwant it to contain %v", got, part)
				}
			}
			if len(args) != tt.wantArgs {
				t.Errorf("BuildMatchQuery() args = %d, want %d", len(args), tt.wantArgs)
			}
		})
	}
}

func TestBuildTeamQuery(t *testing.T) {
	got, args := BuildTeamQuery(Postgres, models.TeamFilter{ActiveOnly: true, Country: "england", Limit: 10})

	for _, part := range []string{"is_active = $1", "country ILIKE $2", "LIMIT 10 OFFSET 0"} {
		if !strings.Contains(got, part) {
			t.Errorf("BuildTeamQuery() = %v\nwant it to contain %v", got, part)
		}
	}
	if len(args) != 2 || args[1] != "%england%" {
		t.Errorf("BuildTeamQuery() args = %v", args)
	}
}
