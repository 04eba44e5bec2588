// Command seeder loads the sample teams and fixtures into DATABASE_URL and
// rebuilds the team statistics from the seeded results.
package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/betanalytics/analytics-api/internal/logic"
	"github.com/betanalytics/analytics-api/internal/models"
	"github.com/betanalytics/analytics-api/internal/store"
)

var sampleTeams = []models.Team{
	{Name: "Real Madrid", ShortName: "RMA", Country: "Spain", League: "La Liga", Founded: 1902},
	{Name: "Barcelona", ShortName: "BAR", Country: "Spain", League: "La Liga", Founded: 1899},
	{Name: "Manchester City", ShortName: "MCI", Country: "England", League: "Premier League", Founded: 1880},
	{Name: "Liverpool", ShortName: "LIV", Country: "England", League: "Premier League", Founded: 1892},
	{Name: "Bayern Munich", ShortName: "BAY", Country: "Germany", League: "Bundesliga", Founded: 1900},
	{Name: "Paris Saint-Germain", ShortName: "PSG", Country: "France", League: "Ligue 1", Founded: 1970},
}

type sampleMatch struct {
	home, away string
	league     string
	round      string
	offset     time.Duration
	score      *[2]int
	odds       models.MatchOdds
}

func price(v float64) *float64 { return &v }

func sampleMatches() []sampleMatch {
	return []sampleMatch{
		{
			home: "Real Madrid", away: "Barcelona", league: "La Liga", round: "Matchday 20",
			offset: 48 * time.Hour,
			odds: models.MatchOdds{
				HomeOdds: price(1.85), DrawOdds: price(3.40), AwayOdds: price(4.20),
				Over25Odds: price(1.70), Under25Odds: price(2.10),
				BTTSYesOdds: price(1.65), BTTSNoOdds: price(2.25),
			},
		},
		{
			home: "Manchester City", away: "Liverpool", league: "Premier League", round: "Matchday 21",
			offset: 72 * time.Hour,
			odds: models.MatchOdds{
				HomeOdds: price(1.95), DrawOdds: price(3.60), AwayOdds: price(3.80),
				Over25Odds: price(1.50), Under25Odds: price(2.60),
				BTTSYesOdds: price(1.55), BTTSNoOdds: price(2.45),
			},
		},
		{
			home: "Real Madrid", away: "Manchester City", league: "Champions League", round: "Quarterfinals",
			offset: -7 * 24 * time.Hour, score: &[2]int{2, 1},
		},
		{
			home: "Barcelona", away: "Liverpool", league: "Champions League", round: "Quarterfinals",
			offset: -5 * 24 * time.Hour, score: &[2]int{1, 3},
		},
	}
}

func main() {
	dsn := flag.String("db", os.Getenv("DATABASE_URL"), "postgres:// or sqlite:// database URL")
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	log := logger.Sugar()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	st, closeDB, err := open(ctx, *dsn)
	if err != nil {
		log.Fatalw("Failed to open database", "error", err)
	}
	defer closeDB()

	ids, created, err := seedTeams(ctx, st)
	if err != nil {
		log.Fatalw("Failed to seed teams", "error", err)
	}
	log.Infow("Teams seeded", "created", created, "total", len(ids))

	existing, err := st.GetMatches(ctx, models.MatchFilter{Limit: 1})
	if err != nil {
		log.Fatalw("Failed to check matches", "error", err)
	}
	if len(existing) > 0 {
		log.Info("Matches already present, skipping fixtures")
	} else {
		n, err := seedMatches(ctx, st, ids, time.Now().UTC())
		if err != nil {
			log.Fatalw("Failed to seed matches", "error", err)
		}
		log.Infow("Matches seeded", "created", n)
	}

	summary, err := logic.NewStatisticsService(st, log).RecomputeAll(ctx)
	if err != nil {
		log.Fatalw("Failed to recompute statistics", "error", err)
	}
	log.Infow("Seed complete", "teams", summary.Teams, "updated", summary.Updated, "failed", summary.Failed)
}

func open(ctx context.Context, url string) (*store.Store, func() error, error) {
	if path, ok := strings.CutPrefix(url, "sqlite://"); ok {
		st, db, err := store.OpenSQLite(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		return st, db.Close, nil
	}

	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	return store.NewSQLStore(db, store.Postgres), db.Close, nil
}

// seedTeams creates the sample teams that do not exist yet and returns the
// id of every sample team by name.
func seedTeams(ctx context.Context, st *store.Store) (map[string]int64, int, error) {
	current, err := st.ListTeams(ctx, models.TeamFilter{Limit: 1000})
	if err != nil {
		return nil, 0, err
	}
	ids := make(map[string]int64, len(current))
	for _, t := range current {
		ids[t.Name] = t.ID
	}

	created := 0
	for _, t := range sampleTeams {
		if _, ok := ids[t.Name]; ok {
			continue
		}
		team := t
		if err := st.CreateTeam(ctx, &team); err != nil {
			return nil, created, err
		}
		ids[team.Name] = team.ID
		created++
	}
	return ids, created, nil
}

func seedMatches(ctx context.Context, st *store.Store, ids map[string]int64, now time.Time) (int, error) {
	n := 0
	for _, s := range sampleMatches() {
		m := &models.Match{
			HomeTeamID: ids[s.home],
			AwayTeamID: ids[s.away],
			League:     s.league,
			Season:     "2023-24",
			Round:      s.round,
			MatchDate:  now.Add(s.offset).Truncate(time.Minute),
			Status:     models.StatusScheduled,
			MatchOdds:  s.odds,
		}
		if s.score != nil {
			m.ApplyResult(s.score[0], s.score[1])
		}
		if err := st.CreateMatch(ctx, m); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
