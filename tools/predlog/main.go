// Command predlog applies the ClickHouse schema and prints a per-league
// summary of the prediction log. It reads CLICKHOUSE_URL.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
)

func main() {
	ctx := context.Background()

	opts, err := clickhouse.ParseDSN(os.Getenv("CLICKHOUSE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	conn, err := clickhouse.Open(opts)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	migration, err := os.ReadFile("migrations/clickhouse/001_initial_schema.sql")
	if err != nil {
		log.Fatal(err)
	}
	for _, stmt := range strings.Split(string(migration), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if err := conn.Exec(ctx, stmt); err != nil {
			log.Fatal(err)
		}
	}
	fmt.Println("Schema applied")

	rows, err := conn.Query(ctx, `
		SELECT league_name, count(), uniqExact(match_id), avg(home_win_probability), countIf(data_sufficient = 0)
		FROM prediction_log
		GROUP BY league_name
		ORDER BY count() DESC
	`)
	if err != nil {
		log.Fatal(err)
	}
	defer rows.Close()

	fmt.Printf("%-30s %10s %8s %8s %12s\n", "league", "snapshots", "matches", "avg_1", "insufficient")
	for rows.Next() {
		var (
			league               string
			total, matches, thin uint64
			avgHome              float64
		)
		if err := rows.Scan(&league, &total, &matches, &avgHome, &thin); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%-30s %10d %8d %8.3f %12d\n", league, total, matches, avgHome, thin)
	}
	if err := rows.Err(); err != nil {
		log.Fatal(err)
	}
}
