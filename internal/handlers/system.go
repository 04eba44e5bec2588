package handlers

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const schemaFile = "001_initial_schema.sql"

// SchemaResult is the outcome of installing one backend's schema.
// Status is "success", "failed" or "skipped".
type SchemaResult struct {
	Status     string            `json:"status"`
	Error      string            `json:"error,omitempty"`
	Statements []StatementResult `json:"statements,omitempty"`
}

// StatementResult reports one ClickHouse DDL statement.
type StatementResult struct {
	Statement string `json:"statement"`
	Error     string `json:"error,omitempty"`
}

// InstallReport is the /system/install response.
type InstallReport struct {
	Status  string                  `json:"status"`
	Results map[string]SchemaResult `json:"results"`
	Error   bool                    `json:"error"`
}

// InstallDatabase applies the schema migrations
// @Summary Install Database Schema
// @Description Executes the SQL migrations for PostgreSQL and, when the prediction log is enabled, ClickHouse.
// @Description ClickHouse statements run one by one and each failure is reported.
// @Tags System
// @Produce json
// @Security AdminToken
// @Success 200 {object} InstallReport
// @Failure 401 {object} map[string]string
// @Failure 500 {object} InstallReport
// @Router /system/install [post]
func (h *Handler) InstallDatabase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	report := InstallReport{Status: "completed", Results: make(map[string]SchemaResult, 2)}

	if h.pg == nil {
		report.Results["postgres"] = SchemaResult{Status: "skipped"}
	} else {
		report.Results["postgres"] = h.installPostgres(ctx, filepath.Join(h.migrations, "postgres", schemaFile))
	}

	if h.ch == nil {
		report.Results["clickhouse"] = SchemaResult{Status: "skipped"}
	} else {
		report.Results["clickhouse"] = h.installClickHouse(ctx, filepath.Join(h.migrations, "clickhouse", schemaFile))
	}

	for _, res := range report.Results {
		if res.Status == "failed" {
			report.Error = true
		}
	}

	statusCode := http.StatusOK
	if report.Error {
		statusCode = http.StatusInternalServerError
	}
	h.jsonResponse(w, statusCode, report)
}

// RecomputeAll rebuilds every active team's statistics
// @Summary Recompute All Teams
// @Tags System
// @Produce json
// @Security AdminToken
// @Success 200 {object} logic.RecomputeSummary
// @Router /system/recompute [post]
func (h *Handler) RecomputeAll(w http.ResponseWriter, r *http.Request) {
	summary, err := h.stats.RecomputeAll(r.Context())
	if err != nil {
		h.serviceError(w, err, "Failed to recompute statistics")
		return
	}
	if err := h.trends.Invalidate(r.Context()); err != nil {
		h.logger.Warnw("Failed to invalidate trend cache", "error", err)
	}
	h.jsonResponse(w, http.StatusOK, summary)
}

// installPostgres runs the whole file in one Exec; pgx sends it with the
// simple protocol so the statements share one implicit transaction.
func (h *Handler) installPostgres(ctx context.Context, path string) SchemaResult {
	content, err := os.ReadFile(path)
	if err != nil {
		h.logger.Errorw("Failed to read schema file", "db", "PostgreSQL", "path", path, "error", err)
		return SchemaResult{Status: "failed", Error: err.Error()}
	}

	if _, err := h.pg.Exec(ctx, string(content)); err != nil {
		h.logger.Errorw("Failed to install schema", "db", "PostgreSQL", "error", err)
		return SchemaResult{Status: "failed", Error: err.Error()}
	}

	h.logger.Infow("Installed schema", "db", "PostgreSQL", "path", path)
	return SchemaResult{Status: "success"}
}

// installClickHouse executes every statement in the file, continuing past
// failures so the report names each one that did not apply.
func (h *Handler) installClickHouse(ctx context.Context, path string) SchemaResult {
	content, err := os.ReadFile(path)
	if err != nil {
		h.logger.Errorw("Failed to read schema file", "db", "ClickHouse", "path", path, "error", err)
		return SchemaResult{Status: "failed", Error: err.Error()}
	}

	stmts := splitStatements(string(content))
	res := SchemaResult{Status: "success", Statements: make([]StatementResult, 0, len(stmts))}
	failed := 0
	for _, stmt := range stmts {
		sr := StatementResult{Statement: statementLabel(stmt)}
		if err := h.ch.Exec(ctx, stmt); err != nil {
			h.logger.Warnw("Schema statement failed", "db", "ClickHouse", "statement", sr.Statement, "error", err)
			sr.Error = err.Error()
			failed++
		}
		res.Statements = append(res.Statements, sr)
	}

	if failed > 0 {
		res.Status = "failed"
		h.logger.Errorw("ClickHouse schema incomplete", "failed", failed, "total", len(stmts))
		return res
	}
	h.logger.Infow("Installed schema", "db", "ClickHouse", "statements", len(stmts))
	return res
}

// splitStatements cuts a DDL file on semicolons, dropping blanks and
// whole-line -- comments.
func splitStatements(sql string) []string {
	var out []string
	for _, raw := range strings.Split(sql, ";") {
		var lines []string
		for _, line := range strings.Split(raw, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "--") {
				continue
			}
			lines = append(lines, line)
		}
		if stmt := strings.TrimSpace(strings.Join(lines, "\n")); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

// statementLabel is the first line of stmt, clipped for the report.
func statementLabel(stmt string) string {
	first, _, _ := strings.Cut(stmt, "\n")
	first = strings.TrimSpace(first)
	if len(first) > 80 {
		return first[:80] + "..."
	}
	return first
}
