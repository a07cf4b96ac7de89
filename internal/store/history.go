package store

import (
	"database/sql"
	"encoding/json"
	"time"

	"go-property-analyzer/internal/apperr"
	"go-property-analyzer/internal/logger"
	"go-property-analyzer/internal/model"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// History is the SQLite-backed log of executed queries.
type History struct {
	db *sql.DB
}

// OpenHistory opens (or creates) the history database at path and makes
// sure its tables exist. ":memory:" gives a throwaway log.
func OpenHistory(path string) (*History, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, apperr.Wrapf(err, "open history %s", path)
	}
	// A single connection keeps ":memory:" databases coherent.
	db.SetMaxOpenConns(1)

	h := NewHistory(db)
	if err := h.Init(); err != nil {
		db.Close()
		return nil, err
	}
	return h, nil
}

// NewHistory wraps an already opened database.
func NewHistory(db *sql.DB) *History {
	return &History{db: db}
}

// Init creates the tables if they do not exist.
func (h *History) Init() error {
	queryTable := `
	CREATE TABLE IF NOT EXISTS queries (
		id TEXT PRIMARY KEY,
		operation TEXT,
		dataset TEXT,
		params TEXT,
		result_count INTEGER,
		status TEXT,
		error_message TEXT,
		created_at DATETIME
	);
	`
	if _, err := h.db.Exec(queryTable); err != nil {
		return apperr.Wrap(err, "create queries table")
	}
	return nil
}

// Close releases the database.
func (h *History) Close() error {
	return h.db.Close()
}

// SaveQuery stores run, assigning an ID and timestamp when unset, and
// returns the stored run.
func (h *History) SaveQuery(run model.QueryRun) (model.QueryRun, error) {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	if run.Status == "" {
		run.Status = model.StatusCompleted
	}

	paramsJSON, err := json.Marshal(run.Params)
	if err != nil {
		return run, apperr.Wrap(err, "encode query params")
	}

	_, err = h.db.Exec(`INSERT INTO queries (id, operation, dataset, params, result_count, status, error_message, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Operation, run.Dataset, string(paramsJSON), run.ResultCount, run.Status, run.Error, run.CreatedAt)
	if err != nil {
		return run, apperr.Wrapf(err, "save query %s", run.ID)
	}

	logger.Debugw("query recorded", "id", run.ID, "operation", run.Operation, "status", run.Status)
	return run, nil
}

// ListQueries returns the most recent runs first. limit <= 0 means all.
func (h *History) ListQueries(limit int) ([]model.QueryRun, error) {
	q := `SELECT id, operation, dataset, params, result_count, status, error_message, created_at FROM queries ORDER BY created_at DESC`
	args := []interface{}{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := h.db.Query(q, args...)
	if err != nil {
		return nil, apperr.Wrap(err, "list queries")
	}
	defer rows.Close()

	runs := []model.QueryRun{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetQuery fetches one run by ID.
func (h *History) GetQuery(id string) (model.QueryRun, error) {
	row := h.db.QueryRow(`SELECT id, operation, dataset, params, result_count, status, error_message, created_at FROM queries WHERE id = ?`, id)
	run, err := scanRun(row)
	if apperr.Is(err, sql.ErrNoRows) {
		return model.QueryRun{}, apperr.NotFoundf("query %s", id)
	}
	return run, err
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(s scanner) (model.QueryRun, error) {
	var run model.QueryRun
	var params string
	if err := s.Scan(&run.ID, &run.Operation, &run.Dataset, &params, &run.ResultCount, &run.Status, &run.Error, &run.CreatedAt); err != nil {
		return run, err
	}
	if params != "" && params != "null" {
		if err := json.Unmarshal([]byte(params), &run.Params); err != nil {
			return run, apperr.Wrapf(err, "decode params of query %s", run.ID)
		}
	}
	return run, nil
}
