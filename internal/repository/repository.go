// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer
package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the part of *pgxpool.Pool the repositories use. Each call
// acquires a pooled connection for its own duration.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// setClause collects the "column = $n" assignments of a partial update.
// Columns always come from the caller's code, never from the request.
type setClause struct {
	assignments []string
	args        []any
}

// setIfPresent adds column to the update when value is non-nil.
func setIfPresent[T any](s *setClause, column string, value *T) {
	if value == nil {
		return
	}
	s.args = append(s.args, *value)
	s.assignments = append(s.assignments, fmt.Sprintf("%s = $%d", column, len(s.args)))
}

func (s *setClause) empty() bool {
	return len(s.assignments) == 0
}

// statement renders the UPDATE for the row with the given id.
func (s *setClause) statement(table string, id int64, returning string) (string, []any) {
	args := append(s.args, id)
	stmt := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(s.assignments, ", "), len(args), returning)
	return stmt, args
}

func exists(ctx context.Context, db DBTX, stmt string, args ...any) (bool, error) {
	var found bool
	if err := db.QueryRow(ctx, stmt, args...).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}
