// Package repository applies entity records to the relational store. Every
// entity has a natural-key upsert rule: immutable facts are insert-or-ignore,
// values that legitimately change as more complete data arrives are
// insert-or-update on their mutable columns only.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
)

// Result classifies the outcome of one applied row.
type Result int

const (
	// Inserted covers both a fresh row and an applied update.
	Inserted Result = iota
	// Skipped means the row already existed and the policy left it untouched.
	Skipped
)

type base struct {
	db     *sql.DB
	logger zerolog.Logger
	dryRun bool
}

// apply runs one upsert in its own transaction. A failed row is rolled back
// and reported; it never poisons the rows that follow. In dry-run mode the
// transaction is always rolled back and only the classification is returned.
func (b *base) apply(ctx context.Context, query string, args ...any) (Result, error) {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return Skipped, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return Skipped, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Skipped, err
	}

	if !b.dryRun {
		if err := tx.Commit(); err != nil {
			return Skipped, fmt.Errorf("failed to commit: %w", err)
		}
	}

	if affected == 0 {
		return Skipped, nil
	}
	return Inserted, nil
}
