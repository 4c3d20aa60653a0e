package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/clinitab/uplink/internal/logger"
	"github.com/clinitab/uplink/models"
)

type extraStringsCache struct {
	*DB
	logger *logger.Logger
}

// NewExtraStringsCache wires an [ExtraStringsCache] over the extrastrings
// table.
func NewExtraStringsCache(db *DB, logger *logger.Logger) ExtraStringsCache {
	return &extraStringsCache{DB: db, logger: logger}
}

// ReplaceAll deletes the whole cache and inserts the replacement triples in
// one transaction, so readers never observe a half-replaced cache.
func (e *extraStringsCache) ReplaceAll(ctx context.Context, strings []models.ExtraString) error {
	tx, err := e.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin extra-strings transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteAllExtraStrings); err != nil {
		return fmt.Errorf("failed to clear extra strings: %w", err)
	}

	for _, s := range strings {
		if _, err := tx.ExecContext(ctx, insertExtraString, s.Task, s.Name, s.Value); err != nil {
			return fmt.Errorf("failed to insert extra string %s/%s: %w", s.Task, s.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit extra-strings transaction: %w", err)
	}
	return nil
}

func (e *extraStringsCache) Lookup(ctx context.Context, task, name string) (string, error) {
	var value string
	err := e.DB.QueryRowContext(ctx, lookupExtraString, task, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s/%s", ErrExtraStringNotFound, task, name)
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up extra string %s/%s: %w", task, name, err)
	}
	return value, nil
}
