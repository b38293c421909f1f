package store

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// catalogLayout is stored in the database header (PRAGMA user_version).
// Zero means a fresh file.
const catalogLayout = 1

// ErrSchemaMismatch reports a catalog database written with another layout.
var ErrSchemaMismatch = errors.New("catalog database layout mismatch")

func (s *Store) ensureSchema(ctx context.Context) error {
	var layout int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&layout); err != nil {
		return fmt.Errorf("read catalog layout: %w", err)
	}
	switch layout {
	case catalogLayout:
		return nil
	case 0:
		return s.applySchema(ctx)
	default:
		return fmt.Errorf("%w: %s has layout %d, this build reads %d; remove it and rerun 'cinepick catalog import'",
			ErrSchemaMismatch, s.path, layout, catalogLayout)
	}
}

// applySchema creates the tables and stamps the layout in one transaction so
// a failed create leaves the file at layout zero.
func (s *Store) applySchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create catalog tables: %w", err)
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", catalogLayout)); err != nil {
		return fmt.Errorf("stamp catalog layout: %w", err)
	}
	return tx.Commit()
}
