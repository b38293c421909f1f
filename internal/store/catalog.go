package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cinepick/internal/catalog"
)

// Dataset names recorded with each import.
const (
	DatasetMovies = "movies"
	DatasetAwards = "awards"
)

// ErrImportInProgress indicates another process holds the import lock.
var ErrImportInProgress = errors.New("another catalog import is in progress")

// ImportRecord describes one completed import.
type ImportRecord struct {
	RunID      string
	Dataset    string
	Source     string
	Rows       int
	ImportedAt time.Time
}

// Stats summarizes the database contents.
type Stats struct {
	Movies  int
	Awards  int
	Imports []ImportRecord
}

// ImportMovies replaces the stored movie catalog with movies, keeping their order.
func (s *Store) ImportMovies(ctx context.Context, source string, movies []catalog.Movie) (ImportRecord, error) {
	return s.importDataset(ctx, DatasetMovies, source, len(movies), func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM movies"); err != nil {
			return fmt.Errorf("clear movies: %w", err)
		}
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO movies (
            position, title, genres_json, year, rating, runtime_minutes, votes, actors
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare movie insert: %w", err)
		}
		defer stmt.Close()
		for i, m := range movies {
			genres, err := json.Marshal(m.Genres)
			if err != nil {
				return fmt.Errorf("encode genres for %q: %w", m.Title, err)
			}
			if _, err := stmt.ExecContext(ctx, i, m.Title, string(genres), m.Year, m.Rating, m.RuntimeMinutes, m.Votes, m.Actors); err != nil {
				return fmt.Errorf("insert movie %q: %w", m.Title, err)
			}
		}
		return nil
	})
}

// ImportAwards replaces the stored award dataset with awards, keeping their order.
func (s *Store) ImportAwards(ctx context.Context, source string, awards []catalog.Award) (ImportRecord, error) {
	return s.importDataset(ctx, DatasetAwards, source, len(awards), func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM awards"); err != nil {
			return fmt.Errorf("clear awards: %w", err)
		}
		stmt, err := tx.PrepareContext(ctx, "INSERT INTO awards (position, film, category, won) VALUES (?, ?, ?, ?)")
		if err != nil {
			return fmt.Errorf("prepare award insert: %w", err)
		}
		defer stmt.Close()
		for i, a := range awards {
			if _, err := stmt.ExecContext(ctx, i, a.Film, a.Category, boolToInt(a.Won)); err != nil {
				return fmt.Errorf("insert award %q: %w", a.Film, err)
			}
		}
		return nil
	})
}

func (s *Store) importDataset(ctx context.Context, dataset, source string, rows int, fill func(*sql.Tx) error) (ImportRecord, error) {
	ctx = ensureContext(ctx)

	ok, err := s.lock.TryLock()
	if err != nil {
		return ImportRecord{}, fmt.Errorf("acquire import lock: %w", err)
	}
	if !ok {
		return ImportRecord{}, ErrImportInProgress
	}
	defer func() { _ = s.lock.Unlock() }()

	record := ImportRecord{
		RunID:      uuid.NewString(),
		Dataset:    dataset,
		Source:     source,
		Rows:       rows,
		ImportedAt: time.Now().UTC(),
	}

	err = retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin import tx: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		if err := fill(tx); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO imports (run_id, dataset, source, row_count, imported_at) VALUES (?, ?, ?, ?, ?)",
			record.RunID, record.Dataset, record.Source, record.Rows, record.ImportedAt.Format(time.RFC3339Nano),
		); err != nil {
			return fmt.Errorf("record import: %w", err)
		}
		return tx.Commit()
	})
	if err != nil {
		return ImportRecord{}, fmt.Errorf("import %s: %w", dataset, err)
	}
	return record, nil
}

// Movies returns the stored catalog in import order.
func (s *Store) Movies(ctx context.Context) ([]catalog.Movie, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, `SELECT title, genres_json, year, rating, runtime_minutes, votes, actors
        FROM movies ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer rows.Close()

	var movies []catalog.Movie
	for rows.Next() {
		var (
			m      catalog.Movie
			genres string
		)
		if err := rows.Scan(&m.Title, &genres, &m.Year, &m.Rating, &m.RuntimeMinutes, &m.Votes, &m.Actors); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		if err := json.Unmarshal([]byte(genres), &m.Genres); err != nil {
			return nil, fmt.Errorf("decode genres for %q: %w", m.Title, err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}
	if len(movies) == 0 {
		return nil, catalog.ErrNoMovies
	}
	return movies, nil
}

// Awards returns the stored award dataset in import order. An empty dataset
// is not an error.
func (s *Store) Awards(ctx context.Context) ([]catalog.Award, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx, "SELECT film, category, won FROM awards ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("query awards: %w", err)
	}
	defer rows.Close()

	var awards []catalog.Award
	for rows.Next() {
		var (
			a   catalog.Award
			won int
		)
		if err := rows.Scan(&a.Film, &a.Category, &won); err != nil {
			return nil, fmt.Errorf("scan award: %w", err)
		}
		a.Won = won != 0
		awards = append(awards, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate awards: %w", err)
	}
	return awards, nil
}

// Stats reports dataset sizes and the most recent imports, newest first.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	ctx = ensureContext(ctx)
	var stats Stats
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM movies").Scan(&stats.Movies); err != nil {
		return Stats{}, fmt.Errorf("count movies: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM awards").Scan(&stats.Awards); err != nil {
		return Stats{}, fmt.Errorf("count awards: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT run_id, dataset, source, row_count, imported_at FROM imports ORDER BY rowid DESC LIMIT 10")
	if err != nil {
		return Stats{}, fmt.Errorf("query imports: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			rec ImportRecord
			ts  string
		)
		if err := rows.Scan(&rec.RunID, &rec.Dataset, &rec.Source, &rec.Rows, &ts); err != nil {
			return Stats{}, fmt.Errorf("scan import: %w", err)
		}
		if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			rec.ImportedAt = parsed
		}
		stats.Imports = append(stats.Imports, rec)
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("iterate imports: %w", err)
	}
	return stats, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
