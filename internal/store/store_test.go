package store_test

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"cinepick/internal/catalog"
	"cinepick/internal/store"
	"cinepick/internal/testsupport"
)

func sampleMovies() []catalog.Movie {
	return []catalog.Movie{
		{Title: "Heat", Genres: []string{"Action", "Crime", "Drama"}, Year: 1995, Rating: 8.2, RuntimeMinutes: 170, Votes: 500000, Actors: "Al Pacino, Robert De Niro"},
		{Title: "Collateral", Genres: []string{"Crime", "Drama"}, Year: 2004, Rating: 7.5, RuntimeMinutes: 120, Votes: 350000, Actors: "Tom Cruise, Jamie Foxx"},
	}
}

func TestImportAndReadMoviesPreservesOrder(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	rec, err := st.ImportMovies(ctx, "movies.csv", sampleMovies())
	if err != nil {
		t.Fatalf("ImportMovies failed: %v", err)
	}
	if rec.RunID == "" || rec.Rows != 2 || rec.Dataset != store.DatasetMovies {
		t.Fatalf("unexpected import record: %+v", rec)
	}

	movies, err := st.Movies(ctx)
	if err != nil {
		t.Fatalf("Movies failed: %v", err)
	}
	if !reflect.DeepEqual(movies, sampleMovies()) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", movies, sampleMovies())
	}
}

func TestImportReplacesPreviousData(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if _, err := st.ImportMovies(ctx, "first.csv", sampleMovies()); err != nil {
		t.Fatalf("first import: %v", err)
	}
	if _, err := st.ImportMovies(ctx, "second.csv", sampleMovies()[:1]); err != nil {
		t.Fatalf("second import: %v", err)
	}
	movies, err := st.Movies(ctx)
	if err != nil {
		t.Fatalf("Movies failed: %v", err)
	}
	if len(movies) != 1 || movies[0].Title != "Heat" {
		t.Fatalf("expected only the second import, got %+v", movies)
	}

	stats, err := st.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Movies != 1 || len(stats.Imports) != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.Imports[0].Source != "second.csv" {
		t.Fatalf("expected newest import first, got %+v", stats.Imports)
	}
}

func TestMoviesEmptyDatabase(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	if _, err := st.Movies(context.Background()); !errors.Is(err, catalog.ErrNoMovies) {
		t.Fatalf("expected ErrNoMovies, got %v", err)
	}
	awards, err := st.Awards(context.Background())
	if err != nil {
		t.Fatalf("Awards failed: %v", err)
	}
	if len(awards) != 0 {
		t.Fatalf("expected no awards, got %+v", awards)
	}
}

func TestImportAwards(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	want := []catalog.Award{
		{Film: "Heat", Category: "NONE", Won: false},
		{Film: "Collateral", Category: "FILM EDITING", Won: false},
		{Film: "Collateral", Category: "ACTOR IN A SUPPORTING ROLE", Won: true},
	}
	if _, err := st.ImportAwards(ctx, "awards.csv", want); err != nil {
		t.Fatalf("ImportAwards failed: %v", err)
	}
	got, err := st.Awards(ctx)
	if err != nil {
		t.Fatalf("Awards failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("awards mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestImportAwardsWithNoRecordsClearsDataset(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if _, err := st.ImportAwards(ctx, "awards.csv", []catalog.Award{{Film: "Heat", Category: "NONE"}}); err != nil {
		t.Fatalf("ImportAwards failed: %v", err)
	}
	rec, err := st.ImportAwards(ctx, "missing.csv", nil)
	if err != nil {
		t.Fatalf("clearing ImportAwards failed: %v", err)
	}
	if rec.Rows != 0 {
		t.Fatalf("expected zero-row import record, got %+v", rec)
	}
	got, err := st.Awards(ctx)
	if err != nil {
		t.Fatalf("Awards failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected stored awards to be cleared, got %+v", got)
	}
}

func TestImportFailsWhileLocked(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	other := flock.New(st.Path() + ".lock")
	ok, err := other.TryLock()
	if err != nil || !ok {
		t.Fatalf("acquire competing lock: ok=%v err=%v", ok, err)
	}
	defer other.Unlock()

	if _, err := st.ImportMovies(context.Background(), "movies.csv", sampleMovies()); !errors.Is(err, store.ErrImportInProgress) {
		t.Fatalf("expected ErrImportInProgress, got %v", err)
	}
}

func TestReopenKeepsSchema(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := st.ImportMovies(context.Background(), "movies.csv", sampleMovies()); err != nil {
		t.Fatalf("ImportMovies failed: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := testsupport.MustOpenStore(t, cfg)
	stats, err := reopened.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Movies != 2 {
		t.Fatalf("expected persisted movies, got %+v", stats)
	}
}

func TestOpenRejectsSchemaMismatch(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	st.Close()

	db, err := sql.Open("sqlite", cfg.Catalog.Database)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	var layout int
	if err := db.QueryRow("PRAGMA user_version").Scan(&layout); err != nil {
		t.Fatalf("read layout: %v", err)
	}
	if layout != 1 {
		t.Fatalf("expected fresh database stamped with layout 1, got %d", layout)
	}
	if _, err := db.Exec("PRAGMA user_version = 99"); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	db.Close()

	if _, err := store.Open(cfg); !errors.Is(err, store.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}
