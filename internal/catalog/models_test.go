package catalog_test

import (
	"reflect"
	"testing"

	"cinepick/internal/catalog"
)

func TestSplitGenresTrimsTitleCasesAndDedupes(t *testing.T) {
	got := catalog.SplitGenres(" drama,ACTION , Drama,,comedy")
	want := []string{"Drama", "Action", "Comedy"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitGenres = %v, want %v", got, want)
	}
	if len(catalog.SplitGenres(" , ")) != 0 {
		t.Fatal("expected blank genre field to produce no genres")
	}
}

func TestMovieFeaturesIgnoresCase(t *testing.T) {
	movie := catalog.Movie{Actors: "Christian Bale, Heath Ledger"}
	if !movie.Features("heath ledger") {
		t.Fatal("expected case-insensitive actor match")
	}
	if !movie.Features("Bale") {
		t.Fatal("expected substring actor match")
	}
	if movie.Features("Tom Hardy") {
		t.Fatal("unexpected match")
	}
	if movie.Features("  ") {
		t.Fatal("blank actor must not match")
	}
}

func TestGenresAndYearSpan(t *testing.T) {
	movies := []catalog.Movie{
		{Title: "A", Genres: []string{"Drama", "Action"}, Year: 2012},
		{Title: "B", Genres: []string{"Comedy", "Drama"}, Year: 2006},
		{Title: "C", Genres: []string{"Action"}, Year: 2016},
	}
	if got, want := catalog.Genres(movies), []string{"Action", "Comedy", "Drama"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Genres = %v, want %v", got, want)
	}
	earliest, latest, ok := catalog.YearSpan(movies)
	if !ok || earliest != 2006 || latest != 2016 {
		t.Fatalf("YearSpan = %d, %d, %v", earliest, latest, ok)
	}
	if _, _, ok := catalog.YearSpan(nil); ok {
		t.Fatal("expected empty catalog to report no span")
	}
}
