// Package catalog defines the movie and award records cinepick recommends from
// and loads them from their CSV exports.
//
// Raw rows are converted into fixed-shape Movie and Award values exactly once,
// at the load boundary: genres are split, trimmed, and title-cased, rows that
// lack a rating, year, runtime, vote count, or genre are dropped, and award
// winner flags are normalized to booleans. Everything downstream (ranking,
// award lookup, the display window) works on these values only.
package catalog
