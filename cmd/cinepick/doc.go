// Command cinepick recommends movies from a local catalog export.
//
// The recommend command runs an interactive survey and then presents a
// rotating window of ranked titles. Supporting commands list genres, look up
// award recognition, import the CSV exports into a SQLite catalog, manage
// configuration, and check that the configured data is usable.
package main
