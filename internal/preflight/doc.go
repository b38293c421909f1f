// Package preflight provides readiness checks for the filesystem paths and
// catalog data that cinepick depends on.
//
// The CLI "cinepick doctor" command runs RunAll and renders each Result as a
// status line. Checks for the catalog database only run when the catalog
// source is sqlite.
package preflight
