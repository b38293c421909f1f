// Package store persists imported movie and award catalogs in SQLite so that
// recommendation sessions can start without re-parsing the CSV exports.
//
// Imports replace a dataset wholesale inside a single transaction, preserve
// the export's row order (ranking ties fall back to catalog order), and are
// serialized across processes with a lock file next to the database. Each
// import is recorded with a run identifier for later inspection.
package store
