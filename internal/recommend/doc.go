// Package recommend turns a movie catalog and a set of viewer preferences into
// a ranked list, and manages the fixed-size window of that list a viewer sees
// across rounds of "already seen" replacements.
//
// Rank filters with a predicate composed from only the preference fields that
// are set and orders the survivors by rating, then votes, with favourite-actor
// matches first. Window never re-ranks: it only moves a cursor forward through
// the ranking, so every replacement is the next-best unseen title and no title
// is shown twice in a session. Anomalies (bad positions, nothing left to swap
// in) are returned as events, not errors.
package recommend
