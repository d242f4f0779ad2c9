// Package history provides an optional audit log of assistant exchanges.
//
// When a database is configured, every completed HTTP exchange (query and
// final answer, keyed by ray ID) is recorded and can be listed through
// GET /history. The feature disables itself when no database handle exists;
// the assistant keeps working without it.
package history
