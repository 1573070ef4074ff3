// Package scan orchestrates nested schema discovery over an external
// SQL-injection scanner.
//
// A run is three sequential passes: list databases for the target, list
// tables within each database, list columns within each table. Each pass is
// one scanner invocation through the sqlsweep.Runner capability; identifiers
// are extracted from the invocation's console output and feed the next level
// down. Results are printed as they are found; nothing is cached, retried,
// deduplicated or persisted.
package scan
