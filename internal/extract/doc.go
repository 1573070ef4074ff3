// Package extract pulls human-readable identifiers out of scanner console
// output.
//
// The scanner prints discovered database names as marker-prefixed lines:
//
//	[*] information_schema
//	[*] acuart
//
// Identifiers returns the text behind each marker, in order of first
// appearance, without deduplication. The marker is configurable so a
// different per-level pattern can be supplied without duplicating the
// extraction logic; the default "[*] " is applied to every discovery level.
package extract
