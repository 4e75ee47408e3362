// Package document implements the pure, rune-accurate snapshot model for an
// interactive input line.
//
// A Document is an immutable pairing of buffer text and a cursor offset
// counted in runes. All queries — word boundaries, line boundaries, row/col
// translation, cursor motion deltas — are pure functions over the snapshot
// and clamp rather than fail. The host input loop constructs a fresh
// Document on every edit.
package document
