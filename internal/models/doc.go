// Package models defines the domain values of the cash wallet.
//
// # Models
//
//   - HistoryEntry: one recorded balance change (delta, label, kind)
//   - Snapshot: the balance plus the full history at one point in time
//
// Both are plain values. They are produced by the state model and only read
// by everything else (service, screen, metrics).
//
// # Classification
//
// The label and kind of an entry depend on the sign of its delta alone:
//
//	delta > 0   ->  ADDITION,    "Cash added"
//	delta <= 0  ->  SUBTRACTION, "Cash reduced"
//
// A reduction that leaves the balance positive is still a reduction, and a
// zero delta is recorded as a reduction.
package models
