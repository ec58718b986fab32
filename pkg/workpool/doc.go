// SPDX-License-Identifier: MPL-2.0

// Package workpool provides a fixed-size worker pool for executing independent
// units of work concurrently.
//
// Units are distributed over a single shared channel and pulled by workers one
// at a time until the queue is drained. Failures do not stop the pool: every
// unit runs, and all failures are reported together as an *AggregatedError.
// A panicking unit is recovered per worker and converted into a synthetic
// execution error so the remaining workers keep going.
//
// The pool gives no ordering or mutual-exclusion guarantees between units.
// Callers must ensure units target disjoint outputs.
package workpool
