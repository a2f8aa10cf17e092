// Package nanoutils offers read-only, non-copying views over ordinary Go
// collections — lightweight facades that let a package expose its internal
// state without handing out mutable references.
//
// What you get:
//
//   - seqview/ — View[T], a live, read-only projection of any ordered,
//     indexable collection; slice snapshots, capability-gated reverse
//     iteration, value search, and ready-made backings (slices, integer
//     ranges, the empty sequence).
//   - mapview/ — MapView[K,V], the same contract for maps: live key/value
//     access, iteration, and equality without exposing the map itself.
//
// Why use a view instead of a copy?
//
//   - Zero duplication — a view holds a reference, never a second buffer.
//   - Honest liveness — callers observe the owner's mutations as they
//     happen, instead of a stale copy.
//   - Cheap to hand out — construction is O(1); copying a view is the
//     view itself.
//
// Both packages are pure Go, synchronous, and dependency-free at runtime.
// Start with seqview.Of or seqview.Bind, and see each package's doc.go for
// the live-versus-snapshot contract.
package nanoutils
