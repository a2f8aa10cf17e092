// Package mapview provides MapView, a read-only, non-copying view over a
// Go map, the mapping sibling of seqview.View.
//
// What:
//
//   - MapView[K, V] holds a reference to a map[K]V and forwards every read
//     to it. Go maps are reference types, so the view is a live
//     projection: entries the owner adds, changes or deletes are observed
//     by the view as they happen.
//   - Keys, Values and All expose restartable iterators; like the map
//     itself, iteration order is unspecified.
//   - The view is immutable, so Copy and DeepCopy return the receiver;
//     Materialize produces an independent copy when one is wanted.
//
// Why:
//
//   - Expose an internal map as a read-only attribute without copying it
//     and without letting callers write through it.
//
// Errors:
//
//   - ErrKeyNotFound: Get was asked for an absent key.
//
// A nil map is a valid empty backing; construction never fails.
package mapview
