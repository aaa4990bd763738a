package service

import (
	"slices"

	"github.com/MKhiriev/go-relief-sync/models"
)

// ReconcileResult is the outcome of [Reconcile].
type ReconcileResult[T models.Identifiable] struct {
	// Merged is the collection to cache, in server order.
	Merged []T
	// Dropped lists ids cached locally but absent from the server payload,
	// ascending.
	Dropped []int64
}

// Reconcile merges a freshly fetched authoritative collection with the
// cached one, keyed by entity id.
//
// Every remote entity is taken verbatim and in remote order; local values
// never leak into Merged. Local ids missing from remote are reported in
// Dropped so that a retention policy can act on them. The function is pure:
// neither input is modified.
func Reconcile[T models.Identifiable](remote, local []T) ReconcileResult[T] {
	unmatched := make(map[int64]struct{}, len(local))
	for _, item := range local {
		unmatched[item.EntityID()] = struct{}{}
	}

	merged := make([]T, 0, len(remote))
	for _, item := range remote {
		merged = append(merged, item)
		delete(unmatched, item.EntityID())
	}

	var dropped []int64
	if len(unmatched) > 0 {
		dropped = make([]int64, 0, len(unmatched))
		for id := range unmatched {
			dropped = append(dropped, id)
		}
		slices.Sort(dropped)
	}

	return ReconcileResult[T]{Merged: merged, Dropped: dropped}
}
