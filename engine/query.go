package engine

import (
	"sort"

	"github.com/lixenwraith/meteor-fighter/core"
)

// QueryBuilder finds entities present in every given store
// Starts from the smallest store and filters through the larger ones
type QueryBuilder struct {
	stores   []AnyStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder
//
//	entities := w.Query().
//	    With(w.Components.Transform).
//	    With(w.Components.Velocity).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{stores: make([]AnyStore, 0, 4)}
}

// With adds a component store to the filter
// Panics if called after Execute
func (qb *QueryBuilder) With(store AnyStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute returns entities present in all stores, cached after the first call
// Result order follows the smallest store's order
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	sort.SliceStable(qb.stores, func(i, j int) bool {
		return qb.stores[i].Count() < qb.stores[j].Count()
	})

	candidates := qb.stores[0].All()
	for _, store := range qb.stores[1:] {
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
		if len(candidates) == 0 {
			break
		}
	}

	qb.results = candidates
	return qb.results
}
