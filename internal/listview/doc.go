// Package listview turns a fetched collection into the page a listing renders.
//
// The pipeline always runs in the same order:
//
//	search -> categorical filters -> date range -> sort -> paginate
//
// Every stage is a pure function over its input slice; inputs are never mutated
// and the whole pipeline is recomputed whenever the collection or the State
// changes. Malformed filter input never produces an error: a predicate that
// cannot be evaluated simply matches nothing.
//
// Entities plug in through Config, a set of field accessors, so the veterans and
// news listings share one implementation.
package listview
