// Package job contains the delivery job aggregate. A job is one leg of an
// order: the initial pickup-and-deliver leg, or a handoff leg created when
// the carrying drone broke down. Jobs carry the version counter that the
// persistence layer uses for optimistic concurrency, so racing reservations
// resolve to exactly one winner.
package job
