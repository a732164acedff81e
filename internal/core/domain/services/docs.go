// Package services contains stateless domain services that coordinate
// multiple aggregates: picking the nearest drone for an open job and
// estimating an order's delivery progress.
package services
