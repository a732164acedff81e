// Package kernel contains the shared value objects of the domain model:
// UUID identifiers and geographic coordinates. These types are immutable,
// validated at construction, and safe for concurrent use.
package kernel
