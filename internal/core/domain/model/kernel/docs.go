// Package kernel contains shared value objects used across the domain model:
// entity identifiers (UUID) and monetary/weight quantities (Money, Weight).
//
// All kernel types are immutable value objects. Zero values are treated as
// "unset" and fail validation where construction is required; use the factory
// functions to obtain valid instances.
package kernel
