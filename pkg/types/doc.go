// Package types defines the entity types, typed patches, the KVStore interface,
// configuration, and standard errors for the schedulenest storage layer.
//
// A user's data is a single Document keyed by a system code. Schedules and todos
// are flat lists; folders own their notes; categories form an insertion-ordered
// vocabulary referenced by the other entities.
package types
