// Package ports defines the repository contracts of the dish and order collections.
// Use cases depend on these interfaces; adapters under internal/adapters/out
// implement them for memory and PostgreSQL storage.
package ports
