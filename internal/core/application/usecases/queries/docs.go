// Package queries contains the read-only use cases of the dish and order
// collections. Handlers read through the repository ports, so they behave the
// same on every storage driver.
package queries
