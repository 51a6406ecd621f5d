// Package kernel provides the domain primitives shared by the dish and order models.
//
// The package includes:
//   - ID: the identity value object of every stored record
//   - Sequence: the per-collection generator of fresh identities
//
// IDs are assigned from a monotonically increasing counter and never reused,
// so their numeric order is also their creation order.
package kernel
