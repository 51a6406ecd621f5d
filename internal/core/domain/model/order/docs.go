// Package order provides the Order aggregate and its lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding delivery details, status and line items
//   - Status: the lifecycle state machine
//   - LineItem: one dish of an order with its quantity
//   - Rules and LineRule: the checks every submitted order record must satisfy
//
// Key business rules:
//   - orders are created pending, whatever status the client submits
//   - any known status may follow any other; no stepwise ordering is enforced
//   - a delivered order is terminal and cannot be changed
//   - only pending orders may be removed
//   - every line item has an integer quantity greater than 0
package order
