// Package order provides the Order aggregate of the campus ordering workflow:
// the order itself, its snapshot lines and its status history.
//
// The package includes:
//   - Order: aggregate root owning lines, totals, status and version
//   - Item: a line with name and price snapshots
//   - Status: the lifecycle enum with an adjacency table keyed by Actor
//   - Transition: one row of status history
//   - PaymentStatus, FulfillmentMode: closed enums persisted by name
//
// Key business rules:
//   - Vendors move orders pending -> accepted -> preparing -> ready -> completed,
//     and may reject pending or accepted orders
//   - Customers may cancel pending or accepted orders, nothing else
//   - The total is computed once, at placement, from the line snapshots
package order
