// Package menu provides the Menu and Item entities a vendor sells from.
//
// Key business rules:
//   - A vendor owns exactly one Menu; an inactive menu accepts no orders
//   - An Item belongs to one Menu and to that menu's Vendor
//   - Availability is a boolean switch, there is no stock counting
//   - Editing an item never touches orders already placed, which keep
//     their own name and price snapshots
package menu
