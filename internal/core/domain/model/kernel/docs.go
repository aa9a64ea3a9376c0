// Package kernel provides the value objects shared by every aggregate of the
// ordering domain.
//
// The package includes:
//   - UUID: identifier of vendors, menus, items, orders and users
//   - Money: exact two-digit currency amounts backed by shopspring/decimal
//   - ParseTimestamp, NormalizeTime and Clock: explicit UTC handling of time
//
// All values are immutable and safe for concurrent use.
package kernel
