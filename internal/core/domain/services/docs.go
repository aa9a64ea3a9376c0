// Package services provides domain services that span more than one
// aggregate of the ordering domain.
//
// The package includes:
//   - CartPricer: checks a cart against a vendor's live menu and turns it
//     into priced order lines with name and price snapshots
package services
