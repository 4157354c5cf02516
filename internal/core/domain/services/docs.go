// Package services provides domain services that coordinate business
// operations across multiple aggregates.
//
// The package includes:
//   - OrderFactory: converts a customer's cart plus the catalog records
//     resolved at placement time into an immutable order snapshot
//
// Domain services hold logic that does not naturally belong to a single
// aggregate root; they are pure and perform no I/O.
package services
