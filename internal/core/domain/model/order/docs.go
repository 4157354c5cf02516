// Package order provides the Order aggregate and its status state machine.
//
// The package includes:
//   - Order: an immutable snapshot of a cart at placement time, carrying the
//     customer contact, per-item name/price snapshots and computed pricing
//   - Item: one snapshotted order line
//   - Status: the forward-only Pending -> Preparing -> OutForDelivery ->
//     Delivered state machine
//   - PaymentMethod: the payment enumeration (cash on delivery only)
//
// Key business rules:
//   - subtotal = sum of unitPrice x quantity over all items; total = subtotal
//     + deliveryPrice, both fixed at creation
//   - catalog price changes after placement never affect an existing order
//   - the status may only move to the exact successor of its current state;
//     Delivered is terminal
//   - no cancellation state and no status history in this design
package order
