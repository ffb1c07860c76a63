// Package order provides domain entities and business logic for procurement
// order management. It implements the Order aggregate root with lifecycle
// management, line-item accounting, and the order-number format.
//
// The package includes:
//   - Order: the aggregate root owning an ordered collection of line items
//   - LineItem: one product line with quantity, unit price, and tax rate
//   - Status: a state machine that enforces valid order status transitions
//   - Order-number helpers for the PED-{year}-{sequence} format
//
// Key business rules:
//   - Orders are created in Pending status with a generated order number
//   - Status follows the workflow Pending -> Approved -> InProcess ->
//     Shipped -> Received, with cancellation possible from Pending and
//     Approved; Received and Cancelled are terminal
//   - Lines may be replaced and the order deleted only while Pending
//   - Monetary totals are always derived from the lines, never set directly
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
