// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the order tracking system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - ChallanComposer: A domain service that composes printable challan documents
//   - IDAllocator: A domain service that issues sequential order identifiers
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
