// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

// Page is an offset/limit window over an ordered result set.
// Offset must be >= 0 and Limit >= 1; the delivery boundary guarantees it.
type Page struct {
	Offset int
	Limit  int
}
