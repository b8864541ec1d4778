// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is the core identity in the system. Anyone who owns items, books
// them or publishes requests is a User.
type User struct {
	ID    int64  // Store-assigned identifier.
	Name  string // Display name.
	Email string // Unique contact email, RFC-822 form.
}
