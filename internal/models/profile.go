package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role decides which screens and operations a profile can reach.
type Role string

const (
	RoleOwner    Role = "owner"
	RoleEmployee Role = "employee"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleEmployee
}

// Identity is the login handle. Each identity has exactly one Profile with the same ID.
type Identity struct {
	// ID is the unique identifier (UUID format), shared with the Profile.
	ID string

	// Username is the login name (unique).
	Username string

	// PasswordHash is the bcrypt hash of the password.
	PasswordHash string

	CreatedAt time.Time
}

// Profile describes the person behind an identity.
type Profile struct {
	ID       string
	Username string
	FullName string
	Role     Role

	// Salary is a monthly period cost. Only employee salaries are counted
	// by the business-wide figures; NULL for owners.
	Salary decimal.NullDecimal

	// IDCard is the national ID card number, empty when unknown.
	IDCard string
}

// IsOwner reports whether the profile has the owner role.
func (p *Profile) IsOwner() bool {
	return p != nil && p.Role == RoleOwner
}
