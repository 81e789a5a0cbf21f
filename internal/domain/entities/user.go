package entities

import "time"

// UserRole separates venue staff from clients.
//
// Domain notes:
//   - ADMIN and STAFF operate the till and appear as the acting staff on
//     orders and sessions.
//   - CLIENT carries a running balance: unpaid orders increase it, debt
//     payments decrease it.

type UserRole string

const (
	UserRoleAdmin  UserRole = "ADMIN"
	UserRoleStaff  UserRole = "STAFF"
	UserRoleClient UserRole = "CLIENT"
)

// User is a staff member, owner or client account.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (name-index): name
//
// Password holds the bcrypt hash and is never serialized to API responses.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Password  string    `json:"-"`
	Role      UserRole  `json:"role"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
