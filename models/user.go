package models

// Role is the access level assigned at login.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// User represents the active session user. ID is an opaque identifier
// derived from the password digest; there is no server-side account record.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
