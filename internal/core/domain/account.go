package domain

import "errors"

// Role is the closed set of access levels a credential can carry. Keeping the
// set closed lets the gate match exhaustively instead of comparing free-form
// strings.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountNotFound = errors.New("account not found")
var ErrAccountExists = errors.New("account already exists")
var ErrForbidden = errors.New("access forbidden")

// ParseRole maps a raw claim value onto the Role enumeration. Unknown values
// return false so callers fail closed.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleViewer:
		return RoleViewer, true
	}
	return "", false
}

// Account models a login principal. Accounts are provisioned out-of-band
// (seed or admin tooling) and are never mutated through the API.
type Account struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password"`
	Role         Role   `json:"role" db:"role"`
}
