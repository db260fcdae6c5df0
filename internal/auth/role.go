package auth

import (
	"errors"
	"strings"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// ParseRole normalizes a raw role string to the closed enum. An empty input
// defaults to customer.
func ParseRole(raw string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "customer":
		return RoleCustomer, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return "", errors.New("invalid role")
	}
}

// Identity is the authenticated principal asserted by the token layer.
// The core trusts it verbatim and never re-derives it.
type Identity struct {
	UserID uint
	Role   Role
}

func (id Identity) IsAdmin() bool { return id.Role == RoleAdmin }
