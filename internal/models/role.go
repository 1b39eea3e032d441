// ABOUTME: Role enum for the two kinds of platform user.
// ABOUTME: Derives the local storage keys each role owns.
package models

import "fmt"

// Role identifies which side of the platform a user is on.
type Role string

const (
	RoleAthlete Role = "athlete"
	RoleTrainer Role = "trainer"
)

// AllRoles lists every valid role.
var AllRoles = []Role{RoleAthlete, RoleTrainer}

// ParseRole converts user input into a Role.
func ParseRole(s string) (Role, error) {
	for _, r := range AllRoles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role: %q (use athlete or trainer)", s)
}

// TokenKey is the local storage key holding the role's auth token.
func (r Role) TokenKey() string {
	return string(r) + "Token"
}

// IDKey is the local storage key holding the role's numeric user id.
func (r Role) IDKey() string {
	return string(r) + "Id"
}

// LoginPath is the endpoint used to authenticate this role.
func (r Role) LoginPath() string {
	return "/" + string(r) + "_login"
}
