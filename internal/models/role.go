package models

// Role is the closed set of account roles. Handlers dispatch on it once,
// at the routing layer, instead of comparing raw strings per page.
type Role string

const (
	RoleClient   Role = "client"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleClient, RoleProvider, RoleAdmin:
		return Role(s), true
	}
	return "", false
}
