package domain

// Role represents the authorization level of an account.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleAbogada Role = "abogada"
	RoleLector  Role = "lector"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleAbogada, RoleLector:
		return true
	}
	return false
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
