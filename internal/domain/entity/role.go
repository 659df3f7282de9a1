package entity

// Role identifies which kind of account a token was issued for. A principal
// is exactly one of the two; the role travels in the JWT and is re-checked
// server-side on every role-guarded route.
type Role string

const (
	// RoleSupplier indicates a fornecedor account.
	RoleSupplier Role = "fornecedor"
	// RoleCustomer indicates a cliente account.
	RoleCustomer Role = "cliente"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleSupplier, RoleCustomer:
		return true
	default:
		return false
	}
}

// ParseRole maps a wire string onto a known role.
func ParseRole(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
