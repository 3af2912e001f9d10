package auth

// Roles soportados por el portal.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Claims representa la información extraída del token.
type Claims struct {
	UserID string
	Email  string
	Role   string
}

// IsAdmin es el único check de rol que existe en el sistema.
func (c Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
