package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite un token para un usuario ya autenticado.
// Lo implementa el adapter jwtauth; el dominio users solo ve este port.
type TokenIssuer interface {
	Issue(userID, email, role string) (string, error)
}
