package ports

import "context"

// SessionManager issues, resolves, and revokes opaque session tokens.
// A token is Active from Issue until Revoke or expiry, both terminal.
// Implementations hold session state server-side; the token itself carries
// no claims.
type SessionManager interface {
	Issue(ctx context.Context, accountID string) (string, error)
	// Resolve returns the owning account id, or domain.ErrUnauthenticated
	// when the token is unknown, revoked, or expired.
	Resolve(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}
