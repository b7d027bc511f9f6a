// Package auth establishes who a request acts for. The ledger treats the principal id as an
// opaque owner reference and never inspects it.
package auth

import "context"

// Principal is the authenticated user behind a request.
type Principal struct {
	ID    string
	Email string
}

type principalKey struct{}

// WithPrincipal attaches p to ctx.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the request principal. Without authentication this is the zero
// Principal, whose empty id names the shared user.
func PrincipalFrom(ctx context.Context) Principal {
	p, _ := ctx.Value(principalKey{}).(Principal)
	return p
}
