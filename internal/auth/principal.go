package auth

import "context"

// Authenticator turns a bearer token into the caller's identity.
type Authenticator interface {
	Authenticate(ctx context.Context, bearerToken string) (Principal, error)
}

type Principal struct {
	Issuer   string
	Subject  string
	Audience any
	Claims   map[string]any
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
