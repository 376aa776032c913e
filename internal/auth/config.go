package auth

import "errors"

var ErrInvalidToken = errors.New("invalid token")

// Config describes the OIDC provider bearer tokens are checked against.
// JWKSURL defaults to the Keycloak certs endpoint under Issuer.
type Config struct {
	Enabled  bool
	Issuer   string
	Audience string
	JWKSURL  string
}

func (c Config) jwksURL() string {
	if c.JWKSURL != "" {
		return c.JWKSURL
	}
	return c.Issuer + "/protocol/openid-connect/certs"
}
