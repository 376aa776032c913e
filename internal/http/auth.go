package http

import (
	"net/http"
	"strings"

	"github.com/Flarenzy/simple-ipam/internal/auth"
)

func isPublicPath(path string) bool {
	switch path {
	case "/", "/dashboard", "/health", "/readyz":
		return true
	}
	return strings.HasPrefix(path, "/swagger/")
}

func (a *API) authMiddleware(next http.Handler) http.Handler {
	if a.authenticator == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		authz := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(authz, "Bearer ")
		if !ok || token == "" {
			a.respond(w, r, http.StatusUnauthorized, ErrorResponse{Error: "missing token"})
			return
		}

		principal, err := a.authenticator.Authenticate(r.Context(), token)
		if err != nil {
			a.Logger.DebugContext(r.Context(), "rejected bearer token", "err", err.Error())
			a.respond(w, r, http.StatusUnauthorized, ErrorResponse{Error: "invalid token"})
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
	})
}
