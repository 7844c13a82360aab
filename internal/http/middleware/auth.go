package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/semana-app/semana/internal/http/response"
)

// Auth is HTTP middleware that checks requests against a static bearer
// token. The token is hashed once at construction; comparisons run on the
// digests in constant time so neither content nor length leaks.
type Auth struct {
	tokenHash [sha256.Size]byte
}

// NewAuth creates auth middleware for the given token.
func NewAuth(token string) *Auth {
	return &Auth{tokenHash: sha256.Sum256([]byte(token))}
}

// Validate is a chi middleware that checks the Authorization header.
// Expects format: "Authorization: Bearer <token>"
func (a *Auth) Validate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			slog.WarnContext(r.Context(), "authentication failed: missing Authorization header",
				"path", r.URL.Path,
				"method", r.Method)
			response.Unauthorized(w, "missing Authorization header")
			return
		}

		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			slog.WarnContext(r.Context(), "authentication failed: invalid Authorization header format",
				"path", r.URL.Path,
				"method", r.Method)
			response.Unauthorized(w, "invalid Authorization header format, expected: Bearer <token>")
			return
		}

		providedHash := sha256.Sum256([]byte(token))
		if subtle.ConstantTimeCompare(a.tokenHash[:], providedHash[:]) != 1 {
			slog.WarnContext(r.Context(), "authentication failed: invalid token",
				"path", r.URL.Path,
				"method", r.Method)
			response.Unauthorized(w, "invalid API token")
			return
		}

		next.ServeHTTP(w, r)
	})
}
