package auth

import (
	"log/slog"
	"net/http"

	"github.com/jobportal/jobportal/internal/platform/httpx"
)

// Gate authenticates requests from the session cookie.
type Gate struct {
	logger *slog.Logger
	tokens *TokenService
}

// NewGate constructs a Gate.
func NewGate(logger *slog.Logger, tokens *TokenService) *Gate {
	return &Gate{logger: logger, tokens: tokens}
}

// Require rejects requests without a valid session cookie and injects the
// resolved user id into the request context otherwise.
func (g *Gate) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil || cookie.Value == "" {
			httpx.Fail(w, http.StatusUnauthorized, "User not authenticated")
			return
		}

		userID, err := g.tokens.Verify(cookie.Value)
		if err != nil {
			g.logger.Warn("token verification failed", slog.String("path", r.URL.Path))
			httpx.Fail(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUserID(r.Context(), userID)))
	})
}
