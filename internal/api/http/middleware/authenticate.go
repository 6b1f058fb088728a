package middleware

import (
	"net/http"
	"strings"

	"github.com/fintrack/fintrack-server/internal/api/http/handler"
	"github.com/fintrack/fintrack-server/internal/logger"
	"github.com/fintrack/fintrack-server/internal/model"
)

// TokenService resolves the identity encoded in a bearer token.
type TokenService interface {
	Authenticate(token string) (model.Identity, error)
}

// Authenticate validates bearer tokens and injects the caller identity
// into the request context. A missing or malformed header is rejected as
// unauthenticated; a token that fails verification as invalid.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handle wraps next with bearer-token authentication.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			handler.WriteError(w, model.ErrUnauthenticated)
			return
		}

		identity, err := m.tokenService.Authenticate(tokenString)
		if err != nil {
			m.logger.Debug("Authenticate middleware: token rejected", "error", err.Error())
			handler.WriteError(w, model.ErrInvalidToken)
			return
		}

		ctx := m.contextManager.SetIdentityToContext(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header.
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
