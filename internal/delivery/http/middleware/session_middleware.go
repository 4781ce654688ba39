package middleware

import (
	"strings"

	"athlete-portal/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const (
	CtxUserIDKey = "user_id"
	CtxEmailKey  = "email"

	SessionCookieName = "session"
	SignInPath        = "/signin"
)

// SessionMiddleware resolves the requesting identity from the session token.
// Anonymous or invalid-session requests are redirected to the sign-in route;
// no protected page ever partially renders. The resolved user id in Locals is
// the only identity mutation handlers may use.
type SessionMiddleware struct {
	jwt jwt.Service
}

func NewSessionMiddleware(jwtSvc jwt.Service) *SessionMiddleware {
	return &SessionMiddleware{jwt: jwtSvc}
}

func (m *SessionMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := sessionTokenFromRequest(c)
		if !ok {
			return redirectToSignIn(c)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			return redirectToSignIn(c)
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxEmailKey, claims.Email)

		return c.Next()
	}
}

func redirectToSignIn(c fiber.Ctx) error {
	return c.Redirect().Status(fiber.StatusSeeOther).To(SignInPath)
}

// sessionTokenFromRequest prefers the session cookie; an Authorization bearer
// header works as a fallback for non-browser clients.
func sessionTokenFromRequest(c fiber.Ctx) (string, bool) {
	if tok := strings.TrimSpace(c.Cookies(SessionCookieName)); tok != "" {
		return tok, true
	}
	return bearerTokenFromHeader(c.Get("Authorization"))
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
