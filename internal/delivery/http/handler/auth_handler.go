package handler

import (
	"errors"
	"time"

	"athlete-portal/internal/delivery/http/middleware"
	"athlete-portal/internal/pkg/response"
	"athlete-portal/internal/usecase"
	ucauth "athlete-portal/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

// loginFailedMessage never distinguishes wrong-password from unknown-account.
const loginFailedMessage = "Login failed"

type AuthHandler struct {
	uc               usecase.AuthUsecase
	sessionExpiresIn time.Duration
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func NewAuthHandler(uc usecase.AuthUsecase, sessionExpiresIn time.Duration) *AuthHandler {
	return &AuthHandler{uc: uc, sessionExpiresIn: sessionExpiresIn}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, token, err := h.uc.Login(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		if errors.Is(err, ucauth.ErrInvalidCredentials) {
			return middleware.NewAppError(fiber.StatusUnauthorized, loginFailedMessage, nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(h.sessionExpiresIn),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	data := map[string]any{
		"user": map[string]any{
			"id":    usr.ID,
			"email": usr.Email,
			"name":  usr.Name,
		},
		"session_token": token,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *AuthHandler) Logout(c fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

// SignIn is the redirect target for anonymous requests. The page itself is
// client chrome; the backend only describes where credentials go.
func (h *AuthHandler) SignIn(c fiber.Ctx) error {
	data := map[string]any{
		"login_url": "/api/v1/auth/login",
		"fields":    []string{"email", "password"},
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
