package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"athlete-portal/internal/delivery/http/middleware"
	"athlete-portal/internal/domain/user"
	ucauth "athlete-portal/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type fakeAuthUsecase struct {
	user  user.User
	token string
	err   error
}

func (m *fakeAuthUsecase) Login(ctx context.Context, in ucauth.LoginInput) (user.User, string, error) {
	if m.err != nil {
		return user.User{}, "", m.err
	}
	return m.user, m.token, nil
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newAuthTestApp(uc *fakeAuthUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware().Middleware())
	h := NewAuthHandler(uc, time.Hour)
	h.RegisterRoutes(app.Group("/api/v1/auth"))
	return app
}

func postLogin(t *testing.T, app *fiber.App, body map[string]string) (*envelope, []string) {
	t.Helper()

	b, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	var e envelope
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	return &e, resp.Header.Values("Set-Cookie")
}

func TestLoginHandler_SetsSessionCookie(t *testing.T) {
	uc := &fakeAuthUsecase{
		user:  user.User{ID: uuid.New(), Email: "demo@athlete.com", Name: "Demo Athlete"},
		token: "signed-token",
	}
	app := newAuthTestApp(uc)

	e, cookies := postLogin(t, app, map[string]string{"email": "demo@athlete.com", "password": "demo1234"})
	if e.Status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", e.Status, e.Message)
	}

	var data struct {
		SessionToken string `json:"session_token"`
	}
	if err := json.Unmarshal(e.Data, &data); err != nil {
		t.Fatalf("data unmarshal error: %v", err)
	}
	if data.SessionToken != "signed-token" {
		t.Fatalf("expected session token in body, got %q", data.SessionToken)
	}

	found := false
	for _, c := range cookies {
		if len(c) >= len(middleware.SessionCookieName) && c[:len(middleware.SessionCookieName)] == middleware.SessionCookieName {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %s cookie, got %v", middleware.SessionCookieName, cookies)
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	app := newAuthTestApp(&fakeAuthUsecase{err: ucauth.ErrInvalidCredentials})

	e, _ := postLogin(t, app, map[string]string{"email": "demo@athlete.com", "password": "wrong"})
	if e.Status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", e.Status)
	}
	if e.Message != loginFailedMessage {
		t.Fatalf("expected %q, got %q", loginFailedMessage, e.Message)
	}
}

func TestLoginHandler_InternalErrorMasked(t *testing.T) {
	app := newAuthTestApp(&fakeAuthUsecase{err: errors.New("pq: connection refused")})

	e, _ := postLogin(t, app, map[string]string{"email": "demo@athlete.com", "password": "demo1234"})
	if e.Status != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", e.Status)
	}
}

func TestLogoutHandler_ClearsCookie(t *testing.T) {
	app := newAuthTestApp(&fakeAuthUsecase{})

	req := httptest.NewRequest("POST", "/api/v1/auth/logout", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	cookies := resp.Header.Values("Set-Cookie")
	if len(cookies) == 0 {
		t.Fatalf("expected expired cookie on logout")
	}
}
