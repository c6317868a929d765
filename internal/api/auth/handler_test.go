package auth

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"wedding-site/config"
	"wedding-site/database"
	"wedding-site/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const testPassword = "Admin123!"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"), testPassword)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	cfg := &config.Config{JWTSecret: "test-secret", Env: "test"}
	h := NewHandler(db, cfg, zerolog.Nop())

	router := gin.New()
	router.POST("/api/auth/login", h.Login)
	router.POST("/api/auth/logout", middleware.RequireSession(cfg.JWTSecret), h.Logout)
	router.GET("/api/auth/session", middleware.RequireSession(cfg.JWTSecret), h.Session)
	router.POST("/api/auth/change-password", middleware.RequireSession(cfg.JWTSecret), h.ChangePassword)
	return router
}

func doLogin(router *gin.Engine, password, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"password":"`+password+`"}`))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = remoteAddr
	router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func TestLoginSetsUsableSessionCookie(t *testing.T) {
	router := newTestRouter(t)

	w := doLogin(router, testPassword, "10.0.0.1:1234")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	cookie := sessionCookie(t, w)
	if !cookie.HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}
	if cookie.SameSite != http.SameSiteStrictMode {
		t.Error("session cookie must be SameSite=Strict")
	}

	probe := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/auth/session", nil)
	req.AddCookie(cookie)
	router.ServeHTTP(probe, req)
	if probe.Code != http.StatusOK {
		t.Errorf("cookie from login should pass the guard, got %d", probe.Code)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	router := newTestRouter(t)

	w := doLogin(router, "wrong-password", "10.0.0.1:1234")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	if len(w.Result().Cookies()) != 0 {
		t.Error("failed login must not set a cookie")
	}
}

func TestLoginThrottledOnSixthAttempt(t *testing.T) {
	router := newTestRouter(t)

	for i := 0; i < 5; i++ {
		w := doLogin(router, "wrong-password", "10.0.0.9:1234")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected 401, got %d", i+1, w.Code)
		}
	}

	w := doLogin(router, "wrong-password", "10.0.0.9:1234")
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("sixth attempt: expected 429, got %d", w.Code)
	}

	// The counter keys on IP, so the correct password is throttled too.
	w = doLogin(router, testPassword, "10.0.0.9:1234")
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("throttled IP must get 429 regardless of password, got %d", w.Code)
	}
}

func TestSuccessfulLoginDoesNotResetThrottle(t *testing.T) {
	router := newTestRouter(t)

	for i := 0; i < 4; i++ {
		doLogin(router, "wrong-password", "10.0.0.7:1234")
	}
	if w := doLogin(router, testPassword, "10.0.0.7:1234"); w.Code != http.StatusOK {
		t.Fatalf("fifth attempt with correct password should succeed, got %d", w.Code)
	}

	// The success consumed the fifth slot; the window is now exhausted.
	if w := doLogin(router, testPassword, "10.0.0.7:1234"); w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429 after five attempts in the window, got %d", w.Code)
	}
}

func TestChangePassword(t *testing.T) {
	router := newTestRouter(t)

	cookie := sessionCookie(t, doLogin(router, testPassword, "10.0.0.1:1234"))

	send := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/change-password", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(cookie)
		router.ServeHTTP(w, req)
		return w
	}

	if w := send(`{"current_password":"wrong","new_password":"NewPass123"}`); w.Code != http.StatusUnauthorized {
		t.Errorf("wrong current password: expected 401, got %d", w.Code)
	}
	if w := send(`{"current_password":"` + testPassword + `","new_password":"short"}`); w.Code != http.StatusBadRequest {
		t.Errorf("short new password: expected 400, got %d", w.Code)
	}
	if w := send(`{"current_password":"` + testPassword + `","new_password":"NewPass123"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// The old password no longer verifies; the new one does.
	if w := doLogin(router, testPassword, "10.0.0.2:1234"); w.Code != http.StatusUnauthorized {
		t.Errorf("old password should be rejected, got %d", w.Code)
	}
	if w := doLogin(router, "NewPass123", "10.0.0.3:1234"); w.Code != http.StatusOK {
		t.Errorf("new password should log in, got %d", w.Code)
	}
}

func TestGuardedEndpointsRejectAnonymous(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/logout", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without session, got %d", w.Code)
	}
}
