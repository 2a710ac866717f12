package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dimitrije/places-api/internal/middleware"
	"github.com/dimitrije/places-api/pkg/dto"
	"github.com/dimitrije/places-api/tests/testutil"
)

func setupAuthTest(t *testing.T) *testutil.HTTPTestClient {
	t.Helper()
	sessions := testutil.TestSessionService()
	handler := NewAuthHandler(sessions, "admin")

	app := drift.New()
	app.SetMode(drift.ReleaseMode)
	app.Use(driftmw.BodyParser())
	app.Post("/api/auth/login", handler.Login)
	app.Get("/api/auth/check", handler.Check)
	app.Post("/api/auth/logout", handler.Logout)

	return testutil.NewHTTPTestClient(t, app)
}

func sessionCookieValue(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie.Value
		}
	}
	t.Fatal("session cookie not set")
	return ""
}

func TestAuthHandler_Login_Success(t *testing.T) {
	client := setupAuthTest(t)

	rec := client.POST("/api/auth/login", dto.LoginRequest{
		Username: "admin",
		Password: "correct-horse",
	}, nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.LoginResponse
	testutil.ParseJSON(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "login successful", resp.Message)
	assert.Equal(t, "admin", resp.User)

	var sessionCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookie {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie)
	assert.NotEmpty(t, sessionCookie.Value)
	assert.True(t, sessionCookie.HttpOnly)
	assert.Equal(t, "/", sessionCookie.Path)
	assert.False(t, sessionCookie.Expires.IsZero())
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	client := setupAuthTest(t)

	rec := client.POST("/api/auth/login", dto.LoginRequest{
		Username: "admin",
		Password: "wrong",
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp dto.LoginResponse
	testutil.ParseJSON(t, rec, &resp)
	assert.False(t, resp.Success)
	assert.Equal(t, "invalid username or password", resp.Error)
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	client := setupAuthTest(t)

	rec := client.POST("/api/auth/login", map[string]string{"username": "admin"}, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.ValidationErrorResponse
	testutil.ParseJSON(t, rec, &resp)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "password", resp.Errors[0].Field)
}

func TestAuthHandler_Login_MalformedBody(t *testing.T) {
	client := setupAuthTest(t)

	rec := client.Request(http.MethodPost, "/api/auth/login", nil, map[string]string{
		"Content-Type": "application/json",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Check_Anonymous(t *testing.T) {
	client := setupAuthTest(t)

	rec := client.GET("/api/auth/check", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.CheckResponse
	testutil.ParseJSON(t, rec, &resp)
	assert.False(t, resp.Authenticated)
	assert.Nil(t, resp.User)
}

func TestAuthHandler_Check_Authenticated(t *testing.T) {
	client := setupAuthTest(t)

	login := client.POST("/api/auth/login", dto.LoginRequest{
		Username: "admin",
		Password: "correct-horse",
	}, nil)
	require.Equal(t, http.StatusOK, login.Code)
	token := sessionCookieValue(t, login)

	rec := client.GET("/api/auth/check", testutil.CookieHeader(middleware.SessionCookie, token))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.CheckResponse
	testutil.ParseJSON(t, rec, &resp)
	assert.True(t, resp.Authenticated)
	require.NotNil(t, resp.User)
	assert.Equal(t, "admin", *resp.User)
}

func TestAuthHandler_Check_GarbageCookie(t *testing.T) {
	client := setupAuthTest(t)

	rec := client.GET("/api/auth/check", testutil.CookieHeader(middleware.SessionCookie, "forged"))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.CheckResponse
	testutil.ParseJSON(t, rec, &resp)
	assert.False(t, resp.Authenticated)
}

func TestAuthHandler_Logout(t *testing.T) {
	client := setupAuthTest(t)

	login := client.POST("/api/auth/login", dto.LoginRequest{
		Username: "admin",
		Password: "correct-horse",
	}, nil)
	require.Equal(t, http.StatusOK, login.Code)
	token := sessionCookieValue(t, login)

	rec := client.POST("/api/auth/logout", nil, testutil.CookieHeader(middleware.SessionCookie, token))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.LogoutResponse
	testutil.ParseJSON(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "/", resp.Redirect)

	// The cookie is cleared on the response.
	var cleared *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookie {
			cleared = cookie
		}
	}
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)

	// The session is gone server-side.
	check := client.GET("/api/auth/check", testutil.CookieHeader(middleware.SessionCookie, token))
	var checkResp dto.CheckResponse
	testutil.ParseJSON(t, check, &checkResp)
	assert.False(t, checkResp.Authenticated)
}

func TestAuthHandler_Logout_WithoutSession(t *testing.T) {
	client := setupAuthTest(t)

	rec := client.POST("/api/auth/logout", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.LogoutResponse
	testutil.ParseJSON(t, rec, &resp)
	assert.True(t, resp.Success)
}
