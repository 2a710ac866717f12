package handlers

import (
	"net/http"

	"github.com/m1z23r/drift/pkg/drift"

	"github.com/dimitrije/places-api/internal/middleware"
	"github.com/dimitrije/places-api/internal/services"
	"github.com/dimitrije/places-api/pkg/dto"
)

type AuthHandler struct {
	sessions  *services.SessionService
	adminUser string
}

func NewAuthHandler(sessions *services.SessionService, adminUser string) *AuthHandler {
	return &AuthHandler{sessions: sessions, adminUser: adminUser}
}

func (h *AuthHandler) Login(c *drift.Context) {
	var req dto.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if errs := dto.Validate(req); errs != nil {
		_ = c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{Errors: errs})
		return
	}

	token, sess, err := h.sessions.Login(req.Username, req.Password)
	if err != nil {
		_ = c.JSON(http.StatusUnauthorized, dto.LoginResponse{
			Success: false,
			Error:   "invalid username or password",
		})
		return
	}

	http.SetCookie(c.Response, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	_ = c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: "login successful",
		User:    sess.User,
	})
}

// Check reports session state without refreshing it.
func (h *AuthHandler) Check(c *drift.Context) {
	resp := dto.CheckResponse{}
	if cookie, err := c.Request.Cookie(middleware.SessionCookie); err == nil {
		if sess, err := h.sessions.Validate(cookie.Value); err == nil &&
			sess.Authenticated && sess.User == h.adminUser {
			resp.Authenticated = true
			resp.User = &sess.User
		}
	}
	_ = c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Logout(c *drift.Context) {
	if cookie, err := c.Request.Cookie(middleware.SessionCookie); err == nil {
		h.sessions.Logout(cookie.Value)
	}

	http.SetCookie(c.Response, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	_ = c.JSON(http.StatusOK, dto.LogoutResponse{
		Success:  true,
		Message:  "logout successful",
		Redirect: "/",
	})
}
