// internal/app/features/login/handler.go
package login

import (
	"net/http"
	"strings"

	"github.com/dalemusser/folio/internal/app/system/apiresp"
	"github.com/dalemusser/folio/internal/app/system/apperror"
	"github.com/dalemusser/folio/internal/app/system/auth"
	"github.com/dalemusser/folio/internal/app/system/ratelimit"
	"go.uber.org/zap"
)

type Handler struct {
	Gate    *auth.Gate
	Limiter *ratelimit.LoginLimiter
	Log     *zap.Logger
}

func NewHandler(gate *auth.Gate, limiter *ratelimit.LoginLimiter, logger *zap.Logger) *Handler {
	return &Handler{Gate: gate, Limiter: limiter, Log: logger}
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type checkResponse struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
}

// HandleLogin handles POST /api/auth/login. On success it returns the token
// and also stores it in the admin cookie for the panel's page routes.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var body loginBody
	if err := apiresp.Decode(r, &body); err != nil {
		apiresp.Error(w, h.Log, err)
		return
	}
	email := strings.TrimSpace(body.Email)

	if allowed, msg := h.Limiter.Check(r, email); !allowed {
		h.Log.Warn("login rate limited",
			zap.String("email", email),
			zap.String("ip", ratelimit.ClientIP(r)))
		apiresp.Error(w, h.Log, apperror.TooManyRequests(msg))
		return
	}

	if email == "" || body.Password == "" {
		apiresp.Error(w, h.Log, apperror.ValidationFailed("email", "Email and password are required"))
		return
	}

	token, ok, err := h.Gate.Login(email, body.Password)
	if err != nil {
		h.Log.Error("token generation failed", zap.Error(err))
		apiresp.Error(w, h.Log, err)
		return
	}
	if !ok {
		h.Log.Info("login failed", zap.String("email", email), zap.String("ip", ratelimit.ClientIP(r)))
		apiresp.JSON(w, http.StatusUnauthorized, apiresp.ErrorBody{Error: "Invalid credentials"})
		return
	}

	h.Limiter.ResetEmail(email)
	if err := h.Gate.SetCookie(w, r, token); err != nil {
		h.Log.Error("set admin cookie", zap.Error(err))
	}
	h.Log.Info("admin logged in", zap.String("email", email))
	apiresp.JSON(w, http.StatusOK, tokenResponse{Token: token})
}

// ServeCheck handles GET /api/auth/check. It runs behind Gate.LoadAdmin.
func (h *Handler) ServeCheck(w http.ResponseWriter, r *http.Request) {
	var resp checkResponse
	if a, ok := auth.CurrentAdmin(r); ok {
		resp = checkResponse{Authenticated: true, Email: a.Email}
	}
	apiresp.JSON(w, http.StatusOK, resp)
}

// HandleLogout handles POST /api/auth/logout. Tokens are stateless, so
// logging out only expires the cookie.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Gate.ClearCookie(w, r); err != nil {
		h.Log.Error("logout: clear cookie", zap.Error(err))
	}
	apiresp.Success(w)
}
