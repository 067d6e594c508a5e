package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dalemusser/folio/internal/app/system/apiresp"
	"github.com/dalemusser/folio/internal/app/system/apperror"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// CookieName is the admin cookie carrying the signed token.
const CookieName = "auth_token"

const tokenKey = "token"

// Admin is the authenticated caller injected into the request context.
type Admin struct {
	Email string
}

type ctxKey string

const currentAdminKey ctxKey = "currentAdmin"

// CurrentAdmin returns the admin and a "found?" flag.
func CurrentAdmin(r *http.Request) (*Admin, bool) {
	a, ok := r.Context().Value(currentAdminKey).(*Admin)
	return a, ok
}

// WithAdmin returns a copy of ctx carrying a.
func WithAdmin(ctx context.Context, a *Admin) context.Context {
	return context.WithValue(ctx, currentAdminKey, a)
}

// Gate verifies admin credentials on incoming requests. A token is accepted
// from an "Authorization: Bearer" header or from the admin cookie.
type Gate struct {
	Tokens *TokenService
	Creds  Credentials
	store  *sessions.CookieStore
	log    *zap.Logger
}

// NewGate builds a Gate. The session key signs the cookie; secure marks it
// Secure (production over HTTPS).
func NewGate(tokens *TokenService, creds Credentials, sessionKey, domain string, secure bool, logger *zap.Logger) (*Gate, error) {
	if tokens == nil {
		return nil, errors.New("auth: token service is required")
	}
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	store.Options = &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   int(tokens.TTL().Seconds()),
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
	store.MaxAge(store.Options.MaxAge)

	logger.Info("admin cookie store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &Gate{Tokens: tokens, Creds: creds, store: store, log: logger}, nil
}

// Login checks credentials and returns a fresh token.
func (g *Gate) Login(email, password string) (string, bool, error) {
	if !g.Creds.Verify(email, password) {
		return "", false, nil
	}
	tok, err := g.Tokens.Generate(g.Creds.Email)
	if err != nil {
		return "", false, err
	}
	return tok, true, nil
}

// SetCookie stores token in the admin cookie.
func (g *Gate) SetCookie(w http.ResponseWriter, r *http.Request, token string) error {
	sess, _ := g.store.New(r, CookieName)
	sess.Values[tokenKey] = token
	return sess.Save(r, w)
}

// ClearCookie expires the admin cookie.
func (g *Gate) ClearCookie(w http.ResponseWriter, r *http.Request) error {
	sess, _ := g.store.New(r, CookieName)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// Authenticate returns the admin behind the request, if any.
func (g *Gate) Authenticate(r *http.Request) (*Admin, bool) {
	tok := bearerToken(r)
	if tok == "" {
		tok = g.cookieToken(r)
	}
	if tok == "" {
		return nil, false
	}
	email, err := g.Tokens.Validate(tok)
	if err != nil {
		g.log.Debug("admin token rejected", zap.Error(err))
		return nil, false
	}
	return &Admin{Email: email}, true
}

// LoadAdmin injects the admin into the context when the request carries a
// valid token. It never rejects a request.
func (g *Gate) LoadAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a, ok := g.Authenticate(r); ok {
			r = r.WithContext(WithAdmin(r.Context(), a))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects API callers without a valid token with a JSON 401.
func (g *Gate) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentAdmin(r); !ok {
			a, found := g.Authenticate(r)
			if !found {
				apiresp.Error(w, g.log, apperror.Unauthorized())
				return
			}
			r = r.WithContext(WithAdmin(r.Context(), a))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdminPage guards the admin panel. Browsers without a valid cookie
// are sent to "/". The login page itself is always reachable.
func (g *Gate) RequireAdminPage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := strings.TrimSuffix(r.URL.Path, "/")
		if p == "/admin/login" || strings.HasPrefix(p, "/admin/login/") {
			next.ServeHTTP(w, r)
			return
		}
		tok := g.cookieToken(r)
		if tok == "" {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		email, err := g.Tokens.Validate(tok)
		if err != nil {
			g.log.Debug("admin page cookie rejected", zap.Error(err))
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), &Admin{Email: email})))
	})
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

func (g *Gate) cookieToken(r *http.Request) string {
	sess, err := g.store.Get(r, CookieName)
	if err != nil {
		var scErr securecookie.Error
		if errors.As(err, &scErr) && scErr.IsDecode() {
			g.log.Debug("admin cookie failed to decode", zap.Error(err))
		}
		return ""
	}
	tok, _ := sess.Values[tokenKey].(string)
	return tok
}
