package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/folio/internal/app/system/auth"
	"go.uber.org/zap"
)

// Test credentials used by NewGate.
const (
	AdminEmail    = "admin@test.com"
	AdminPassword = "test-password"
	JWTSecret     = "test-jwt-secret-of-reasonable-length"
	SessionKey    = "test-session-key-must-be-32-chars-long"
)

// NewGate returns an auth gate with the test admin account.
func NewGate(t *testing.T) *auth.Gate {
	t.Helper()
	tokens, err := auth.NewTokenService(JWTSecret, "folio-test", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	g, err := auth.NewGate(tokens,
		auth.Credentials{Email: AdminEmail, Password: AdminPassword},
		SessionKey, "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewGate: %v", err)
	}
	return g
}

// AdminToken mints a valid bearer token for g.
func AdminToken(t *testing.T, g *auth.Gate) string {
	t.Helper()
	tok, err := g.Tokens.Generate(AdminEmail)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return tok
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewJSONRequest creates a request whose body is v encoded as JSON.
// A string v is sent verbatim.
func NewJSONRequest(t *testing.T, method, target string, v any) *http.Request {
	t.Helper()
	var body []byte
	switch b := v.(type) {
	case nil:
	case string:
		body = []byte(b)
	default:
		var err error
		if body, err = json.Marshal(v); err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// WithBearer sets the Authorization header.
func WithBearer(r *http.Request, token string) *http.Request {
	r.Header.Set("Authorization", "Bearer "+token)
	return r
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d (body %s)", r.Code, expected, r.Body.String())
	}
}

// AssertRedirect checks for a redirect to the expected location.
func (r *ResponseRecorder) AssertRedirect(t interface{ Errorf(string, ...any) }, expectedLocation string) {
	if r.Code != http.StatusSeeOther && r.Code != http.StatusFound && r.Code != http.StatusMovedPermanently {
		t.Errorf("expected redirect status, got %d", r.Code)
	}
	location := r.Header().Get("Location")
	if location != expectedLocation {
		t.Errorf("redirect location: got %q, want %q", location, expectedLocation)
	}
}

// AssertContains checks if the response body contains the expected string.
func (r *ResponseRecorder) AssertContains(t interface{ Errorf(string, ...any) }, expected string) {
	if !strings.Contains(r.Body.String(), expected) {
		t.Errorf("response body does not contain %q", expected)
	}
}

// DecodeJSON decodes the response body into v.
func (r *ResponseRecorder) DecodeJSON(t *testing.T, v any) {
	t.Helper()
	if err := json.Unmarshal(r.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", r.Body.String(), err)
	}
}
