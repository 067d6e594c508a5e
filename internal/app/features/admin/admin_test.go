package admin_test

import (
	"net/http"
	"testing"

	"github.com/dalemusser/folio/internal/app/features/admin"
	"github.com/dalemusser/folio/internal/app/system/auth"
	"github.com/dalemusser/folio/internal/testutil"
	"github.com/go-chi/chi/v5"
)

func newRouter(t *testing.T) (http.Handler, *auth.Gate) {
	t.Helper()
	gate := testutil.NewGate(t)
	files := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := ""
		if a, ok := auth.CurrentAdmin(r); ok {
			email = a.Email
		}
		_, _ = w.Write([]byte("panel " + r.URL.Path + " " + email))
	})
	root := chi.NewRouter()
	root.Mount(admin.Prefix, admin.Routes(gate, files))
	return root, gate
}

func TestAdmin_NoCookieRedirects(t *testing.T) {
	h, _ := newRouter(t)

	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/admin/projects"))
	rec.AssertRedirect(t, "/")
}

func TestAdmin_InvalidCookieRedirects(t *testing.T) {
	h, _ := newRouter(t)

	req := testutil.NewRequest(http.MethodGet, "/admin/")
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "not-a-token"})
	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, req)
	rec.AssertRedirect(t, "/")
}

func TestAdmin_LoginPageIsOpen(t *testing.T) {
	h, _ := newRouter(t)

	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/admin/login"))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "panel /admin/login")
}

func TestAdmin_CookieServesPanel(t *testing.T) {
	h, gate := newRouter(t)

	login := testutil.NewRecorder()
	if err := gate.SetCookie(login, testutil.NewRequest(http.MethodPost, "/api/auth/login"), testutil.AdminToken(t, gate)); err != nil {
		t.Fatalf("SetCookie: %v", err)
	}
	cookies := login.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected admin cookie")
	}

	req := testutil.NewRequest(http.MethodGet, "/admin/projects")
	req.AddCookie(cookies[0])
	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, req)
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "panel /admin/projects "+testutil.AdminEmail)
}
