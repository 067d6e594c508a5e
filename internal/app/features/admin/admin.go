// Package admin serves the prebuilt admin panel behind the admin cookie.
package admin

import (
	"net/http"

	"github.com/dalemusser/folio/internal/app/system/auth"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
)

// Prefix is the mount point of the admin panel.
const Prefix = "/admin"

// Files returns the static file handler for the admin bundle in dir, with
// pre-compressed asset support.
func Files(dir string) http.Handler {
	return fileserver.Handler(Prefix, dir)
}

// Routes guards files with the admin page gate. Requests without a valid
// cookie are redirected to "/", except for the login page.
func Routes(gate *auth.Gate, files http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(gate.RequireAdminPage)
	r.Handle("/", files)
	r.Handle("/*", files)
	return r
}
