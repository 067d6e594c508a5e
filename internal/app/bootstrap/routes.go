// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	adminfeature "github.com/dalemusser/folio/internal/app/features/admin"
	blogsfeature "github.com/dalemusser/folio/internal/app/features/blogs"
	educationfeature "github.com/dalemusser/folio/internal/app/features/education"
	errorsfeature "github.com/dalemusser/folio/internal/app/features/errors"
	experiencefeature "github.com/dalemusser/folio/internal/app/features/experience"
	healthfeature "github.com/dalemusser/folio/internal/app/features/health"
	loginfeature "github.com/dalemusser/folio/internal/app/features/login"
	notablefeature "github.com/dalemusser/folio/internal/app/features/notableprojects"
	projectsfeature "github.com/dalemusser/folio/internal/app/features/projects"
	renderfeature "github.com/dalemusser/folio/internal/app/features/render"
	responsibilitiesfeature "github.com/dalemusser/folio/internal/app/features/responsibilities"
	skillsfeature "github.com/dalemusser/folio/internal/app/features/skills"
	socialsfeature "github.com/dalemusser/folio/internal/app/features/socials"
	statsfeature "github.com/dalemusser/folio/internal/app/features/stats"
	experiencestore "github.com/dalemusser/folio/internal/app/store/experience"
	notableprojectstore "github.com/dalemusser/folio/internal/app/store/notableprojects"
	projectstore "github.com/dalemusser/folio/internal/app/store/projects"
	responsibilitystore "github.com/dalemusser/folio/internal/app/store/responsibilities"
	settingsstore "github.com/dalemusser/folio/internal/app/store/settings"
	"github.com/dalemusser/folio/internal/app/system/blogfeed"
	"github.com/dalemusser/folio/internal/app/system/classifier"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed. The content API lives under /api, the
// health check under /health and the admin panel under /admin. Unmatched
// routes and panics answer with JSON errors.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	s, err := currentServices()
	if err != nil {
		return nil, err
	}
	db := deps.MongoDatabase

	errs := errorsfeature.NewHandler(logger)

	r := chi.NewRouter()
	r.Use(errs.Recoverer)
	r.NotFound(errs.NotFound)
	r.MethodNotAllowed(errs.MethodNotAllowed)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Content collections
	projects := projectstore.New(db)
	job := classifier.NewJob(appCfg.StatsServiceURL, classifier.StoreSink{Store: projects}, timeouts.Long(), logger)
	projectsHandler := projectsfeature.NewHandler(projects, job, logger)
	r.Mount("/api/projects", projectsfeature.Routes(projectsHandler, s.gate))

	notableHandler := notablefeature.NewHandler(notableprojectstore.New(db), logger)
	r.Mount("/api/notable-projects", notablefeature.Routes(notableHandler, s.gate))

	experienceHandler := experiencefeature.NewHandler(experiencestore.New(db), logger)
	r.Mount("/api/experience", experiencefeature.Routes(experienceHandler, s.gate))

	responsibilitiesHandler := responsibilitiesfeature.NewHandler(responsibilitystore.New(db), logger)
	r.Mount("/api/responsibilities", responsibilitiesfeature.Routes(responsibilitiesHandler, s.gate))

	// Singleton documents
	skillsHandler := skillsfeature.NewHandler(settingsstore.NewSkills(db), logger)
	r.Mount("/api/skills", skillsfeature.Routes(skillsHandler, s.gate))

	educationHandler := educationfeature.NewHandler(settingsstore.NewEducation(db), logger)
	r.Mount("/api/edu", educationfeature.Routes(educationHandler, s.gate))

	socialsHandler := socialsfeature.NewHandler(settingsstore.NewSocials(db), logger)
	r.Mount("/api/socials", socialsfeature.Routes(socialsHandler, s.gate))

	// Authentication
	loginHandler := loginfeature.NewHandler(s.gate, s.loginLimiter, logger)
	r.Mount("/api/auth", loginfeature.Routes(loginHandler))

	// Upstream proxies
	r.Mount("/api/stats", statsfeature.Routes(s.stats, s.statsLimiter))

	renderHandler := renderfeature.NewHandler(s.github, appCfg.ReadmeEngine, appCfg.ReadmeBranch, logger)
	r.Mount("/api/readme", renderfeature.ReadmeRoutes(renderHandler))
	r.Mount("/api/markdown", renderfeature.MarkdownRoutes(renderHandler, s.renderLimiter))

	feed := blogfeed.New(appCfg.BlogFeedURL, appCfg.BlogPostBaseURL, timeouts.Medium())
	blogsHandler := blogsfeature.NewHandler(feed, logger)
	r.Mount("/api/blogs", blogsfeature.Routes(blogsHandler))

	// Admin panel with pre-compressed file support (gzip/brotli)
	r.Mount(adminfeature.Prefix, adminfeature.Routes(s.gate, adminfeature.Files(appCfg.AdminDir)))

	return r, nil
}
