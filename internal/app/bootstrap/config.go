// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/folio/internal/app/features/render"
	"github.com/dalemusser/folio/internal/app/system/auth"
	"github.com/dalemusser/folio/internal/app/system/blogfeed"
	"github.com/dalemusser/folio/internal/app/system/classifier"
	"github.com/dalemusser/folio/internal/app/system/githubapi"
	"github.com/dalemusser/folio/internal/app/system/leetcode"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// MinJWTSecretLen is the shortest accepted jwt_secret.
const MinJWTSecretLen = 16

// appConfigKeys defines the configuration keys for folio.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, jwt_secret, etc.
//   - Environment variables: FOLIO_MONGO_URI, FOLIO_JWT_SECRET, etc.
//   - Command-line flags: --mongo_uri, --jwt_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "Portfolio", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 5, Desc: "MongoDB min connection pool size (default: 5)"},

	// Admin account
	{Name: "admin_email", Default: "", Desc: "Admin login email"},
	{Name: "admin_password", Default: "", Desc: "Admin login password"},
	{Name: "admin_password_hash", Default: "", Desc: "bcrypt hash of the admin password (overrides admin_password)"},
	{Name: "jwt_secret", Default: "", Desc: "Secret used to sign admin tokens (at least 16 chars)"},
	{Name: "jwt_issuer", Default: "folio", Desc: "Issuer claim for admin tokens"},
	{Name: "token_ttl", Default: "720h", Desc: "Admin token lifetime (e.g., 720h)"},

	// Cookie
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Cookie signing key (must be strong in production)"},
	{Name: "cookie_domain", Default: "", Desc: "Admin cookie domain (blank means current host)"},

	// Upstream services
	{Name: "github_token", Default: "", Desc: "GitHub token for API and GraphQL requests"},
	{Name: "github_api_url", Default: githubapi.DefaultAPIURL, Desc: "GitHub REST API base URL"},
	{Name: "github_graphql_url", Default: githubapi.DefaultGraphQLURL, Desc: "GitHub GraphQL endpoint"},
	{Name: "leetcode_graphql_url", Default: leetcode.DefaultURL, Desc: "LeetCode GraphQL endpoint"},
	{Name: "stats_service_url", Default: classifier.DefaultStatsServiceURL, Desc: "Repository stats service used by auto-add"},
	{Name: "blog_feed_url", Default: blogfeed.DefaultFeedURL, Desc: "Blog posts feed URL"},
	{Name: "blog_post_base_url", Default: blogfeed.DefaultPostBaseURL, Desc: "Base URL for blog post links"},
	{Name: "stats_cache_ttl", Default: "1h", Desc: "How long stats responses are cached"},

	// Rendering
	{Name: "readme_engine", Default: render.EngineFolio, Desc: "README renderer: 'folio' or 'gfm'"},
	{Name: "readme_branch", Default: "main", Desc: "Branch used to resolve README images and links"},

	// Admin panel
	{Name: "admin_dir", Default: "admin/dist", Desc: "Directory holding the built admin panel"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// environment variables (WAFFLE_* for core, FOLIO_* for app) and flags,
// merged with precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "FOLIO", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		AdminEmail:        strings.TrimSpace(appValues.String("admin_email")),
		AdminPassword:     appValues.String("admin_password"),
		AdminPasswordHash: appValues.String("admin_password_hash"),
		JWTSecret:         appValues.String("jwt_secret"),
		JWTIssuer:         appValues.String("jwt_issuer"),
		TokenTTL:          appValues.Duration("token_ttl", 720*time.Hour),

		SessionKey:   appValues.String("session_key"),
		CookieDomain: appValues.String("cookie_domain"),

		GitHubToken:        appValues.String("github_token"),
		GitHubAPIURL:       appValues.String("github_api_url"),
		GitHubGraphQLURL:   appValues.String("github_graphql_url"),
		LeetCodeGraphQLURL: appValues.String("leetcode_graphql_url"),
		StatsServiceURL:    appValues.String("stats_service_url"),
		BlogFeedURL:        appValues.String("blog_feed_url"),
		BlogPostBaseURL:    appValues.String("blog_post_base_url"),
		StatsCacheTTL:      appValues.Duration("stats_cache_ttl", time.Hour),

		ReadmeEngine: strings.ToLower(strings.TrimSpace(appValues.String("readme_engine"))),
		ReadmeBranch: appValues.String("readme_branch"),

		AdminDir: appValues.String("admin_dir"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The admin account and token secret are required; a server without them
// could not authenticate any write.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if strings.TrimSpace(appCfg.MongoDatabase) == "" {
		return fmt.Errorf("mongo_database is required")
	}
	if appCfg.MongoMinPoolSize > appCfg.MongoMaxPoolSize {
		return fmt.Errorf("mongo_min_pool_size (%d) exceeds mongo_max_pool_size (%d)",
			appCfg.MongoMinPoolSize, appCfg.MongoMaxPoolSize)
	}

	creds := credentials(appCfg)
	if !creds.Configured() {
		return fmt.Errorf("admin_email and admin_password (or admin_password_hash) are required")
	}
	if len(appCfg.JWTSecret) < MinJWTSecretLen {
		return fmt.Errorf("jwt_secret must be at least %d characters", MinJWTSecretLen)
	}
	if appCfg.TokenTTL <= 0 {
		return fmt.Errorf("token_ttl must be positive")
	}
	if !render.ValidEngine(appCfg.ReadmeEngine) {
		return fmt.Errorf("readme_engine must be one of %v, got %q", render.Engines, appCfg.ReadmeEngine)
	}

	if coreCfg != nil && coreCfg.Env == "prod" && strings.HasPrefix(appCfg.SessionKey, "dev-only") {
		logger.Warn("session_key is the development default; set FOLIO_SESSION_KEY in production")
	}
	return nil
}

func credentials(appCfg AppConfig) auth.Credentials {
	return auth.Credentials{
		Email:        appCfg.AdminEmail,
		Password:     appCfg.AdminPassword,
		PasswordHash: appCfg.AdminPasswordHash,
	}
}
