// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables (FOLIO_*), configuration
// files, or command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig
// covers the framework-level settings: ports, TLS, logging, CORS and body
// size limits.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Admin account and token signing
	AdminEmail        string
	AdminPassword     string
	AdminPasswordHash string        // bcrypt hash; takes precedence over AdminPassword
	JWTSecret         string        // HMAC secret for admin tokens (at least 16 chars)
	JWTIssuer         string        // iss claim
	TokenTTL          time.Duration // admin token lifetime

	// Cookie configuration
	SessionKey   string // secret for signing the admin cookie
	CookieDomain string // blank means current host

	// Upstream services
	GitHubToken        string
	GitHubAPIURL       string
	GitHubGraphQLURL   string
	LeetCodeGraphQLURL string
	StatsServiceURL    string // repository stats service used by auto-add
	BlogFeedURL        string
	BlogPostBaseURL    string
	StatsCacheTTL      time.Duration

	// Rendering
	ReadmeEngine string // "folio" or "gfm"
	ReadmeBranch string // branch used for README image and link rewriting

	// Admin panel
	AdminDir string // directory holding the built admin bundle
}
