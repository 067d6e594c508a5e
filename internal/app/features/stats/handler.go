// Package stats proxies GitHub and LeetCode statistics behind a read-through
// cache.
package stats

import (
	"context"
	"strings"
	"time"

	"github.com/dalemusser/folio/internal/app/system/githubapi"
	"github.com/dalemusser/folio/internal/app/system/leetcode"
	repocache "github.com/goliatone/go-repository-cache/cache"
	"go.uber.org/zap"
)

// DefaultCacheTTL is how long a statistics answer is reused.
const DefaultCacheTTL = time.Hour

// GitHub is the part of the GitHub client the proxies use.
type GitHub interface {
	UserStats(ctx context.Context, user string) (githubapi.Stats, error)
	RepoStars(ctx context.Context, owner, repo string) (int, error)
}

// LeetCode is the part of the LeetCode client the proxies use.
type LeetCode interface {
	Stats(ctx context.Context, username string) (leetcode.Stats, error)
}

type Handler struct {
	GitHub   GitHub
	LeetCode LeetCode
	Log      *zap.Logger

	// Failed fetches are never stored, so the next request retries upstream.
	cache repocache.CacheService
}

// NewHandler builds the proxies with a cache of the given lifetime
// (DefaultCacheTTL when zero).
func NewHandler(gh GitHub, lc LeetCode, ttl time.Duration, logger *zap.Logger) (*Handler, error) {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	cfg := repocache.DefaultConfig()
	cfg.TTL = ttl
	cfg.EarlyRefresh = nil
	cfg.MissingRecordStorage = false

	svc, err := repocache.NewCacheService(cfg)
	if err != nil {
		logger.Error("stats cache init failed", zap.Error(err))
		return nil, err
	}
	return &Handler{
		GitHub:   gh,
		LeetCode: lc,
		Log:      logger,
		cache:    svc,
	}, nil
}

// Cache keys are case-insensitive and namespaced per upstream call.
func cacheKey(kind string, parts ...string) string {
	return kind + ":" + strings.ToLower(strings.Join(parts, "/"))
}

func (h *Handler) githubStats(ctx context.Context, user string) (githubapi.Stats, error) {
	return repocache.GetOrFetch(ctx, h.cache, cacheKey("github", user),
		func(ctx context.Context) (githubapi.Stats, error) {
			return h.GitHub.UserStats(ctx, user)
		})
}

func (h *Handler) repoStars(ctx context.Context, owner, repo string) (int, error) {
	return repocache.GetOrFetch(ctx, h.cache, cacheKey("stars", owner, repo),
		func(ctx context.Context) (int, error) {
			return h.GitHub.RepoStars(ctx, owner, repo)
		})
}

func (h *Handler) leetCodeStats(ctx context.Context, user string) (leetcode.Stats, error) {
	return repocache.GetOrFetch(ctx, h.cache, cacheKey("leetcode", user),
		func(ctx context.Context) (leetcode.Stats, error) {
			return h.LeetCode.Stats(ctx, user)
		})
}
