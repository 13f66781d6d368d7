package config

import (
	"strings"
	"time"
)

// Rate limit key strategies.  They decide which requests share a bucket.
const (
	// RateKeyIP gives every client address one bucket for all limited routes.
	RateKeyIP = "ip"
	// RateKeyRoute gives every route one bucket shared by all clients.
	RateKeyRoute = "route"
	// RateKeyIPRoute gives every client one bucket per route.
	RateKeyIPRoute = "ip_route"
	// RateKeyIPMode gives every client one bucket per /get_pairs mode, so
	// paging through letters does not starve "full" requests.
	RateKeyIPMode = "ip_mode"
)

// RateLimitConfig configures the Redis token bucket in front of
// /get_pairs.  A bucket holds at most Capacity tokens, each request takes
// one, and RefillTokens are added every RefillInterval.  Idle buckets
// expire after TTL.
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
	KeyStrategy    string
	Prefix         string
	// Debug exposes the bucket key in an X-RateLimit-Key response header.
	Debug bool
}

// LoadRateLimitConfig reads the RATE_LIMIT_* variables.
//
// The defaults allow a burst of 120 requests per address refilled at two
// per second; the page fetches one mode per click, so a user flipping
// quickly through letters stays well inside the limit.  Non-positive sizes
// are raised to 1, an unknown key strategy falls back to RateKeyIP, and TTL
// is never shorter than five refill intervals so a bucket is not evicted
// while it still refills.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled:        envBool("RATE_LIMIT_ENABLED", true),
		Capacity:       envInt("RATE_LIMIT_CAPACITY", 120),
		RefillTokens:   envInt("RATE_LIMIT_REFILL_TOKENS", 2),
		RefillInterval: envDur("RATE_LIMIT_REFILL_INTERVAL", time.Second),
		TTL:            envDur("RATE_LIMIT_TTL", 10*time.Minute),
		KeyStrategy:    strings.ToLower(envStr("RATE_LIMIT_KEY_STRATEGY", RateKeyIP)),
		Prefix:         envStr("RATE_LIMIT_PREFIX", "lp:rl"),
		Debug:          envBool("RATE_LIMIT_DEBUG", false),
	}

	switch cfg.KeyStrategy {
	case RateKeyIP, RateKeyRoute, RateKeyIPRoute, RateKeyIPMode:
	default:
		cfg.KeyStrategy = RateKeyIP
	}
	if cfg.Capacity < 1 {
		cfg.Capacity = 1
	}
	if cfg.RefillTokens < 1 {
		cfg.RefillTokens = 1
	}
	if cfg.RefillInterval <= 0 {
		cfg.RefillInterval = time.Second
	}
	if minTTL := 5 * cfg.RefillInterval; cfg.TTL < minTTL {
		cfg.TTL = minTTL
	}
	return cfg
}
