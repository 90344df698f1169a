// Copyright (c) 2026 Tigerlilly. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Content Shaping: Teaser truncation applied to article and bio text.
  - Security: JWT issuer configuration.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "tigerlilly-api"
	AppVersion = "1.0.0"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "tigerlilly.press"
)

// # Content Shaping

const (
	// TeaserLength is the maximum character count of article text and author
	// bios in read projections. Longer values are cut to exactly this length
	// and suffixed with TeaserSuffix; a value of exactly TeaserLength is
	// returned verbatim.
	TeaserLength = 200

	// TeaserSuffix marks truncated text in read projections.
	TeaserSuffix = "..."
)

// # Default Icons

const (
	// DefaultUserIcon is the sentinel avatar assigned to users without an upload.
	DefaultUserIcon = "defaultUserIcon.jpeg"

	// DefaultAuthorIcon is the sentinel avatar assigned to authors without an upload.
	DefaultAuthorIcon = "defaultAuthorIcon.jpeg"

	// DefaultAuthorBio is the placeholder bio for authors who haven't written one.
	DefaultAuthorBio = "This author hasn't written a bio yet. But we have faith, any day now..."
)

// # Keyword Sentinel

const (
	// AllArticlesID is the article id sentinel meaning "apply to every
	// existing article" in keyword add/update/delete operations.
	AllArticlesID = 0

	// AllArticlesTitle is the article title echoed by broadcast keyword operations.
	AllArticlesTitle = "All Articles"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)
