// Package requestcontext provides HTTP-independent context accessors for request-scoped values.
//
// Middleware sets these values; services read them without importing net/http.
//
//	userID := requestcontext.UserID(ctx)
//	now := requestcontext.Now(ctx)
//
// Tests inject values directly:
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
package requestcontext

import (
	"context"
	"time"

	id "ecrc42/pkg/domain"
)

// Role of the authenticated principal.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

type (
	userIDKey      struct{}
	roleKey        struct{}
	tokenIDKey     struct{}
	tokenExpiryKey struct{}
	adminEmailKey  struct{}
	clientIPKey    struct{}
	userAgentKey   struct{}
	clientNameKey  struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
)

// -----------------------------------------------------------------------------
// Auth context
// -----------------------------------------------------------------------------

// UserID retrieves the authenticated user ID. Returns the nil id if not set.
func UserID(ctx context.Context) id.UserID {
	if userID, ok := ctx.Value(userIDKey{}).(id.UserID); ok {
		return userID
	}
	return id.UserID{}
}

func WithUserID(ctx context.Context, userID id.UserID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserRole returns the principal's role, or "" for anonymous requests.
func UserRole(ctx context.Context) Role {
	if r, ok := ctx.Value(roleKey{}).(Role); ok {
		return r
	}
	return ""
}

func WithRole(ctx context.Context, r Role) context.Context {
	return context.WithValue(ctx, roleKey{}, r)
}

// IsAdmin reports whether the request was authenticated with an admin token.
func IsAdmin(ctx context.Context) bool {
	return UserRole(ctx) == RoleAdmin
}

// AdminEmail is set for admin sessions only.
func AdminEmail(ctx context.Context) string {
	if e, ok := ctx.Value(adminEmailKey{}).(string); ok {
		return e
	}
	return ""
}

func WithAdminEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, adminEmailKey{}, email)
}

// TokenID returns the jti of the bearer token used for this request.
func TokenID(ctx context.Context) string {
	if jti, ok := ctx.Value(tokenIDKey{}).(string); ok {
		return jti
	}
	return ""
}

// TokenExpiry returns the bearer token expiry; zero when unauthenticated.
func TokenExpiry(ctx context.Context) time.Time {
	if t, ok := ctx.Value(tokenExpiryKey{}).(time.Time); ok {
		return t
	}
	return time.Time{}
}

func WithToken(ctx context.Context, jti string, expiresAt time.Time) context.Context {
	ctx = context.WithValue(ctx, tokenIDKey{}, jti)
	return context.WithValue(ctx, tokenExpiryKey{}, expiresAt)
}

// -----------------------------------------------------------------------------
// Client metadata
// -----------------------------------------------------------------------------

func ClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey{}).(string); ok {
		return ip
	}
	return ""
}

func UserAgent(ctx context.Context) string {
	if ua, ok := ctx.Value(userAgentKey{}).(string); ok {
		return ua
	}
	return ""
}

// ClientName is the parsed browser name and version, e.g. "Firefox 128.0".
func ClientName(ctx context.Context) string {
	if n, ok := ctx.Value(clientNameKey{}).(string); ok {
		return n
	}
	return ""
}

// WithClientMetadata injects client IP, raw User-Agent and parsed client name.
func WithClientMetadata(ctx context.Context, clientIP, userAgent, clientName string) context.Context {
	ctx = context.WithValue(ctx, clientIPKey{}, clientIP)
	ctx = context.WithValue(ctx, userAgentKey{}, userAgent)
	return context.WithValue(ctx, clientNameKey{}, clientName)
}

// -----------------------------------------------------------------------------
// Request metadata
// -----------------------------------------------------------------------------

func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return reqID
	}
	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// Now retrieves the request-scoped time.
// Falls back to time.Now() outside HTTP requests (CLI, workers).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime pins "now" for the lifetime of ctx.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, t)
}
