package testutil

import (
	"net/http"
	"time"

	id "ecrc42/pkg/domain"
	"ecrc42/pkg/requestcontext"
)

// WithUserID simulates the auth middleware for a student request.
func WithUserID(req *http.Request, userID id.UserID) *http.Request {
	ctx := requestcontext.WithUserID(req.Context(), userID)
	ctx = requestcontext.WithRole(ctx, requestcontext.RoleStudent)
	return req.WithContext(ctx)
}

// WithAdmin simulates the auth middleware for an admin session.
func WithAdmin(req *http.Request, userID id.UserID, email string) *http.Request {
	ctx := requestcontext.WithUserID(req.Context(), userID)
	ctx = requestcontext.WithRole(ctx, requestcontext.RoleAdmin)
	ctx = requestcontext.WithAdminEmail(ctx, email)
	return req.WithContext(ctx)
}

// WithTime pins request time.
func WithTime(req *http.Request, t time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), t))
}
