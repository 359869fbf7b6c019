// Package metadata extracts client IP and User-Agent details into the request context.
package metadata

import (
	"net"
	"net/http"
	"strings"

	"github.com/mssola/useragent"

	"ecrc42/pkg/requestcontext"
)

// ClientMetadata stores client IP, raw User-Agent and the parsed browser name.
// Apply it before rate limiting, which keys on the client IP.
func ClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("User-Agent")
		ctx := requestcontext.WithClientMetadata(r.Context(), ClientIPFromRequest(r), raw, ClientName(raw))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClientName renders a short "Browser Version (OS)" label, or "" for an empty agent.
func ClientName(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	ua := useragent.New(raw)
	if ua.Bot() {
		return "bot"
	}
	name, version := ua.Browser()
	label := strings.TrimSpace(name + " " + version)
	if os := ua.OS(); os != "" {
		label += " (" + os + ")"
	}
	return label
}

// ClientIPFromRequest extracts the client IP, honouring proxy headers.
func ClientIPFromRequest(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	if r.RemoteAddr == "" {
		return "unknown"
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
