// Package export renders check reports, certificates and license
// declarations as PDF (go-pdf/fpdf) or HTML (html/template).
package export

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	dErrors "ecrc42/pkg/domain-errors"
)

// Format selects the output encoding.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
)

// ParseFormat defaults to PDF.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pdf":
		return FormatPDF, nil
	case "html":
		return FormatHTML, nil
	}
	return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unsupported export format %q", s))
}

func (f Format) ContentType() string {
	if f == FormatHTML {
		return "text/html; charset=utf-8"
	}
	return "application/pdf"
}

// File is a rendered document ready to be served or written.
type File struct {
	Name        string
	ContentType string
	Body        []byte
}

// ErrNothingToCertify is returned when a certificate would have no entries.
var ErrNothingToCertify = errors.New("nothing to certify")

// Renderer holds presentation settings shared by all documents.
type Renderer struct {
	location *time.Location
	now      func() time.Time
}

type Option func(*Renderer)

// WithLocation sets the time zone used for printed dates.
func WithLocation(loc *time.Location) Option {
	return func(r *Renderer) {
		if loc != nil {
			r.location = loc
		}
	}
}

// WithClock overrides the issue date source.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{location: time.UTC, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// date formats like de-CH: 02.01.2006.
func (r *Renderer) date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(r.location).Format("02.01.2006")
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9]+`)

// fileSafe replaces everything but ASCII letters and digits with underscores.
func fileSafe(s string) string {
	s = unsafeFileChars.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return "Dokument"
	}
	return s
}

// printable drops runes the PDF core fonts cannot encode, such as the emoji
// prefixes of wizard labels, and collapses whitespace.
func printable(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\n' || r == '\t':
			b.WriteByte(' ')
		case r < 0x20:
		case r < 0x100:
			b.WriteRune(r)
		case strings.ContainsRune("•–—„“”‘’€…", r):
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// plain is printable applied per line.
func plain(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = printable(l)
	}
	return strings.Join(lines, "\n")
}
