package models

import (
	"crypto/rand"
	"io"
	"strings"
)

// CodeAlphabet omits characters that are easy to confuse (0/O, 1/I).
const CodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	codeGroups    = 3
	codeGroupSize = 4
)

// GenerateAccessCode returns a code of the form XXXX-XXXX-XXXX.
func GenerateAccessCode() (string, error) {
	return GenerateAccessCodeFrom(rand.Reader)
}

// GenerateAccessCodeFrom draws from r using rejection sampling so every
// alphabet character is equally likely.
func GenerateAccessCodeFrom(r io.Reader) (string, error) {
	const n = codeGroups * codeGroupSize
	limit := 256 - 256%len(CodeAlphabet)

	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, CodeAlphabet[int(b)%len(CodeAlphabet)])
			if len(out) == n {
				break
			}
		}
	}

	var sb strings.Builder
	for i := range codeGroups {
		if i > 0 {
			sb.WriteByte('-')
		}
		sb.Write(out[i*codeGroupSize : (i+1)*codeGroupSize])
	}
	return sb.String(), nil
}

// NormalizeAccessCode upper-cases the input, drops whitespace and separators
// and re-inserts the dashes. It reports false when the result is not a
// well-formed code.
func NormalizeAccessCode(input string) (string, bool) {
	var raw strings.Builder
	for _, r := range strings.ToUpper(input) {
		switch {
		case r == '-' || r == ' ' || r == '\t':
			continue
		case r < 128 && strings.ContainsRune(CodeAlphabet, r):
			raw.WriteRune(r)
		default:
			return "", false
		}
	}
	s := raw.String()
	if len(s) != codeGroups*codeGroupSize {
		return "", false
	}
	return s[0:4] + "-" + s[4:8] + "-" + s[8:12], true
}
