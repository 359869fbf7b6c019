package domain

import (
	"testing"
)

// FuzzParseCheckID checks that parsing arbitrary path input never panics and
// always yields either a usable id or an error.
func FuzzParseCheckID(f *testing.F) {
	f.Add("")
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("00000000-0000-0000-0000-000000000000")
	f.Add("../../etc/passwd")
	f.Add(string([]byte{0x00, 0x01, 0x02}))

	f.Fuzz(func(t *testing.T, input string) {
		id, err := ParseCheckID(input)
		if err != nil {
			if !id.IsNil() {
				t.Fatalf("expected nil id alongside error for %q", input)
			}
			return
		}
		if id.IsNil() {
			t.Fatalf("parsed nil id without error for %q", input)
		}
	})
}
