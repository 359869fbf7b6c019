package evaluator

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Tri is a wizard answer that may not have been given yet.
// The zero value is Unknown so an empty AnswerSet is "nothing answered".
type Tri int8

const (
	Unknown Tri = iota
	Yes
	No
)

// TriOf converts a definite answer.
func TriOf(b bool) Tri {
	if b {
		return Yes
	}
	return No
}

func (t Tri) IsYes() bool     { return t == Yes }
func (t Tri) IsNo() bool      { return t == No }
func (t Tri) IsUnknown() bool { return t != Yes && t != No }

func (t Tri) String() string {
	switch t {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "unknown"
	}
}

// German renders the answer the way reports show it.
func (t Tri) German() string {
	switch t {
	case Yes:
		return "Ja"
	case No:
		return "Nein"
	default:
		return "Unbekannt"
	}
}

// MarshalJSON writes true, false or null.
func (t Tri) MarshalJSON() ([]byte, error) {
	switch t {
	case Yes:
		return []byte("true"), nil
	case No:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts booleans, null and the string forms understood by ParseTri.
func (t *Tri) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*t = Unknown
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		s = str
	}
	return t.UnmarshalText([]byte(s))
}

// UnmarshalText is used by YAML answer files and query strings.
func (t *Tri) UnmarshalText(b []byte) error {
	v, err := ParseTri(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t Tri) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ParseTri understands English and German yes/no words.
func ParseTri(s string) (Tri, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "ja", "j", "1":
		return Yes, nil
	case "false", "no", "n", "nein", "0":
		return No, nil
	case "", "null", "unknown", "unbekannt", "weiss nicht", "weiß nicht", "?":
		return Unknown, nil
	default:
		return Unknown, fmt.Errorf("invalid yes/no answer %q", s)
	}
}
