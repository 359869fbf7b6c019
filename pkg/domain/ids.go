// Package domain holds identifier primitives shared across modules.
//
// Identifiers are distinct named UUID types so the compiler rejects passing a
// CheckID where a UserID is expected. Construct them with the Parse functions at
// trust boundaries (URL params, token claims); New* helpers mint fresh ids.
package domain

import (
	"strings"

	"github.com/google/uuid"

	dErrors "ecrc42/pkg/domain-errors"
)

type (
	UserID    uuid.UUID
	CheckID   uuid.UUID
	CaseID    uuid.UUID
	LicenseID uuid.UUID
)

func NewUserID() UserID       { return UserID(uuid.New()) }
func NewCheckID() CheckID     { return CheckID(uuid.New()) }
func NewCaseID() CaseID       { return CaseID(uuid.New()) }
func NewLicenseID() LicenseID { return LicenseID(uuid.New()) }

func ParseUserID(s string) (UserID, error) {
	u, err := parseUUID(s, "user")
	return UserID(u), err
}

func ParseCheckID(s string) (CheckID, error) {
	u, err := parseUUID(s, "check")
	return CheckID(u), err
}

func ParseCaseID(s string) (CaseID, error) {
	u, err := parseUUID(s, "case")
	return CaseID(u), err
}

func ParseLicenseID(s string) (LicenseID, error) {
	u, err := parseUUID(s, "license")
	return LicenseID(u), err
}

func parseUUID(s, kind string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeBadRequest, kind+" id is required")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeBadRequest, "invalid "+kind+" id")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeBadRequest, "invalid "+kind+" id")
	}
	return u, nil
}

func (id UserID) String() string    { return uuid.UUID(id).String() }
func (id CheckID) String() string   { return uuid.UUID(id).String() }
func (id CaseID) String() string    { return uuid.UUID(id).String() }
func (id LicenseID) String() string { return uuid.UUID(id).String() }

func (id UserID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id CheckID) IsNil() bool   { return uuid.UUID(id) == uuid.Nil }
func (id CaseID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id LicenseID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// Text marshalling keeps ids as canonical UUID strings in stored documents
// and JSON responses.

func (id UserID) MarshalText() ([]byte, error)    { return uuid.UUID(id).MarshalText() }
func (id CheckID) MarshalText() ([]byte, error)   { return uuid.UUID(id).MarshalText() }
func (id CaseID) MarshalText() ([]byte, error)    { return uuid.UUID(id).MarshalText() }
func (id LicenseID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *UserID) UnmarshalText(b []byte) error    { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *CheckID) UnmarshalText(b []byte) error   { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *CaseID) UnmarshalText(b []byte) error    { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *LicenseID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
