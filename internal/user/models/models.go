// Package models holds the user profile and access code documents.
package models

import (
	"strings"
	"time"
	"unicode/utf8"

	id "ecrc42/pkg/domain"
	dErrors "ecrc42/pkg/domain-errors"
)

// MaxLernnameLength bounds the learning name.
const MaxLernnameLength = 50

// Role separates students from administrators.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Counter names an activity counter field.
type Counter string

const (
	CounterCheckedProducts       Counter = "checkedProducts"
	CounterTaggedCases           Counter = "taggedCases"
	CounterLikedCases            Counter = "likedCases"
	CounterGeneratedLicenses     Counter = "generatedLicenses"
	CounterGeneratedCertificates Counter = "generatedCertificates"
)

// Path is the document field path of the counter.
func (c Counter) Path() string { return "activity." + string(c) }

// Activity holds the per-user counters shown on the dashboard.
type Activity struct {
	CheckedProducts       int `json:"checkedProducts"`
	TaggedCases           int `json:"taggedCases"`
	LikedCases            int `json:"likedCases"`
	GeneratedLicenses     int `json:"generatedLicenses"`
	GeneratedCertificates int `json:"generatedCertificates"`
}

// Total sums all counters.
func (a Activity) Total() int {
	return a.CheckedProducts + a.TaggedCases + a.LikedCases + a.GeneratedLicenses + a.GeneratedCertificates
}

// User is the profile document in the users collection.
type User struct {
	ID        id.UserID `json:"id"`
	Lernname  string    `json:"lernname"`
	Code      string    `json:"code,omitempty"`
	Email     string    `json:"email,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	Activity  Activity  `json:"activity"`
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// NewStudent validates the learning name and builds a student profile.
func NewStudent(userID id.UserID, lernname, code string, now time.Time) (*User, error) {
	lernname = strings.TrimSpace(lernname)
	if lernname == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "lernname is required")
	}
	if utf8.RuneCountInString(lernname) > MaxLernnameLength {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "lernname must be at most 50 characters")
	}
	return &User{
		ID:        userID,
		Lernname:  lernname,
		Code:      code,
		Role:      RoleStudent,
		CreatedAt: now,
	}, nil
}

// NewAdmin builds the admin profile.
func NewAdmin(userID id.UserID, email string, now time.Time) *User {
	return &User{
		ID:        userID,
		Lernname:  "Admin",
		Email:     email,
		Role:      RoleAdmin,
		CreatedAt: now,
	}
}

// AccessCode is the document in access_codes, keyed by the code itself.
type AccessCode struct {
	Code      string    `json:"code"`
	UserID    id.UserID `json:"userId"`
	Lernname  string    `json:"lernname"`
	CreatedAt time.Time `json:"createdAt"`
}
