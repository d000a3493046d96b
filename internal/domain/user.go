package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser         Role = "USER"
	RoleVolunteer    Role = "VOLUNTEER"
	RoleAdmin        Role = "ADMIN"
	RoleOrganization Role = "ORGANIZATION"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleVolunteer, RoleAdmin, RoleOrganization:
		return true
	}
	return false
}

// CanFallback reports whether reports may fall back to this role when no
// volunteer is in range.
func (r Role) CanFallback() bool {
	return r == RoleAdmin || r == RoleOrganization
}

type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Role      Role      `json:"user_type"`
	CreatedAt time.Time `json:"created_at"`
}

// DisplayName falls back to the username when no full name is set.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

// Candidate is a user eligible to receive a report, with the distance to the
// incident when it was found by a radius query.
type Candidate struct {
	UserID     uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	FullName   string    `json:"full_name,omitempty"`
	Email      string    `json:"-"`
	Role       Role      `json:"user_type"`
	Point      *Point    `json:"location,omitempty"`
	DistanceKM float64   `json:"distance_km"`
}

func (c Candidate) DisplayName() string {
	if c.FullName != "" {
		return c.FullName
	}
	return c.Username
}
