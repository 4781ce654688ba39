package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAthlete      Role = "ATHLETE"
	RoleAcademyAdmin Role = "ACADEMY_ADMIN"
)

// User is the identity record. PasswordHash is empty for accounts that can
// not sign in with credentials (e.g. the seeded academy admin).
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
