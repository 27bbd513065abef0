package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	// Account flags. Nothing in this API mutates them; they exist for
	// external administration.
	IsActive  bool
	IsStaff   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
