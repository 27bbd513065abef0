package entity

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id      uuid.UUID
	Title   string
	Content string
	UserId  uuid.UUID
	// Owner is set when the repository preloads the owning user.
	Owner     *User
	CreatedAt time.Time
	UpdatedAt time.Time
}
