package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedBy scopes notes to their owning user. Every note query goes
// through this filter so foreign rows behave like missing rows.
type OwnedBy struct {
	UserID uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("notes.user_id = ?", s.UserID)
}

// TitleOrContentILike filters notes by a substring match against title
// or content. ILIKE keeps it case-insensitive on Postgres.
type TitleOrContentILike struct {
	Term string
}

func (s TitleOrContentILike) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Term + "%"
	return db.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
}
