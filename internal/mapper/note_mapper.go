package mapper

import (
	"github.com/google/uuid"

	"notes-backend/internal/entity"
	"notes-backend/internal/model"
)

type NoteMapper struct {
	userMapper *UserMapper
}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{
		userMapper: NewUserMapper(),
	}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	var owner *entity.User
	if n.User.Id != uuid.Nil {
		owner = m.userMapper.ToEntity(&n.User)
	}

	return &entity.Note{
		Id:        n.Id,
		Title:     n.Title,
		Content:   n.Content,
		UserId:    n.UserId,
		Owner:     owner,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	return &model.Note{
		Id:        n.Id,
		Title:     n.Title,
		Content:   n.Content,
		UserId:    n.UserId,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
