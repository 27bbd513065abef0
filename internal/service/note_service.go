package service

import (
	"context"
	"time"

	"notes-backend/internal/dto"
	"notes-backend/internal/entity"
	"notes-backend/internal/pkg/logger"
	"notes-backend/internal/pkg/serverutils"
	"notes-backend/internal/repository/specification"
	"notes-backend/internal/repository/unitofwork"
	"notes-backend/pkg/events"
	pktNats "notes-backend/pkg/nats"

	"github.com/google/uuid"
)

type INoteService interface {
	List(ctx context.Context, userId uuid.UUID, search string) ([]*dto.NoteResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, id uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type noteService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *noteService) List(ctx context.Context, userId uuid.UUID, search string) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OwnedBy{UserID: userId},
	}
	if search != "" {
		specs = append(specs, specification.TitleOrContentILike{Term: search})
	}
	// Most recently touched first; creation time breaks ties
	specs = append(specs,
		specification.OrderBy{Field: "updated_at", Desc: true},
		specification.OrderBy{Field: "created_at", Desc: true},
	)

	notes, err := uow.NoteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.NoteResponse, len(notes))
	for i, note := range notes {
		res[i] = toNoteResponse(note)
	}
	return res, nil
}

func (s *noteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	note := &entity.Note{
		Id:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		UserId:    userId,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uow.NoteRepository().Create(ctx, note); err != nil {
		return nil, err
	}

	// Re-read to pick up the preloaded owner for the response
	created, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: note.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, "NOTE_CREATED", map[string]interface{}{
		"note_id": note.Id,
		"user_id": userId,
		"title":   note.Title,
	})

	return toNoteResponse(created), nil
}

func (s *noteService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, serverutils.NewNotFound()
	}

	return toNoteResponse(note), nil
}

func (s *noteService) Update(ctx context.Context, userId uuid.UUID, id uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, serverutils.NewNotFound()
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	note.UpdatedAt = time.Now()

	owner := note.Owner
	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}
	note.Owner = owner

	s.publish(ctx, "NOTE_UPDATED", map[string]interface{}{
		"note_id": note.Id,
		"user_id": userId,
	})

	return toNoteResponse(note), nil
}

func (s *noteService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if note == nil {
		return serverutils.NewNotFound()
	}

	if err := uow.NoteRepository().Delete(ctx, note.Id); err != nil {
		return err
	}

	s.publish(ctx, "NOTE_DELETED", map[string]interface{}{
		"note_id": note.Id,
		"user_id": userId,
	})

	return nil
}

func toNoteResponse(note *entity.Note) *dto.NoteResponse {
	res := &dto.NoteResponse{
		Id:        note.Id,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
	if note.Owner != nil {
		res.Owner = dto.UserDTO{
			Id:       note.Owner.Id,
			Username: note.Owner.Username,
			Email:    note.Owner.Email,
		}
	}
	return res
}

func (s *noteService) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.log.Warn("note", "failed to publish event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}
