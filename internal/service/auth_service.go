package service

import (
	"context"
	"time"

	"notes-backend/internal/dto"
	"notes-backend/internal/entity"
	"notes-backend/internal/pkg/logger"
	"notes-backend/internal/pkg/serverutils"
	"notes-backend/internal/pkg/token"
	"notes-backend/internal/repository/specification"
	"notes-backend/internal/repository/unitofwork"
	"notes-backend/internal/session"
	"notes-backend/pkg/events"
	pktNats "notes-backend/pkg/nats"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest, userAgent string) (*dto.AuthResponse, error)
	Logout(ctx context.Context, userID uuid.UUID) error
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	tokens         *token.Service
	sessions       session.Store
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	tokens *token.Service,
	sessions session.Store,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		tokens:         tokens,
		sessions:       sessions,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewValidationError(serverutils.FieldErrors{
			"username": {"A user with that username already exists."},
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	pair, err := s.tokens.IssuePair(user.Id)
	if err != nil {
		return nil, err
	}

	s.openSession(ctx, user.Id, "")
	s.publish(ctx, "USER_REGISTERED", map[string]interface{}{
		"user_id":  user.Id,
		"username": user.Username,
	})

	return &dto.AuthResponse{
		User: dto.UserDTO{
			Id:       user.Id,
			Username: user.Username,
			Email:    user.Email,
		},
		Access:  pair.Access,
		Refresh: pair.Refresh,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, userAgent string) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewUnauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, serverutils.NewUnauthorized("Invalid credentials")
	}

	pair, err := s.tokens.IssuePair(user.Id)
	if err != nil {
		return nil, err
	}

	s.openSession(ctx, user.Id, userAgent)
	s.publish(ctx, "USER_LOGIN", map[string]interface{}{
		"user_id": user.Id,
		"device":  userAgent,
	})

	return &dto.AuthResponse{
		User: dto.UserDTO{
			Id:       user.Id,
			Username: user.Username,
			Email:    user.Email,
		},
		Access:  pair.Access,
		Refresh: pair.Refresh,
	}, nil
}

// Logout drops the caller's session marker. The JWT itself is not
// revoked and stays valid until expiry; the client discards it.
func (s *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.sessions.Delete(ctx, userID.String()); err != nil {
		s.log.Warn("auth", "failed to delete session", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
	return nil
}

func (s *authService) openSession(ctx context.Context, userID uuid.UUID, userAgent string) {
	err := s.sessions.Save(ctx, &session.Session{
		UserID:    userID.String(),
		IssuedAt:  time.Now(),
		UserAgent: userAgent,
	})
	if err != nil {
		s.log.Warn("auth", "failed to save session", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}

func (s *authService) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.log.Warn("auth", "failed to publish event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}
