package bootstrap

import (
	"context"
	"log"

	"notes-backend/internal/config"
	"notes-backend/internal/controller"
	"notes-backend/internal/pkg/logger"
	"notes-backend/internal/pkg/serverutils"
	"notes-backend/internal/pkg/token"
	"notes-backend/internal/repository/unitofwork"
	"notes-backend/internal/service"
	"notes-backend/internal/session"
	pktNats "notes-backend/pkg/nats"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	HealthController controller.IHealthController
	AuthController   controller.IAuthController
	NoteController   controller.INoteController

	JwtMiddleware fiber.Handler
	Logger        logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	tokenService := token.NewService(
		cfg.Auth.JWTSecret,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.RefreshTokenTTL,
	)

	// Session store: Redis when reachable, in-process cache otherwise
	sessions := newSessionStore(cfg)

	// NATS audit events, best-effort
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Services
	authService := service.NewAuthService(uowFactory, tokenService, sessions, natsPub, sysLogger)
	noteService := service.NewNoteService(uowFactory, natsPub, sysLogger)

	return &Container{
		HealthController: controller.NewHealthController(),
		AuthController:   controller.NewAuthController(authService),
		NoteController:   controller.NewNoteController(noteService),
		JwtMiddleware:    serverutils.NewJwtMiddleware(tokenService),
		Logger:           sysLogger,
	}
}

func newSessionStore(cfg *config.Config) session.Store {
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}

	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Falling back to in-memory sessions", err)
		return session.NewMemoryStore(cfg.Auth.SessionTTL)
	}
	return session.NewRedisStore(rdb, cfg.Auth.SessionTTL)
}
