package main

import (
	"context"
	"log"

	"notes-backend/internal/bootstrap"
	"notes-backend/internal/config"
	"notes-backend/internal/server"
	"notes-backend/internal/tracer"
	"notes-backend/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
