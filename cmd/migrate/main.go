package main

import (
	"log"

	"notes-backend/internal/config"
	"notes-backend/internal/model"
	"notes-backend/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to DB: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Note{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migration complete")
}
