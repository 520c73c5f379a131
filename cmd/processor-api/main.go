package main

import (
	"log"

	"student-data-processor/internal/api"
	"student-data-processor/internal/api/handler"
	"student-data-processor/internal/config"
	"student-data-processor/internal/progress"
	"student-data-processor/internal/store"
	"student-data-processor/internal/task"
	"student-data-processor/pkg/router"
	"student-data-processor/pkg/storage"

	_ "student-data-processor/docs"
)

// @title Student Data Processor API
// @version 1.0
// @description Asynchronous batch pipelines for generating, converting, ingesting and exporting student records.
// @host localhost:8080
// @BasePath /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	files := storage.NewManager(cfg.StoragePath)
	if err := files.Ensure(); err != nil {
		log.Fatalf("storage: %v", err)
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer st.Close()

	registry := progress.NewRegistry()
	if cfg.ProgressTTL > 0 {
		stop := registry.StartSweeper(cfg.ProgressTTL, cfg.ProgressTTL/4)
		defer stop()
	}

	pool := task.NewPool(cfg.Workers, cfg.QueueSize)
	defer pool.Close()

	h := handler.New(registry, task.NewDispatcher(pool, registry), st, files)

	r := router.New()
	api.RegisterRoutes(r, h)
	r.Start(cfg.HTTPPort)
}
