package handler

import (
	"student-data-processor/internal/progress"
	"student-data-processor/internal/store"
	"student-data-processor/internal/task"
	"student-data-processor/pkg/storage"
)

// Handler carries the shared dependencies of all HTTP endpoints.
type Handler struct {
	Registry   *progress.Registry
	Dispatcher *task.Dispatcher
	Store      *store.Store
	Files      *storage.Manager
}

func New(reg *progress.Registry, d *task.Dispatcher, st *store.Store, files *storage.Manager) *Handler {
	return &Handler{
		Registry:   reg,
		Dispatcher: d,
		Store:      st,
		Files:      files,
	}
}
