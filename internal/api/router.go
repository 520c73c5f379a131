package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	"student-data-processor/internal/api/handler"
	"student-data-processor/pkg/router"
)

func RegisterRoutes(r *router.Router, h *handler.Handler) {
	r.POST("/api/data/generate", h.GenerateData)
	r.POST("/api/data/process-excel", h.ProcessExcel)
	r.POST("/api/data/upload-csv", h.UploadCSV)
	r.GET("/api/data/progress/*", h.GetProgress)
	r.DELETE("/api/data/progress/*", h.EvictProgress)

	r.GET("/api/students", h.ListStudents)
	// More specific routes first
	r.POST("/api/students/export/all/excel", h.ExportAllExcel)
	r.POST("/api/students/export/all/csv", h.ExportAllCSV)
	r.POST("/api/students/export/all/pdf", h.ExportAllPDF)
	r.GET("/api/students/export/progress/*", h.GetProgress)
	r.GET("/api/students/export/download/*", h.DownloadExport)
	r.GET("/api/students/export/excel", h.ExportExcel)
	r.GET("/api/students/export/csv", h.ExportCSV)
	r.GET("/api/students/export/pdf", h.ExportPDF)

	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))
}
