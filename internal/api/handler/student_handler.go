package handler

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"student-data-processor/internal/model"
	"student-data-processor/internal/pipeline"
	"student-data-processor/internal/progress"
	"student-data-processor/internal/store"
	"student-data-processor/pkg/storage"
)

// ListStudents returns a page of stored students
// @Summary List students
// @Description Fetch one page of the students table, optionally filtered by student id or class.
// @Tags students
// @Produce json
// @Param page query int false "Zero-based page number" default(0)
// @Param size query int false "Page size" default(10)
// @Param studentId query int false "Filter by dataset student id"
// @Param studentClass query string false "Filter by class"
// @Success 200 {object} map[string]interface{} "Page of students"
// @Failure 500 {object} map[string]interface{} "Query failed"
// @Router /students [get]
func (h *Handler) ListStudents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	if page < 0 {
		page = 0
	}
	size, err := strconv.ParseInt(q.Get("size"), 10, 64)
	if err != nil || size <= 0 {
		size = 10
	}

	filter, err := parseFilter(q.Get("studentId"), q.Get("studentClass"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	totalItems, err := h.Store.CountFiltered(filter.StudentID, filter.Class)
	if err != nil {
		http.Error(w, "Failed to count students", http.StatusInternalServerError)
		return
	}

	students, err := h.Store.PageFiltered(filter.StudentID, filter.Class, page*size, size)
	if err != nil {
		http.Error(w, "Failed to fetch students", http.StatusInternalServerError)
		return
	}
	if students == nil {
		students = []model.StudentRecord{}
	}

	totalPages := totalItems / size
	if totalItems%size != 0 {
		totalPages++
	}

	writeJSON(w, map[string]interface{}{
		"students":    students,
		"currentPage": page,
		"totalItems":  totalItems,
		"totalPages":  totalPages,
	})
}

// ExportExcel exports matching students as an xlsx download
// @Summary Export students as xlsx
// @Description Render the matching students as a spreadsheet and return it directly. Intended for filtered exports; use the async variant for the full dataset.
// @Tags students
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param studentId query int false "Filter by dataset student id"
// @Param studentClass query string false "Filter by class"
// @Success 200 {file} file "xlsx document"
// @Failure 500 {object} map[string]interface{} "Export failed"
// @Router /students/export/excel [get]
func (h *Handler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	h.syncExport(w, r, "xlsx", pipeline.ExportXLSXBytes)
}

// ExportCSV exports matching students as a csv download
// @Summary Export students as csv
// @Description Render the matching students as a csv document and return it directly.
// @Tags students
// @Produce text/csv
// @Param studentId query int false "Filter by dataset student id"
// @Param studentClass query string false "Filter by class"
// @Success 200 {file} file "csv document"
// @Failure 500 {object} map[string]interface{} "Export failed"
// @Router /students/export/csv [get]
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	h.syncExport(w, r, "csv", pipeline.ExportCSVBytes)
}

// ExportPDF exports matching students as a pdf report
// @Summary Export students as pdf
// @Description Render the matching students as a paginated report and return it directly.
// @Tags students
// @Produce application/pdf
// @Param studentId query int false "Filter by dataset student id"
// @Param studentClass query string false "Filter by class"
// @Success 200 {file} file "pdf report"
// @Failure 500 {object} map[string]interface{} "Export failed"
// @Router /students/export/pdf [get]
func (h *Handler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	h.syncExport(w, r, "pdf", pipeline.ExportPDFBytes)
}

// ExportAllExcel starts an asynchronous full-table xlsx export
// @Summary Export all students as xlsx
// @Description Stream the whole students table into an xlsx file on disk. Runs asynchronously; poll the returned task id and download the file when completed.
// @Tags students
// @Produce json
// @Success 200 {object} map[string]interface{} "Task accepted"
// @Router /students/export/all/excel [post]
func (h *Handler) ExportAllExcel(w http.ResponseWriter, r *http.Request) {
	h.asyncExport(w, ".xlsx")
}

// ExportAllCSV starts an asynchronous full-table csv export
// @Summary Export all students as csv
// @Description Stream the whole students table into a csv file on disk. Runs asynchronously; poll the returned task id and download the file when completed.
// @Tags students
// @Produce json
// @Success 200 {object} map[string]interface{} "Task accepted"
// @Router /students/export/all/csv [post]
func (h *Handler) ExportAllCSV(w http.ResponseWriter, r *http.Request) {
	h.asyncExport(w, ".csv")
}

// ExportAllPDF starts an asynchronous full-table pdf export
// @Summary Export all students as pdf
// @Description Stream the whole students table into a pdf report on disk. Runs asynchronously; poll the returned task id and download the file when completed.
// @Tags students
// @Produce json
// @Success 200 {object} map[string]interface{} "Task accepted"
// @Router /students/export/all/pdf [post]
func (h *Handler) ExportAllPDF(w http.ResponseWriter, r *http.Request) {
	h.asyncExport(w, ".pdf")
}

// DownloadExport serves a previously exported file
// @Summary Download an exported file
// @Description Serve a file produced by a completed export or generation task, addressed by its bare file name.
// @Tags students
// @Produce application/octet-stream
// @Param fileName path string true "File name from the task's filePath"
// @Success 200 {file} file "Exported file"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Router /students/export/download/{fileName} [get]
func (h *Handler) DownloadExport(w http.ResponseWriter, r *http.Request) {
	fileName := pathSuffix(r.URL.Path, "/api/students/export/download/")
	if fileName == "" {
		http.Error(w, "File name is required", http.StatusBadRequest)
		return
	}

	path, err := h.Files.Resolve(fileName)
	if err != nil {
		http.Error(w, "Invalid file name", http.StatusBadRequest)
		return
	}
	if _, err := os.Stat(path); err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", storage.ContentType(fileName))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	http.ServeFile(w, r, path)
}

// syncExport renders a filtered export in memory and serves it in the
// response. Filtered result sets are expected to be small; whole-table
// exports go through asyncExport instead.
func (h *Handler) syncExport(w http.ResponseWriter, r *http.Request, ext string, render func(*store.Store, pipeline.ExportFilter) ([]byte, error)) {
	q := r.URL.Query()
	filter, err := parseFilter(q.Get("studentId"), q.Get("studentClass"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := render(h.Store, filter)
	if err != nil {
		http.Error(w, "Export failed", http.StatusInternalServerError)
		return
	}

	fileName := "students." + ext
	w.Header().Set("Content-Type", storage.ContentType(fileName))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Write(data)
}

func parseFilter(studentID, class string) (pipeline.ExportFilter, error) {
	filter := pipeline.ExportFilter{Class: class}
	if studentID != "" {
		id, err := strconv.ParseInt(studentID, 10, 64)
		if err != nil {
			return pipeline.ExportFilter{}, fmt.Errorf("studentId must be an integer")
		}
		filter.StudentID = &id
	}
	return filter, nil
}

func (h *Handler) asyncExport(w http.ResponseWriter, ext string) {
	path := h.Files.NewFilePath("all_students", ext)

	taskID := h.Dispatcher.Dispatch(func(taskID string) {
		total, err := h.Store.Count()
		if err != nil {
			h.Registry.Record(progress.Failed(taskID, err.Error()))
			return
		}
		sink, err := newFileSink(path, ext)
		if err != nil {
			h.Registry.Record(progress.Failed(taskID, err.Error()))
			return
		}
		src := pipeline.NewStoreSource(h.Store, pipeline.ExportFilter{})
		pipeline.Run(context.Background(), h.Registry, taskID, src, sink, pipeline.RunOptions{
			Total: total,
		})
	})

	writeJSON(w, map[string]interface{}{
		"taskId":  taskID,
		"message": "Export started",
	})
}

func newFileSink(path, ext string) (pipeline.Sink, error) {
	switch ext {
	case ".xlsx":
		return pipeline.NewXLSXFileSink(path, model.ExportHeader)
	case ".csv":
		return pipeline.NewCSVFileSink(path, model.ExportHeader)
	case ".pdf":
		return pipeline.NewPDFFileSink(path), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", ext)
	}
}
