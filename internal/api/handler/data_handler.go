package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"

	"student-data-processor/internal/model"
	"student-data-processor/internal/pipeline"
	"student-data-processor/internal/progress"
)

// GenerateData starts asynchronous generation of a synthetic dataset
// @Summary Generate synthetic student data
// @Description Generate the requested number of random student records into an xlsx file. Runs asynchronously; poll the returned task id for progress.
// @Tags data
// @Produce json
// @Param numberOfRecords query int true "Number of records to generate (capped at the xlsx sheet limit)"
// @Success 200 {object} map[string]interface{} "Task accepted"
// @Failure 400 {object} map[string]interface{} "Invalid record count"
// @Router /data/generate [post]
func (h *Handler) GenerateData(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.ParseInt(r.URL.Query().Get("numberOfRecords"), 10, 64)
	if err != nil || n <= 0 {
		http.Error(w, "numberOfRecords must be a positive integer", http.StatusBadRequest)
		return
	}

	total := pipeline.ClampRows(n)
	path := h.Files.NewFilePath("students", ".xlsx")

	taskID := h.Dispatcher.Dispatch(func(taskID string) {
		sink, err := pipeline.NewXLSXFileSink(path, model.GenerateHeader)
		if err != nil {
			h.Registry.Record(progress.Failed(taskID, err.Error()))
			return
		}
		pipeline.Run(context.Background(), h.Registry, taskID, pipeline.NewGenerator(n), sink, pipeline.RunOptions{
			Total: total,
		})
	})

	writeJSON(w, map[string]interface{}{
		"taskId":  taskID,
		"message": "Data generation started",
	})
}

// ProcessExcel converts an uploaded xlsx file to csv
// @Summary Convert an xlsx upload to csv
// @Description Stream the uploaded spreadsheet into a csv file, adding 10 to every score. Runs asynchronously; poll the returned task id for progress.
// @Tags data
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "xlsx file to convert"
// @Success 200 {object} map[string]interface{} "Task accepted"
// @Failure 400 {object} map[string]interface{} "Missing or empty file"
// @Router /data/process-excel [post]
func (h *Handler) ProcessExcel(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size == 0 {
		http.Error(w, "File is empty", http.StatusBadRequest)
		return
	}

	staged, err := h.Files.StageUpload(file, "upload-*.xlsx")
	if err != nil {
		http.Error(w, "Failed to store upload", http.StatusInternalServerError)
		return
	}

	outPath := h.Files.NewFilePath("students", ".csv")

	taskID := h.Dispatcher.Dispatch(func(taskID string) {
		src, err := pipeline.OpenXLSXSource(staged)
		if err != nil {
			os.Remove(staged)
			h.Registry.Record(progress.Failed(taskID, err.Error()))
			return
		}
		sink, err := pipeline.NewCSVFileSink(outPath, model.GenerateHeader)
		if err != nil {
			src.Close()
			os.Remove(staged)
			h.Registry.Record(progress.Failed(taskID, err.Error()))
			return
		}
		// The sheet row count is unknown without a full pass, so progress
		// runs against the sheet capacity and the completion snapshot
		// reports the true count.
		pipeline.Run(context.Background(), h.Registry, taskID, src, sink, pipeline.RunOptions{
			ScoreOffset:   10,
			TotalEstimate: model.MaxSheetRows,
			CleanupFiles:  []string{staged},
		})
	})

	writeJSON(w, map[string]interface{}{
		"taskId":  taskID,
		"message": "Excel processing started",
	})
}

// UploadCSV ingests an uploaded csv file into the database
// @Summary Ingest a csv upload into the database
// @Description Stream the uploaded csv into the students table in batches of 1000, adding 5 to every score. Runs asynchronously; poll the returned task id for progress.
// @Tags data
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "csv file to ingest"
// @Success 200 {object} map[string]interface{} "Task accepted"
// @Failure 400 {object} map[string]interface{} "Missing or empty file"
// @Router /data/upload-csv [post]
func (h *Handler) UploadCSV(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size == 0 {
		http.Error(w, "File is empty", http.StatusBadRequest)
		return
	}

	staged, err := h.Files.StageUpload(file, "upload-*.csv")
	if err != nil {
		http.Error(w, "Failed to store upload", http.StatusInternalServerError)
		return
	}

	taskID := h.Dispatcher.Dispatch(func(taskID string) {
		total, err := pipeline.CountCSVRows(staged)
		if err != nil {
			os.Remove(staged)
			h.Registry.Record(progress.Failed(taskID, err.Error()))
			return
		}
		src, err := pipeline.OpenCSVSource(staged)
		if err != nil {
			os.Remove(staged)
			h.Registry.Record(progress.Failed(taskID, err.Error()))
			return
		}
		pipeline.Run(context.Background(), h.Registry, taskID, src, pipeline.NewDBSink(h.Store), pipeline.RunOptions{
			ScoreOffset:  5,
			Total:        total,
			CleanupFiles: []string{staged},
		})
	})

	writeJSON(w, map[string]interface{}{
		"taskId":  taskID,
		"message": "CSV upload started",
	})
}

// GetProgress reports the current progress of a task
// @Summary Poll task progress
// @Description Look up the progress snapshot for a task. Unknown or evicted ids report status NOT_FOUND with a 200 response.
// @Tags data
// @Produce json
// @Param taskId path string true "Task ID"
// @Success 200 {object} progress.Snapshot "Progress snapshot"
// @Router /data/progress/{taskId} [get]
// @Router /students/export/progress/{taskId} [get]
func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	// Export tasks can also be polled under the report surface.
	taskID := pathSuffix(r.URL.Path, "/api/data/progress/")
	if taskID == "" {
		taskID = pathSuffix(r.URL.Path, "/api/students/export/progress/")
	}
	if taskID == "" {
		http.Error(w, "Task ID is required", http.StatusBadRequest)
		return
	}
	writeJSON(w, h.Registry.Lookup(taskID))
}

// EvictProgress removes a task's progress entry
// @Summary Evict a progress entry
// @Description Drop the progress snapshot for a task. Subsequent polls report NOT_FOUND. Evicting an unknown id is a no-op.
// @Tags data
// @Param taskId path string true "Task ID"
// @Success 204 "Entry evicted"
// @Router /data/progress/{taskId} [delete]
func (h *Handler) EvictProgress(w http.ResponseWriter, r *http.Request) {
	taskID := pathSuffix(r.URL.Path, "/api/data/progress/")
	if taskID == "" {
		http.Error(w, "Task ID is required", http.StatusBadRequest)
		return
	}
	h.Registry.Evict(taskID)
	w.WriteHeader(http.StatusNoContent)
}

func pathSuffix(path, prefix string) string {
	if !strings.HasPrefix(path, prefix) {
		return ""
	}
	return path[len(prefix):]
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
