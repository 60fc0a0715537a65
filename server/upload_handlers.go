package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/hirestack/go-interview-server/internal/errors"
	"github.com/hirestack/go-interview-server/uploads"
)

const maxUploadMemory = 32 << 20 // 32 MB

// UploadCreateResponse is the 2xx body of a successful submission
type UploadCreateResponse struct {
	UploadID string         `json:"uploadId"`
	Status   uploads.Status `json:"status"`
	Items    []uploads.Item `json:"items"`
}

// UploadStatusResponse is the polled batch state
type UploadStatusResponse struct {
	UploadID  string         `json:"uploadId"`
	Status    uploads.Status `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
	Items     []uploads.Item `json:"items"`
}

// UploadCreateHandler accepts a multipart batch of candidate files and
// schedules it for asynchronous processing
func (s *Server) UploadCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			writeError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}

		jobID := r.FormValue("jobId")
		if jobID != "" {
			if _, err := strconv.Atoi(jobID); err != nil {
				writeError(w, http.StatusBadRequest, "jobId must be an integer")
				return
			}
		}

		files := r.MultipartForm.File["files"]
		if len(files) == 0 {
			writeError(w, http.StatusBadRequest, "no files provided for upload")
			return
		}

		batch := &uploads.Batch{
			UploadID:  uuid.New().String(),
			Status:    uploads.StatusPending,
			CreatedAt: time.Now().UTC(),
			Items:     make([]uploads.Item, 0, len(files)),
		}
		for _, file := range files {
			batch.Items = append(batch.Items, uploads.Item{
				ID:       uuid.New().String(),
				Filename: file.Filename,
				Status:   uploads.StatusPending,
			})
		}

		if err := s.deps.UploadRepo.Create(batch); err != nil {
			s.logger.Error().Err(err).Str("upload_id", batch.UploadID).Msg("failed to store batch")
			writeError(w, http.StatusInternalServerError, "failed to store upload")
			return
		}

		if s.deps.Pipeline != nil {
			s.deps.Pipeline.Enqueue(batch.UploadID, jobID)
		}

		writeJSON(w, http.StatusAccepted, UploadCreateResponse{
			UploadID: batch.UploadID,
			Status:   batch.Status,
			Items:    batch.Items,
		})
	}
}

// UploadStatusHandler reports the current state of a batch
func (s *Server) UploadStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uploadID := r.PathValue("uploadId")

		batch, err := s.deps.UploadRepo.Get(uploadID)
		if err != nil {
			if errors.Is(err, errors.ErrUploadNotFound) {
				writeError(w, http.StatusNotFound, "upload not found")
				return
			}
			s.logger.Error().Err(err).Str("upload_id", uploadID).Msg("failed to load batch")
			writeError(w, http.StatusInternalServerError, "failed to load upload")
			return
		}

		writeJSON(w, http.StatusOK, UploadStatusResponse{
			UploadID:  batch.UploadID,
			Status:    batch.Status,
			CreatedAt: batch.CreatedAt,
			Items:     batch.Items,
		})
	}
}
