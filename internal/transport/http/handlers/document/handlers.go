package documenthandler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"osgb/internal/domain/audit"
	"osgb/internal/domain/auth"
	"osgb/internal/domain/document"
	"osgb/internal/transport/http/api"
	"osgb/internal/transport/http/middleware"
	"osgb/internal/transport/http/shared"
)

const (
	maxUploadBytes    = 10 * 1024 * 1024
	maxMultipartBytes = 12 * 1024 * 1024
)

type Handler struct {
	Service *document.Service
	Audit   *audit.Service
}

func NewHandler(service *document.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/documents", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermDocumentsRead)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermDocumentsRead)).Get("/stats", h.handleStats)
		r.With(middleware.RequirePermission(auth.PermDocumentsRead)).Get("/expiring", h.handleExpiring)
		r.With(middleware.RequirePermission(auth.PermDocumentsRead)).Get("/{documentID}", h.handleGet)
		r.With(middleware.RequirePermission(auth.PermDocumentsRead)).Get("/{documentID}/download", h.handleDownload)
		r.With(middleware.RequirePermission(auth.PermDocumentsWrite)).Post("/", h.handleUpload)
		r.With(middleware.RequirePermission(auth.PermDocumentsWrite)).Delete("/{documentID}", h.handleArchive)
	})
}

func parseCriteria(r *http.Request) (document.Criteria, *shared.Validator) {
	v := shared.NewValidator()
	q := r.URL.Query()

	criteria := document.Criteria{
		Status:     document.Status(strings.ToLower(strings.TrimSpace(q.Get("status")))),
		Category:   document.Category(strings.ToLower(strings.TrimSpace(q.Get("category")))),
		SearchText: q.Get("search"),
	}
	if raw := q.Get("companyId"); raw != "" {
		id, ok := shared.ParseID(raw)
		if !ok {
			v.Add("companyId", "must be a positive integer")
		}
		criteria.CompanyID = id
	}
	if criteria.Status != "" && !criteria.Status.Valid() {
		v.Add("status", "unknown status")
	}
	if criteria.Category != "" && !criteria.Category.Valid() {
		v.Add("category", "unknown category")
	}
	if raw := q.Get("from"); raw != "" {
		if parsed, ok := v.Date("from", raw); ok {
			criteria.DateStart = parsed
		}
	}
	if raw := q.Get("to"); raw != "" {
		if parsed, ok := v.Date("to", raw); ok {
			criteria.DateEnd = parsed
		}
	}
	v.DateOrder("from", criteria.DateStart, "to", criteria.DateEnd)
	return criteria, v
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	criteria, v := parseCriteria(r)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	records, err := h.Service.Filtered(r.Context(), criteria)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "document_list_failed", "failed to list documents", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	criteria, v := parseCriteria(r)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	summary, err := h.Service.Stats(r.Context(), criteria, time.Now().UTC())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "document_stats_failed", "failed to compute statistics", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleExpiring(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.Expiring(r.Context(), time.Now().UTC())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "document_expiring_failed", "failed to list expiring documents", middleware.GetRequestID(r.Context()))
		return
	}
	if records == nil {
		records = []document.ExpiringDocument{}
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.ParseID(chi.URLParam(r, "documentID"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid document id", middleware.GetRequestID(r.Context()))
		return
	}
	record, err := h.Service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "document not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "document_get_failed", "failed to load document", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, record, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	if err := r.ParseMultipartForm(maxMultipartBytes); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid multipart payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	title := strings.TrimSpace(r.FormValue("title"))
	category := document.Category(strings.ToLower(strings.TrimSpace(r.FormValue("category"))))
	v.Required("title", title, "title is required")
	if !category.Valid() {
		v.Add("category", "unknown document category")
	}

	payload := document.Upload{Title: title, Category: category}
	if raw := strings.TrimSpace(r.FormValue("companyId")); raw != "" {
		if id, ok := shared.ParseID(raw); ok {
			payload.CompanyID = &id
		} else {
			v.Add("companyId", "must be a positive integer")
		}
	}
	if raw := strings.TrimSpace(r.FormValue("workerId")); raw != "" {
		if id, ok := shared.ParseID(raw); ok {
			payload.WorkerID = &id
		} else {
			v.Add("workerId", "must be a positive integer")
		}
	}
	if raw := strings.TrimSpace(r.FormValue("screeningId")); raw != "" {
		if id, ok := shared.ParseID(raw); ok {
			payload.ScreeningID = &id
		} else {
			v.Add("screeningId", "must be a positive integer")
		}
	}
	if raw := strings.TrimSpace(r.FormValue("expiryDate")); raw != "" {
		if parsed, ok := v.Date("expiryDate", raw); ok {
			payload.ExpiryDate = &parsed
		}
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "file is required", middleware.GetRequestID(r.Context()))
		return
	}
	defer file.Close()
	if header.Size > maxUploadBytes {
		api.Fail(w, http.StatusBadRequest, "file_too_large", "file exceeds maximum size", middleware.GetRequestID(r.Context()))
		return
	}
	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "failed to read file", middleware.GetRequestID(r.Context()))
		return
	}
	if int64(len(data)) > maxUploadBytes {
		api.Fail(w, http.StatusBadRequest, "file_too_large", "file exceeds maximum size", middleware.GetRequestID(r.Context()))
		return
	}
	if len(data) == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "empty file is not allowed", middleware.GetRequestID(r.Context()))
		return
	}

	payload.FileName = sanitizeFileName(header.Filename)
	payload.FileType = strings.TrimSpace(header.Header.Get("Content-Type"))
	if payload.FileType == "" {
		payload.FileType = http.DetectContentType(data)
	}
	payload.Data = data

	id, err := h.Service.Upload(r.Context(), payload)
	if err != nil {
		if errors.Is(err, document.ErrInvalidCategory) {
			api.Fail(w, http.StatusBadRequest, "invalid_category", "unknown document category", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "document_upload_failed", "failed to store document", middleware.GetRequestID(r.Context()))
		return
	}
	h.record(r, user.UserID, "document.upload", id, map[string]any{
		"title":    payload.Title,
		"fileName": payload.FileName,
		"category": payload.Category,
		"size":     len(data),
	})
	api.Created(w, map[string]int64{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDownload(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.ParseID(chi.URLParam(r, "documentID"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid document id", middleware.GetRequestID(r.Context()))
		return
	}

	record, data, err := h.Service.Download(r.Context(), id)
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "document not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "document_download_failed", "failed to read document", middleware.GetRequestID(r.Context()))
		return
	}

	contentType := record.FileType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", record.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Warn("document download write failed", "documentId", id, "err", err)
	}
}

func (h *Handler) handleArchive(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	id, ok := shared.ParseID(chi.URLParam(r, "documentID"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid document id", middleware.GetRequestID(r.Context()))
		return
	}
	if err := h.Service.Archive(r.Context(), id); err != nil {
		if errors.Is(err, document.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "document not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "document_archive_failed", "failed to archive document", middleware.GetRequestID(r.Context()))
		return
	}
	h.record(r, user.UserID, "document.archive", id, nil)
	api.Success(w, map[string]string{"status": "archived"}, middleware.GetRequestID(r.Context()))
}

func sanitizeFileName(name string) string {
	cleaned := strings.TrimSpace(filepath.Base(name))
	cleaned = strings.ReplaceAll(cleaned, "\x00", "")
	if cleaned == "" {
		return "document.bin"
	}
	return cleaned
}

func (h *Handler) record(r *http.Request, actorID int64, action string, entityID int64, after any) {
	if h.Audit == nil {
		return
	}
	if err := h.Audit.Record(r.Context(), actorID, action, "document", strconv.FormatInt(entityID, 10), middleware.GetRequestID(r.Context()), shared.ClientIP(r), nil, after); err != nil {
		slog.Warn("audit "+action+" failed", "err", err)
	}
}
