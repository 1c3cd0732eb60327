package companyhandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"osgb/internal/domain/audit"
	"osgb/internal/domain/auth"
	"osgb/internal/domain/company"
	"osgb/internal/transport/http/api"
	"osgb/internal/transport/http/middleware"
	"osgb/internal/transport/http/shared"
)

type Handler struct {
	Service *company.Service
	Audit   *audit.Service
}

func NewHandler(service *company.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/companies", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermCompaniesRead)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermCompaniesRead)).Get("/{companyID}", h.handleGet)
		r.With(middleware.RequirePermission(auth.PermCompaniesWrite)).Post("/", h.handleCreate)
		r.With(middleware.RequirePermission(auth.PermCompaniesWrite)).Put("/{companyID}", h.handleUpdate)
		r.With(middleware.RequirePermission(auth.PermCompaniesWrite)).Delete("/{companyID}", h.handleDeactivate)
		r.With(middleware.RequirePermission(auth.PermCompaniesWrite)).Post("/{companyID}/reactivate", h.handleReactivate)
		r.With(middleware.RequirePermission(auth.PermWorkersRead)).Get("/{companyID}/workers", h.handleListWorkers)
		r.With(middleware.RequirePermission(auth.PermWorkersWrite)).Post("/{companyID}/workers", h.handleCreateWorker)
	})
	r.Route("/workers", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermWorkersWrite)).Put("/{workerID}", h.handleUpdateWorker)
		r.With(middleware.RequirePermission(auth.PermWorkersWrite)).Delete("/{workerID}", h.handleDeactivateWorker)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, 50, 200)
	companies, err := h.Service.List(r.Context(), r.URL.Query().Get("search"), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "company_list_failed", "failed to list companies", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, companies, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.ParseID(chi.URLParam(r, "companyID"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid company id", middleware.GetRequestID(r.Context()))
		return
	}
	record, err := h.Service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "company not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "company_get_failed", "failed to load company", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, record, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload company.Company
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "company name is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Service.Create(r.Context(), payload)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "company_create_failed", "failed to create company", middleware.GetRequestID(r.Context()))
		return
	}
	h.record(r, user.UserID, "company.create", "company", id, nil, payload)
	api.Created(w, map[string]int64{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	id, ok := shared.ParseID(chi.URLParam(r, "companyID"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid company id", middleware.GetRequestID(r.Context()))
		return
	}

	before, err := h.Service.Get(r.Context(), id)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "company not found", middleware.GetRequestID(r.Context()))
		return
	}

	var payload company.Company
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	payload.ID = id

	if err := h.Service.Update(r.Context(), payload); err != nil {
		if errors.Is(err, company.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "company not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "company_update_failed", "failed to update company", middleware.GetRequestID(r.Context()))
		return
	}
	h.record(r, user.UserID, "company.update", "company", id, before, payload)
	api.Success(w, map[string]string{"status": "updated"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeactivate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	id, ok := shared.ParseID(chi.URLParam(r, "companyID"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid company id", middleware.GetRequestID(r.Context()))
		return
	}
	if err := h.Service.Deactivate(r.Context(), id); err != nil {
		if errors.Is(err, company.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "company not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "company_deactivate_failed", "failed to deactivate company", middleware.GetRequestID(r.Context()))
		return
	}
	h.record(r, user.UserID, "company.deactivate", "company", id, nil, nil)
	api.Success(w, map[string]string{"status": "deactivated"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleReactivate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	id, ok := shared.ParseID(chi.URLParam(r, "companyID"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid company id", middleware.GetRequestID(r.Context()))
		return
	}
	if err := h.Service.Reactivate(r.Context(), id); err != nil {
		if errors.Is(err, company.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "company not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "company_reactivate_failed", "failed to reactivate company", middleware.GetRequestID(r.Context()))
		return
	}
	h.record(r, user.UserID, "company.reactivate", "company", id, nil, nil)
	api.Success(w, map[string]string{"status": "active"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListWorkers(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.ParseID(chi.URLParam(r, "companyID"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid company id", middleware.GetRequestID(r.Context()))
		return
	}
	page := shared.ParsePagination(r, 100, 500)
	workers, err := h.Service.ListWorkers(r.Context(), id, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "worker_list_failed", "failed to list workers", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, workers, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateWorker(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	companyID, ok := shared.ParseID(chi.URLParam(r, "companyID"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid company id", middleware.GetRequestID(r.Context()))
		return
	}

	var payload company.Worker
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	payload.CompanyID = companyID

	v := shared.NewValidator()
	v.Required("firstName", payload.FirstName, "first name is required")
	v.Required("lastName", payload.LastName, "last name is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Service.CreateWorker(r.Context(), payload)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "company not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "worker_create_failed", "failed to create worker", middleware.GetRequestID(r.Context()))
		return
	}
	h.record(r, user.UserID, "worker.create", "worker", id, nil, payload)
	api.Created(w, map[string]int64{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateWorker(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	id, ok := shared.ParseID(chi.URLParam(r, "workerID"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid worker id", middleware.GetRequestID(r.Context()))
		return
	}

	var payload company.Worker
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	payload.ID = id

	if err := h.Service.UpdateWorker(r.Context(), payload); err != nil {
		if errors.Is(err, company.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "worker not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "worker_update_failed", "failed to update worker", middleware.GetRequestID(r.Context()))
		return
	}
	h.record(r, user.UserID, "worker.update", "worker", id, nil, payload)
	api.Success(w, map[string]string{"status": "updated"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeactivateWorker(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	id, ok := shared.ParseID(chi.URLParam(r, "workerID"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid worker id", middleware.GetRequestID(r.Context()))
		return
	}
	if err := h.Service.DeactivateWorker(r.Context(), id); err != nil {
		if errors.Is(err, company.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "worker not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "worker_deactivate_failed", "failed to deactivate worker", middleware.GetRequestID(r.Context()))
		return
	}
	h.record(r, user.UserID, "worker.deactivate", "worker", id, nil, nil)
	api.Success(w, map[string]string{"status": "deactivated"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) record(r *http.Request, actorID int64, action, entityType string, entityID int64, before, after any) {
	if h.Audit == nil {
		return
	}
	if err := h.Audit.Record(r.Context(), actorID, action, entityType, formatID(entityID), middleware.GetRequestID(r.Context()), shared.ClientIP(r), before, after); err != nil {
		slog.Warn("audit "+action+" failed", "err", err)
	}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
