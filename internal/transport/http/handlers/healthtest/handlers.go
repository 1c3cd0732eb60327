package healthtesthandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"osgb/internal/domain/audit"
	"osgb/internal/domain/auth"
	"osgb/internal/domain/healthtest"
	"osgb/internal/transport/http/api"
	"osgb/internal/transport/http/middleware"
	"osgb/internal/transport/http/shared"
)

type Handler struct {
	Store *healthtest.Store
	Audit *audit.Service
}

func NewHandler(store *healthtest.Store, auditSvc *audit.Service) *Handler {
	return &Handler{Store: store, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/health-tests", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermHealthTestsRead)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermHealthTestsRead)).Get("/{testID}", h.handleGet)
		r.With(middleware.RequirePermission(auth.PermHealthTestsWrite)).Post("/", h.handleCreate)
		r.With(middleware.RequirePermission(auth.PermHealthTestsWrite)).Put("/{testID}", h.handleUpdate)
	})
	r.Route("/companies/{companyID}/tests", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermHealthTestsRead)).Get("/", h.handleListForCompany)
		r.With(middleware.RequirePermission(auth.PermHealthTestsWrite)).Post("/", h.handleAssign)
	})
	r.With(middleware.RequirePermission(auth.PermHealthTestsWrite)).
		Delete("/company-tests/{assignmentID}", h.handleUnassign)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	tests, err := h.Store.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "health_test_list_failed", "failed to list health tests", middleware.GetRequestID(r.Context()))
		return
	}
	if tests == nil {
		tests = []healthtest.HealthTest{}
	}
	api.Success(w, tests, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.ParseID(chi.URLParam(r, "testID"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid health test id", middleware.GetRequestID(r.Context()))
		return
	}
	test, err := h.Store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, healthtest.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "health test not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "health_test_get_failed", "failed to load health test", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, test, middleware.GetRequestID(r.Context()))
}

type testPayload struct {
	Name     string  `json:"name"`
	Code     string  `json:"code"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

func (p testPayload) validate(v *shared.Validator) {
	v.Required("name", p.Name, "name is required")
	v.Required("code", p.Code, "code is required")
	v.Required("category", p.Category, "category is required")
	if p.Price < 0 {
		v.Add("price", "price must not be negative")
	}
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload testPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	payload.validate(v)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Store.Create(r.Context(), healthtest.HealthTest{
		Name:     payload.Name,
		Code:     payload.Code,
		Category: payload.Category,
		Price:    payload.Price,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "health_test_create_failed", "failed to create health test", middleware.GetRequestID(r.Context()))
		return
	}
	h.record(r, user.UserID, "healthtest.create", id, payload)
	api.Created(w, map[string]int64{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	id, ok := shared.ParseID(chi.URLParam(r, "testID"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid health test id", middleware.GetRequestID(r.Context()))
		return
	}

	var payload testPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	payload.validate(v)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	err := h.Store.Update(r.Context(), healthtest.HealthTest{
		ID:       id,
		Name:     payload.Name,
		Code:     payload.Code,
		Category: payload.Category,
		Price:    payload.Price,
	})
	if err != nil {
		if errors.Is(err, healthtest.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "health test not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "health_test_update_failed", "failed to update health test", middleware.GetRequestID(r.Context()))
		return
	}
	h.record(r, user.UserID, "healthtest.update", id, payload)
	api.Success(w, map[string]int64{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListForCompany(w http.ResponseWriter, r *http.Request) {
	companyID, ok := shared.ParseID(chi.URLParam(r, "companyID"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid company id", middleware.GetRequestID(r.Context()))
		return
	}
	assignments, err := h.Store.ListForCompany(r.Context(), companyID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "company_tests_list_failed", "failed to list company tests", middleware.GetRequestID(r.Context()))
		return
	}
	if assignments == nil {
		assignments = []healthtest.CompanyAssignment{}
	}
	api.Success(w, assignments, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAssign(w http.ResponseWriter, r *http.Request) {
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

	var payload struct {
		HealthTestID int64 `json:"healthTestId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	v := shared.NewValidator()
	v.Positive("healthTestId", payload.HealthTestID, "health test id is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	if _, err := h.Store.Get(r.Context(), payload.HealthTestID); err != nil {
		if errors.Is(err, healthtest.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "health test not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "company_test_assign_failed", "failed to assign health test", middleware.GetRequestID(r.Context()))
		return
	}

	id, err := h.Store.AssignToCompany(r.Context(), companyID, payload.HealthTestID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "company_test_assign_failed", "failed to assign health test", middleware.GetRequestID(r.Context()))
		return
	}
	h.record(r, user.UserID, "healthtest.assign", id, map[string]int64{
		"companyId":    companyID,
		"healthTestId": payload.HealthTestID,
	})
	api.Created(w, map[string]int64{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUnassign(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	id, ok := shared.ParseID(chi.URLParam(r, "assignmentID"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid assignment id", middleware.GetRequestID(r.Context()))
		return
	}
	if err := h.Store.UnassignFromCompany(r.Context(), id); err != nil {
		if errors.Is(err, healthtest.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "assignment not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "company_test_unassign_failed", "failed to remove assignment", middleware.GetRequestID(r.Context()))
		return
	}
	h.record(r, user.UserID, "healthtest.unassign", id, nil)
	api.Success(w, map[string]int64{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) record(r *http.Request, actorID int64, action string, entityID int64, after any) {
	if h.Audit == nil {
		return
	}
	if err := h.Audit.Record(r.Context(), actorID, action, "health_test", strconv.FormatInt(entityID, 10), middleware.GetRequestID(r.Context()), shared.ClientIP(r), nil, after); err != nil {
		slog.Warn("audit "+action+" failed", "err", err)
	}
}
