package screeninghandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"osgb/internal/domain/audit"
	"osgb/internal/domain/auth"
	"osgb/internal/domain/notifications"
	"osgb/internal/domain/screening"
	"osgb/internal/transport/http/api"
	"osgb/internal/transport/http/middleware"
	"osgb/internal/transport/http/shared"
)

type Handler struct {
	Service *screening.Service
	Notify  *notifications.Service
	Audit   *audit.Service
}

func NewHandler(service *screening.Service, notify *notifications.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Notify: notify, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/screenings", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermScreeningsRead)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermScreeningsRead)).Get("/stats", h.handleStats)
		r.With(middleware.RequirePermission(auth.PermScreeningsRead)).Get("/trend", h.handleTrend)
		r.With(middleware.RequirePermission(auth.PermScreeningsRead)).Get("/calendar", h.handleCalendar)
		r.With(middleware.RequirePermission(auth.PermScreeningsRead)).Post("/check-slot", h.handleCheckSlot)
		r.With(middleware.RequirePermission(auth.PermScreeningsRead)).Get("/{screeningID}", h.handleGet)
		r.With(middleware.RequirePermission(auth.PermScreeningsRead)).Get("/{screeningID}/conflicts", h.handleConflicts)
		r.With(middleware.RequirePermission(auth.PermScreeningsWrite)).Post("/", h.handleBook)
		r.With(middleware.RequirePermission(auth.PermScreeningsWrite)).Put("/{screeningID}", h.handleUpdate)
		r.With(middleware.RequirePermission(auth.PermScreeningsTransition)).Post("/{screeningID}/transition", h.handleTransition)
		r.With(middleware.RequirePermission(auth.PermScreeningsRead)).Get("/{screeningID}/staff", h.handleListStaff)
		r.With(middleware.RequirePermission(auth.PermScreeningsWrite)).Post("/{screeningID}/staff", h.handleAssignStaff)
		r.With(middleware.RequirePermission(auth.PermScreeningsWrite)).Delete("/staff/{assignmentID}", h.handleUnassignStaff)
		r.With(middleware.RequirePermission(auth.PermScreeningsRead)).Get("/{screeningID}/tests", h.handleListTests)
		r.With(middleware.RequirePermission(auth.PermScreeningsWrite)).Post("/{screeningID}/tests", h.handleAssignTest)
		r.With(middleware.RequirePermission(auth.PermScreeningsWrite)).Delete("/tests/{assignmentID}", h.handleUnassignTest)
	})
}

func parseCriteria(r *http.Request) (screening.Criteria, *shared.Validator) {
	v := shared.NewValidator()
	q := r.URL.Query()

	criteria := screening.Criteria{
		Status:     screening.Status(strings.ToLower(strings.TrimSpace(q.Get("status")))),
		Type:       screening.Type(strings.ToLower(strings.TrimSpace(q.Get("type")))),
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
	if criteria.Type != "" && !criteria.Type.Valid() {
		v.Add("type", "unknown type")
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
		api.Fail(w, http.StatusInternalServerError, "screening_list_failed", "failed to list screenings", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	criteria, v := parseCriteria(r)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	summary, err := h.Service.Stats(r.Context(), criteria)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "screening_stats_failed", "failed to compute statistics", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleTrend(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	var current, previous screening.Window
	switch strings.ToLower(r.URL.Query().Get("period")) {
	case "", "month":
		current, previous = screening.ThisMonth(now), screening.LastMonth(now)
	case "week":
		current, previous = screening.ThisWeek(now), screening.LastWeek(now)
	default:
		api.Fail(w, http.StatusBadRequest, "invalid_period", "period must be month or week", middleware.GetRequestID(r.Context()))
		return
	}

	trend, err := h.Service.Trend(r.Context(), current, previous)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "screening_trend_failed", "failed to compute trend", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, trend, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCalendar(w http.ResponseWriter, r *http.Request) {
	v := shared.NewValidator()
	start, okStart := v.Date("start", r.URL.Query().Get("start"))
	end, okEnd := v.Date("end", r.URL.Query().Get("end"))
	if okStart && okEnd {
		v.DateOrder("start", start, "end", end)
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	records, err := h.Service.Calendar(r.Context(), start, end)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "calendar_failed", "failed to load calendar", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.ParseID(chi.URLParam(r, "screeningID"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid screening id", middleware.GetRequestID(r.Context()))
		return
	}
	record, err := h.Service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, screening.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "screening not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "screening_get_failed", "failed to load screening", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, record, middleware.GetRequestID(r.Context()))
}

type bookingPayload struct {
	CompanyID       int64  `json:"companyId"`
	ParticipantName string `json:"participantName"`
	Date            string `json:"date"`
	TimeStart       string `json:"timeStart"`
	TimeEnd         string `json:"timeEnd"`
	EmployeeCount   int    `json:"employeeCount"`
	Type            string `json:"type"`
	Notes           string `json:"notes"`
}

func (p bookingPayload) validate(v *shared.Validator) (screening.Screening, bool) {
	v.Positive("companyId", p.CompanyID, "company id is required")
	v.Positive("employeeCount", int64(p.EmployeeCount), "employee count must be positive")
	v.Required("timeStart", p.TimeStart, "start time is required")
	v.Required("timeEnd", p.TimeEnd, "end time is required")
	v.Enum("type", p.Type, allTypeStrings(), "unknown screening type")
	v.Required("type", p.Type, "screening type is required")
	date, okDate := v.Date("date", p.Date)
	if v.HasIssues() || !okDate {
		return screening.Screening{}, false
	}
	return screening.Screening{
		CompanyID:       p.CompanyID,
		ParticipantName: strings.TrimSpace(p.ParticipantName),
		Date:            date,
		TimeStart:       p.TimeStart,
		TimeEnd:         p.TimeEnd,
		EmployeeCount:   p.EmployeeCount,
		Type:            screening.Type(strings.ToLower(strings.TrimSpace(p.Type))),
		Notes:           p.Notes,
	}, true
}

func allTypeStrings() []string {
	out := make([]string, 0, len(screening.AllTypes))
	for _, t := range screening.AllTypes {
		out = append(out, string(t))
	}
	return out
}

func (h *Handler) handleBook(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload bookingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	record, ok := payload.validate(v)
	if v.Reject(w, middleware.GetRequestID(r.Context())) || !ok {
		return
	}

	id, err := h.Service.Book(r.Context(), record)
	if err != nil {
		if errors.Is(err, screening.ErrInvalidTimeRange) {
			api.Fail(w, http.StatusBadRequest, "invalid_time_range", "start time must be before end time", middleware.GetRequestID(r.Context()))
			return
		}
		if errors.Is(err, screening.ErrInvalidEmployeeCount) {
			api.Fail(w, http.StatusBadRequest, "invalid_employee_count", "employee count must be positive", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "screening_create_failed", "failed to book screening", middleware.GetRequestID(r.Context()))
		return
	}
	h.record(r, user.UserID, "screening.book", id, nil, payload)

	// Overlaps do not block the booking; they are reported back so the
	// scheduler can decide.
	conflicts, err := h.Service.Conflicts(r.Context(), id)
	if err != nil {
		slog.Warn("conflict check after booking failed", "screeningId", id, "err", err)
		conflicts = []screening.Screening{}
	}

	api.Created(w, map[string]any{"id": id, "conflicts": conflicts}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	id, ok := shared.ParseID(chi.URLParam(r, "screeningID"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid screening id", middleware.GetRequestID(r.Context()))
		return
	}

	before, err := h.Service.Get(r.Context(), id)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "screening not found", middleware.GetRequestID(r.Context()))
		return
	}

	var payload bookingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	record, ok := payload.validate(v)
	if v.Reject(w, middleware.GetRequestID(r.Context())) || !ok {
		return
	}
	record.ID = id

	if err := h.Service.Update(r.Context(), record); err != nil {
		if errors.Is(err, screening.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "screening not found", middleware.GetRequestID(r.Context()))
			return
		}
		if errors.Is(err, screening.ErrInvalidTimeRange) {
			api.Fail(w, http.StatusBadRequest, "invalid_time_range", "start time must be before end time", middleware.GetRequestID(r.Context()))
			return
		}
		if errors.Is(err, screening.ErrInvalidEmployeeCount) {
			api.Fail(w, http.StatusBadRequest, "invalid_employee_count", "employee count must be positive", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "screening_update_failed", "failed to update screening", middleware.GetRequestID(r.Context()))
		return
	}
	h.record(r, user.UserID, "screening.update", id, before, payload)
	api.Success(w, map[string]string{"status": "updated"}, middleware.GetRequestID(r.Context()))
}

type transitionPayload struct {
	Status string `json:"status"`
}

func (h *Handler) handleTransition(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	id, ok := shared.ParseID(chi.URLParam(r, "screeningID"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid screening id", middleware.GetRequestID(r.Context()))
		return
	}

	var payload transitionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	to := screening.Status(strings.ToLower(strings.TrimSpace(payload.Status)))
	if !to.Valid() {
		api.Fail(w, http.StatusBadRequest, "invalid_status", "unknown screening status", middleware.GetRequestID(r.Context()))
		return
	}

	record, err := h.Service.Transition(r.Context(), id, to)
	if err != nil {
		if errors.Is(err, screening.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "screening not found", middleware.GetRequestID(r.Context()))
			return
		}
		if errors.Is(err, screening.ErrInvalidTransition) {
			api.Fail(w, http.StatusConflict, "invalid_transition", err.Error(), middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "screening_transition_failed", "failed to update status", middleware.GetRequestID(r.Context()))
		return
	}
	h.record(r, user.UserID, "screening.transition", id, nil, map[string]string{"status": string(to)})

	if to == screening.StatusCompleted {
		h.notifyAssignedStaff(r, record, notifications.TypeScreeningCompleted,
			fmt.Sprintf("Screening completed: %s", record.CompanyName),
			fmt.Sprintf("The screening for %s on %s was marked completed.", record.CompanyName, record.Date.Format("2006-01-02")))
	}

	api.Success(w, record, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleConflicts(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.ParseID(chi.URLParam(r, "screeningID"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid screening id", middleware.GetRequestID(r.Context()))
		return
	}
	conflicts, err := h.Service.Conflicts(r.Context(), id)
	if err != nil {
		if errors.Is(err, screening.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "screening not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "conflict_check_failed", "failed to check conflicts", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, conflicts, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCheckSlot(w http.ResponseWriter, r *http.Request) {
	var payload bookingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("timeStart", payload.TimeStart, "start time is required")
	v.Required("timeEnd", payload.TimeEnd, "end time is required")
	date, okDate := v.Date("date", payload.Date)
	if v.Reject(w, middleware.GetRequestID(r.Context())) || !okDate {
		return
	}

	conflicts, err := h.Service.CheckSlot(r.Context(), screening.Screening{
		Date:      date,
		TimeStart: payload.TimeStart,
		TimeEnd:   payload.TimeEnd,
	})
	if err != nil {
		if errors.Is(err, screening.ErrInvalidTimeRange) {
			api.Fail(w, http.StatusBadRequest, "invalid_time_range", "start time must be before end time", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "conflict_check_failed", "failed to check slot", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"available": len(conflicts) == 0, "conflicts": conflicts}, middleware.GetRequestID(r.Context()))
}

type staffAssignPayload struct {
	UserID int64 `json:"userId"`
}

func (h *Handler) handleAssignStaff(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	screeningID, ok := shared.ParseID(chi.URLParam(r, "screeningID"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid screening id", middleware.GetRequestID(r.Context()))
		return
	}

	var payload staffAssignPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.UserID <= 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "user id is required", middleware.GetRequestID(r.Context()))
		return
	}

	id, err := h.Service.AssignStaff(r.Context(), screeningID, payload.UserID)
	if err != nil {
		if errors.Is(err, screening.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "screening not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "staff_assign_failed", "failed to assign staff", middleware.GetRequestID(r.Context()))
		return
	}
	h.record(r, user.UserID, "screening.staff.assign", screeningID, nil, payload)
	api.Created(w, map[string]int64{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUnassignStaff(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	assignmentID, ok := shared.ParseID(chi.URLParam(r, "assignmentID"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid assignment id", middleware.GetRequestID(r.Context()))
		return
	}
	if err := h.Service.UnassignStaff(r.Context(), assignmentID); err != nil {
		if errors.Is(err, screening.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "assignment not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "staff_unassign_failed", "failed to remove assignment", middleware.GetRequestID(r.Context()))
		return
	}
	h.record(r, user.UserID, "screening.staff.unassign", assignmentID, nil, nil)
	api.Success(w, map[string]string{"status": "removed"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListStaff(w http.ResponseWriter, r *http.Request) {
	screeningID, ok := shared.ParseID(chi.URLParam(r, "screeningID"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid screening id", middleware.GetRequestID(r.Context()))
		return
	}
	assignments, err := h.Service.ListStaff(r.Context(), screeningID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "staff_list_failed", "failed to list staff", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, assignments, middleware.GetRequestID(r.Context()))
}

type testAssignPayload struct {
	HealthTestID int64 `json:"healthTestId"`
}

func (h *Handler) handleAssignTest(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	screeningID, ok := shared.ParseID(chi.URLParam(r, "screeningID"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid screening id", middleware.GetRequestID(r.Context()))
		return
	}

	var payload testAssignPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.HealthTestID <= 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "health test id is required", middleware.GetRequestID(r.Context()))
		return
	}

	id, err := h.Service.AssignTest(r.Context(), screeningID, payload.HealthTestID)
	if err != nil {
		if errors.Is(err, screening.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "screening not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "test_assign_failed", "failed to assign test", middleware.GetRequestID(r.Context()))
		return
	}
	h.record(r, user.UserID, "screening.test.assign", screeningID, nil, payload)
	api.Created(w, map[string]int64{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUnassignTest(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	assignmentID, ok := shared.ParseID(chi.URLParam(r, "assignmentID"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid assignment id", middleware.GetRequestID(r.Context()))
		return
	}
	if err := h.Service.UnassignTest(r.Context(), assignmentID); err != nil {
		if errors.Is(err, screening.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "assignment not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "test_unassign_failed", "failed to remove assignment", middleware.GetRequestID(r.Context()))
		return
	}
	h.record(r, user.UserID, "screening.test.unassign", assignmentID, nil, nil)
	api.Success(w, map[string]string{"status": "removed"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListTests(w http.ResponseWriter, r *http.Request) {
	screeningID, ok := shared.ParseID(chi.URLParam(r, "screeningID"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid screening id", middleware.GetRequestID(r.Context()))
		return
	}
	assignments, err := h.Service.ListTests(r.Context(), screeningID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "test_list_failed", "failed to list tests", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, assignments, middleware.GetRequestID(r.Context()))
}

func (h *Handler) notifyAssignedStaff(r *http.Request, record screening.Screening, ntype, title, body string) {
	if h.Notify == nil {
		return
	}
	assignments, err := h.Service.ListStaff(r.Context(), record.ID)
	if err != nil {
		slog.Warn("staff lookup for notification failed", "screeningId", record.ID, "err", err)
		return
	}
	for _, a := range assignments {
		if err := h.Notify.Notify(r.Context(), a.UserID, ntype, title, body); err != nil {
			slog.Warn("screening notification failed", "screeningId", record.ID, "userId", a.UserID, "err", err)
		}
	}
}

func (h *Handler) record(r *http.Request, actorID int64, action string, entityID int64, before, after any) {
	if h.Audit == nil {
		return
	}
	if err := h.Audit.Record(r.Context(), actorID, action, "screening", strconv.FormatInt(entityID, 10), middleware.GetRequestID(r.Context()), shared.ClientIP(r), before, after); err != nil {
		slog.Warn("audit "+action+" failed", "err", err)
	}
}
