package reporthandler

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"osgb/internal/domain/audit"
	"osgb/internal/domain/auth"
	"osgb/internal/domain/report"
	"osgb/internal/domain/screening"
	"osgb/internal/platform/jobs"
	"osgb/internal/platform/metrics"
	"osgb/internal/transport/http/api"
	"osgb/internal/transport/http/middleware"
	"osgb/internal/transport/http/shared"
)

type Handler struct {
	Reports    *report.Service
	Screenings *screening.Service
	Audit      *audit.Service
	Jobs       *jobs.Service
	Metrics    *metrics.Collector
}

func NewHandler(reports *report.Service, screenings *screening.Service, auditSvc *audit.Service, jobSvc *jobs.Service, collector *metrics.Collector) *Handler {
	return &Handler{Reports: reports, Screenings: screenings, Audit: auditSvc, Jobs: jobSvc, Metrics: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermReportsRead)).Get("/dashboard", h.handleDashboard)
		r.With(middleware.RequirePermission(auth.PermReportsRead)).Get("/company/{companyID}", h.handleCompanyReport)
		r.With(middleware.RequirePermission(auth.PermReportsRead)).Get("/screenings/export", h.handleExport)
	})
	r.Route("/admin", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermAuditRead)).Get("/audit", h.handleAuditList)
		r.With(middleware.RequirePermission(auth.PermSystemAdmin)).Get("/metrics", h.handleMetrics)
		r.With(middleware.RequirePermission(auth.PermSystemAdmin)).Post("/jobs/{jobType}", h.handleRunJob)
	})
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.Reports.Dashboard(r.Context(), time.Now().UTC())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "dashboard_failed", "failed to build dashboard", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, dashboard, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCompanyReport(w http.ResponseWriter, r *http.Request) {
	companyID, ok := shared.ParseID(chi.URLParam(r, "companyID"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid company id", middleware.GetRequestID(r.Context()))
		return
	}
	out, err := h.Reports.CompanyReport(r.Context(), companyID, time.Now().UTC())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "company_report_failed", "failed to build company report", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, out, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	criteria, v := parseExportCriteria(r)
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	switch format {
	case "csv", "xlsx", "pdf":
	default:
		v.Add("format", "must be one of csv, xlsx, pdf")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	records, err := h.Screenings.Filtered(r.Context(), criteria)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to load screenings", middleware.GetRequestID(r.Context()))
		return
	}

	var (
		payload     []byte
		contentType string
	)
	switch format {
	case "csv":
		payload, err = report.ExportCSV(records)
		contentType = "text/csv"
	case "xlsx":
		payload, err = report.ExportXLSX(records)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "pdf":
		payload, err = report.ExportPDF(records, time.Now().UTC())
		contentType = "application/pdf"
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to render export", middleware.GetRequestID(r.Context()))
		return
	}

	filename := fmt.Sprintf("screenings-%s.%s", time.Now().UTC().Format("2006-01-02"), format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprint(len(payload)))
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

func parseExportCriteria(r *http.Request) (screening.Criteria, *shared.Validator) {
	v := shared.NewValidator()
	q := r.URL.Query()
	var criteria screening.Criteria

	if raw := q.Get("companyId"); raw != "" {
		id, ok := shared.ParseID(raw)
		if !ok {
			v.Add("companyId", "must be a positive integer")
		}
		criteria.CompanyID = id
	}
	if raw := strings.ToLower(strings.TrimSpace(q.Get("status"))); raw != "" {
		status := screening.Status(raw)
		if !status.Valid() {
			v.Add("status", "unknown status")
		}
		criteria.Status = status
	}
	if raw := strings.ToLower(strings.TrimSpace(q.Get("type"))); raw != "" {
		typ := screening.Type(raw)
		if !typ.Valid() {
			v.Add("type", "unknown screening type")
		}
		criteria.Type = typ
	}
	if raw := q.Get("from"); raw != "" {
		criteria.DateStart, _ = v.Date("from", raw)
	}
	if raw := q.Get("to"); raw != "" {
		criteria.DateEnd, _ = v.Date("to", raw)
	}
	criteria.SearchText = q.Get("search")
	return criteria, v
}

func (h *Handler) handleAuditList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := audit.Filter{
		Action:     q.Get("action"),
		EntityType: q.Get("entityType"),
	}
	if raw := q.Get("actorId"); raw != "" {
		id, ok := shared.ParseID(raw)
		if !ok {
			api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid actor id", middleware.GetRequestID(r.Context()))
			return
		}
		filter.ActorID = id
	}
	page := shared.ParsePagination(r, 50, 500)
	events, err := h.Audit.List(r.Context(), filter, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "audit_list_failed", "failed to list audit events", middleware.GetRequestID(r.Context()))
		return
	}
	if events == nil {
		events = []audit.Event{}
	}
	api.Success(w, events, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if h.Metrics == nil {
		api.Fail(w, http.StatusNotFound, "not_found", "metrics collection is disabled", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, h.Metrics.Snapshot(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRunJob(w http.ResponseWriter, r *http.Request) {
	if h.Jobs == nil {
		api.Fail(w, http.StatusNotFound, "not_found", "background jobs are disabled", middleware.GetRequestID(r.Context()))
		return
	}
	jobType := chi.URLParam(r, "jobType")

	var run func(ctx context.Context) (any, error)
	switch jobType {
	case jobs.JobExpirySweep:
		run = func(ctx context.Context) (any, error) {
			return h.Jobs.SweepExpiredDocuments(ctx, time.Now().UTC())
		}
	case jobs.JobScreeningReminders:
		run = func(ctx context.Context) (any, error) {
			return h.Jobs.SendScreeningReminders(ctx, time.Now().UTC())
		}
	default:
		api.Fail(w, http.StatusBadRequest, "unknown_job", "unknown job type", middleware.GetRequestID(r.Context()))
		return
	}

	details, err := h.Jobs.RunNow(r.Context(), jobType, run)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "job_failed", "job execution failed", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"job": jobType, "details": details}, middleware.GetRequestID(r.Context()))
}
