package quotehandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"osgb/internal/domain/audit"
	"osgb/internal/domain/auth"
	"osgb/internal/domain/notifications"
	"osgb/internal/domain/quote"
	"osgb/internal/transport/http/api"
	"osgb/internal/transport/http/middleware"
	"osgb/internal/transport/http/shared"
)

type Handler struct {
	Service *quote.Service
	Notify  *notifications.Service
	Audit   *audit.Service
}

func NewHandler(service *quote.Service, notify *notifications.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Notify: notify, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/quotes", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermQuotesRead)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermQuotesRead)).Get("/{quoteID}", h.handleGet)
		r.With(middleware.RequirePermission(auth.PermQuotesWrite)).Post("/", h.handleCreate)
		r.With(middleware.RequirePermission(auth.PermQuotesWrite)).Post("/{quoteID}/send", h.handleSend)
		r.With(middleware.RequirePermission(auth.PermQuotesDecide)).Post("/{quoteID}/accept", h.handleAccept)
		r.With(middleware.RequirePermission(auth.PermQuotesDecide)).Post("/{quoteID}/reject", h.handleReject)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	var companyID int64
	if raw := r.URL.Query().Get("companyId"); raw != "" {
		id, ok := shared.ParseID(raw)
		if !ok {
			api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid company id", middleware.GetRequestID(r.Context()))
			return
		}
		companyID = id
	}
	page := shared.ParsePagination(r, 50, 200)
	quotes, err := h.Service.List(r.Context(), companyID, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "quote_list_failed", "failed to list quotes", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, quotes, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.ParseID(chi.URLParam(r, "quoteID"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid quote id", middleware.GetRequestID(r.Context()))
		return
	}
	record, err := h.Service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, quote.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "quote not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "quote_get_failed", "failed to load quote", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, record, middleware.GetRequestID(r.Context()))
}

type quotePayload struct {
	CompanyID       int64        `json:"companyId"`
	DiscountPercent float64      `json:"discountPercent"`
	VATPercent      float64      `json:"vatPercent"`
	ValidUntil      string       `json:"validUntil"`
	Lines           []quote.Line `json:"lines"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload quotePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Positive("companyId", payload.CompanyID, "company id is required")
	if len(payload.Lines) == 0 {
		v.Add("lines", "at least one line item is required")
	}
	for i, line := range payload.Lines {
		prefix := "lines[" + strconv.Itoa(i) + "]"
		v.Required(prefix+".service", line.Service, "service name is required")
		if line.Quantity <= 0 {
			v.Add(prefix+".quantity", "quantity must be positive")
		}
		if line.UnitPrice < 0 {
			v.Add(prefix+".unitPrice", "unit price must not be negative")
		}
	}
	if payload.DiscountPercent < 0 || payload.DiscountPercent > 100 {
		v.Add("discountPercent", "must be between 0 and 100")
	}
	if payload.VATPercent < 0 {
		v.Add("vatPercent", "must not be negative")
	}
	validUntil, okDate := v.Date("validUntil", payload.ValidUntil)
	if v.Reject(w, middleware.GetRequestID(r.Context())) || !okDate {
		return
	}

	id, err := h.Service.Create(r.Context(), quote.Quote{
		CompanyID:       payload.CompanyID,
		DiscountPercent: payload.DiscountPercent,
		VATPercent:      payload.VATPercent,
		ValidUntil:      validUntil,
		Lines:           payload.Lines,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "quote_create_failed", "failed to create quote", middleware.GetRequestID(r.Context()))
		return
	}
	h.record(r, user.UserID, "quote.create", id, payload)
	api.Created(w, map[string]int64{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, quote.StatusSent, "quote.send")
}

func (h *Handler) handleAccept(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, quote.StatusAccepted, "quote.accept")
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, quote.StatusRejected, "quote.reject")
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, to quote.Status, action string) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	id, ok := shared.ParseID(chi.URLParam(r, "quoteID"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid quote id", middleware.GetRequestID(r.Context()))
		return
	}

	record, err := h.Service.Transition(r.Context(), id, to)
	if err != nil {
		if errors.Is(err, quote.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "quote not found", middleware.GetRequestID(r.Context()))
			return
		}
		if errors.Is(err, quote.ErrInvalidTransition) {
			api.Fail(w, http.StatusConflict, "invalid_transition", err.Error(), middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "quote_transition_failed", "failed to update quote", middleware.GetRequestID(r.Context()))
		return
	}
	h.record(r, user.UserID, action, id, map[string]string{"status": string(to)})

	if to == quote.StatusAccepted || to == quote.StatusRejected {
		h.notifyDecision(r, record, to)
	}

	api.Success(w, record, middleware.GetRequestID(r.Context()))
}

func (h *Handler) notifyDecision(r *http.Request, record quote.Quote, to quote.Status) {
	if h.Notify == nil {
		return
	}
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		return
	}
	verb := "accepted"
	if to == quote.StatusRejected {
		verb = "rejected"
	}
	title := fmt.Sprintf("Quote %s: %s", verb, record.CompanyName)
	body := fmt.Sprintf("Quote #%d for %s was %s. Grand total: %.2f.",
		record.ID, record.CompanyName, verb, record.Totals.GrandTotal)
	if err := h.Notify.Notify(r.Context(), user.UserID, notifications.TypeQuoteDecision, title, body); err != nil {
		slog.Warn("quote decision notification failed", "quoteId", record.ID, "err", err)
	}
}

func (h *Handler) record(r *http.Request, actorID int64, action string, entityID int64, after any) {
	if h.Audit == nil {
		return
	}
	if err := h.Audit.Record(r.Context(), actorID, action, "quote", strconv.FormatInt(entityID, 10), middleware.GetRequestID(r.Context()), shared.ClientIP(r), nil, after); err != nil {
		slog.Warn("audit "+action+" failed", "err", err)
	}
}
