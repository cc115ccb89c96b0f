package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/orderpipe/commerce_events/internal/domain/models"
	internal_errors "github.com/orderpipe/commerce_events/internal/lib/errors"
	"github.com/orderpipe/commerce_events/pkg/logger"
)

type Payments interface {
	ByID(ctx context.Context, id int64) (*models.Payment, error)
	ByPaymentID(ctx context.Context, paymentID string) (*models.Payment, error)
	ByOrderID(ctx context.Context, orderID string) ([]models.Payment, error)
	All(ctx context.Context) ([]models.Payment, error)
}

type Handler struct {
	log logger.Logger

	payments Payments
}

func NewHandler(log logger.Logger, payments Payments) *Handler {
	return &Handler{
		log:      log,
		payments: payments,
	}
}

func (h *Handler) InitRoutes() http.Handler {
	mux := chi.NewRouter()

	mux.Route("/api/payments", func(r chi.Router) {
		r.Get("/", h.all)
		r.Get("/{id}", h.byID)
		r.Get("/payment/{paymentId}", h.byPaymentID)
		r.Get("/order/{orderId}", h.byOrderID)
	})

	return mux
}

func (h *Handler) byID(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.payment.byID"

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid payment id", http.StatusBadRequest)
		return
	}

	payment, err := h.payments.ByID(r.Context(), id)
	if err != nil {
		h.writeError(w, op, err)
		return
	}

	h.writeJSON(w, op, payment)
}

func (h *Handler) byPaymentID(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.payment.byPaymentID"

	payment, err := h.payments.ByPaymentID(r.Context(), chi.URLParam(r, "paymentId"))
	if err != nil {
		h.writeError(w, op, err)
		return
	}

	h.writeJSON(w, op, payment)
}

func (h *Handler) byOrderID(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.payment.byOrderID"

	payments, err := h.payments.ByOrderID(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		h.writeError(w, op, err)
		return
	}

	h.writeJSON(w, op, payments)
}

func (h *Handler) all(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.payment.all"

	payments, err := h.payments.All(r.Context())
	if err != nil {
		h.writeError(w, op, err)
		return
	}

	h.writeJSON(w, op, payments)
}

func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, internal_errors.ErrPaymentNotFound) {
		http.Error(w, internal_errors.ErrPaymentNotFound.Error(), http.StatusNotFound)
		return
	}

	h.log.Error(op, logger.String("error", err.Error()))
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func (h *Handler) writeJSON(w http.ResponseWriter, op string, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Error(op, logger.String("failed to encode response", err.Error()))
	}
}
