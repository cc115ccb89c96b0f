package notification

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

type Notifications interface {
	ByID(ctx context.Context, id int64) (*models.Notification, error)
	ByNotificationID(ctx context.Context, notificationID string) (*models.Notification, error)
	ByOrderID(ctx context.Context, orderID string) ([]models.Notification, error)
	All(ctx context.Context) ([]models.Notification, error)
}

type Handler struct {
	log logger.Logger

	notifications Notifications
}

func NewHandler(log logger.Logger, notifications Notifications) *Handler {
	return &Handler{
		log:           log,
		notifications: notifications,
	}
}

func (h *Handler) InitRoutes() http.Handler {
	mux := chi.NewRouter()

	mux.Route("/api/notifications", func(r chi.Router) {
		r.Get("/", h.all)
		r.Get("/{id}", h.byID)
		r.Get("/notification/{notificationId}", h.byNotificationID)
		r.Get("/order/{orderId}", h.byOrderID)
	})

	return mux
}

func (h *Handler) byID(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.notification.byID"

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid notification id", http.StatusBadRequest)
		return
	}

	notification, err := h.notifications.ByID(r.Context(), id)
	if err != nil {
		h.writeError(w, op, err)
		return
	}

	h.writeJSON(w, op, notification)
}

func (h *Handler) byNotificationID(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.notification.byNotificationID"

	notification, err := h.notifications.ByNotificationID(r.Context(), chi.URLParam(r, "notificationId"))
	if err != nil {
		h.writeError(w, op, err)
		return
	}

	h.writeJSON(w, op, notification)
}

func (h *Handler) byOrderID(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.notification.byOrderID"

	notifications, err := h.notifications.ByOrderID(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		h.writeError(w, op, err)
		return
	}

	h.writeJSON(w, op, notifications)
}

func (h *Handler) all(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.notification.all"

	notifications, err := h.notifications.All(r.Context())
	if err != nil {
		h.writeError(w, op, err)
		return
	}

	h.writeJSON(w, op, notifications)
}

func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, internal_errors.ErrNotificationNotFound) {
		http.Error(w, internal_errors.ErrNotificationNotFound.Error(), http.StatusNotFound)
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
