package notification

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/orderpipe/commerce_events/internal/domain/models"
	internal_errors "github.com/orderpipe/commerce_events/internal/lib/errors"
	"github.com/orderpipe/commerce_events/internal/repository/mocks"
	"github.com/orderpipe/commerce_events/pkg/logger"
)

func storedNotification() *models.Notification {
	return &models.Notification{
		ID:             1,
		NotificationID: "N-1",
		OrderID:        "O1",
		CustomerID:     "C1",
		CustomerEmail:  "jane@example.com",
		Message:        "Your order has been created with ID: O1",
		Status:         "SENT",
		SentAt:         time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestByID(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	notifications := mocks.NewMockNotificationGetter(ctl)
	notifications.EXPECT().ByID(gomock.Any(), int64(1)).Return(storedNotification(), nil)

	h := NewHandler(logger.SetupLogger("local"), notifications)
	srv := httptest.NewServer(h.InitRoutes())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/api/notifications/1")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)

	var got models.Notification
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	require.Equal(t, "N-1", got.NotificationID)
	require.Equal(t, "jane@example.com", got.CustomerEmail)
}

func TestByIDNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	notifications := mocks.NewMockNotificationGetter(ctl)
	notifications.EXPECT().ByID(gomock.Any(), int64(42)).
		Return(nil, fmt.Errorf("services.notification.get.ByID: %w", internal_errors.ErrNotificationNotFound))

	h := NewHandler(logger.SetupLogger("local"), notifications)
	srv := httptest.NewServer(h.InitRoutes())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/api/notifications/42")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestByIDBadRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := NewHandler(logger.SetupLogger("local"), mocks.NewMockNotificationGetter(ctl))
	srv := httptest.NewServer(h.InitRoutes())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/api/notifications/abc")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestByNotificationID(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	notifications := mocks.NewMockNotificationGetter(ctl)
	notifications.EXPECT().ByNotificationID(gomock.Any(), "N-1").Return(storedNotification(), nil)

	h := NewHandler(logger.SetupLogger("local"), notifications)
	srv := httptest.NewServer(h.InitRoutes())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/api/notifications/notification/N-1")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestByOrderID(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	notifications := mocks.NewMockNotificationGetter(ctl)
	notifications.EXPECT().ByOrderID(gomock.Any(), "O1").
		Return([]models.Notification{*storedNotification()}, nil)

	h := NewHandler(logger.SetupLogger("local"), notifications)
	srv := httptest.NewServer(h.InitRoutes())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/api/notifications/order/O1")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)

	var got []models.Notification
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	require.Len(t, got, 1)
	require.Equal(t, "O1", got[0].OrderID)
}
