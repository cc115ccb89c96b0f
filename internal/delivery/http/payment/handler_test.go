package payment

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

func storedPayment() *models.Payment {
	return &models.Payment{
		ID:            1,
		PaymentID:     "PAY-1",
		OrderID:       "O1",
		CustomerID:    "C1",
		Amount:        150.0,
		Status:        "COMPLETED",
		PaymentMethod: "CREDIT_CARD",
		PaymentDate:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestByID(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	payments := mocks.NewMockPaymentGetter(ctl)
	payments.EXPECT().ByID(gomock.Any(), int64(1)).Return(storedPayment(), nil)

	h := NewHandler(logger.SetupLogger("local"), payments)
	srv := httptest.NewServer(h.InitRoutes())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/api/payments/1")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)

	var got models.Payment
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	require.Equal(t, "PAY-1", got.PaymentID)
	require.Equal(t, "O1", got.OrderID)
}

func TestByIDNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	payments := mocks.NewMockPaymentGetter(ctl)
	payments.EXPECT().ByID(gomock.Any(), int64(42)).
		Return(nil, fmt.Errorf("services.payment.get.ByID: %w", internal_errors.ErrPaymentNotFound))

	h := NewHandler(logger.SetupLogger("local"), payments)
	srv := httptest.NewServer(h.InitRoutes())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/api/payments/42")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestByIDBadRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := NewHandler(logger.SetupLogger("local"), mocks.NewMockPaymentGetter(ctl))
	srv := httptest.NewServer(h.InitRoutes())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/api/payments/not-a-number")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestByPaymentID(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	payments := mocks.NewMockPaymentGetter(ctl)
	payments.EXPECT().ByPaymentID(gomock.Any(), "PAY-1").Return(storedPayment(), nil)

	h := NewHandler(logger.SetupLogger("local"), payments)
	srv := httptest.NewServer(h.InitRoutes())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/api/payments/payment/PAY-1")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestByOrderID(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	payments := mocks.NewMockPaymentGetter(ctl)
	payments.EXPECT().ByOrderID(gomock.Any(), "O1").Return([]models.Payment{*storedPayment()}, nil)

	h := NewHandler(logger.SetupLogger("local"), payments)
	srv := httptest.NewServer(h.InitRoutes())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/api/payments/order/O1")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)

	var got []models.Payment
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	require.Len(t, got, 1)
}

func TestAllEmpty(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	payments := mocks.NewMockPaymentGetter(ctl)
	payments.EXPECT().All(gomock.Any()).Return([]models.Payment{}, nil)

	h := NewHandler(logger.SetupLogger("local"), payments)
	srv := httptest.NewServer(h.InitRoutes())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/api/payments/")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)

	var got []models.Payment
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	require.Empty(t, got)
}
