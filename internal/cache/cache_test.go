package cache

import (
	"testing"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/stretchr/testify/require"

	"github.com/orderpipe/commerce_events/internal/domain/models"
	"github.com/orderpipe/commerce_events/pkg/logger"
)

func TestAddGet(t *testing.T) {
	lru := expirable.NewLRU[string, *models.Payment](8, nil, time.Minute)
	c := New[string, *models.Payment](lru, logger.SetupLogger("local"))

	payment := &models.Payment{PaymentID: "PAY-1", OrderID: "O1"}
	c.Add("PAY-1", payment)

	got, ok := c.Get("PAY-1")
	require.True(t, ok)
	require.Equal(t, payment, got)
}

func TestGetMissing(t *testing.T) {
	lru := expirable.NewLRU[string, *models.Payment](8, nil, time.Minute)
	c := New[string, *models.Payment](lru, logger.SetupLogger("local"))

	got, ok := c.Get("absent")
	require.False(t, ok)
	require.Nil(t, got)
}

func TestEviction(t *testing.T) {
	lru := expirable.NewLRU[string, *models.Payment](1, nil, time.Minute)
	c := New[string, *models.Payment](lru, logger.SetupLogger("local"))

	c.Add("PAY-1", &models.Payment{PaymentID: "PAY-1"})
	evicted := c.Add("PAY-2", &models.Payment{PaymentID: "PAY-2"})
	require.True(t, evicted)

	_, ok := c.Get("PAY-1")
	require.False(t, ok)

	_, ok = c.Get("PAY-2")
	require.True(t, ok)
}
