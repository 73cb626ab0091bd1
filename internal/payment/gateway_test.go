package payment

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSandboxGateway_Sale(t *testing.T) {
	gateway := NewSandboxGateway("merchant", "public", "private")

	t.Run("accepts positive amount with nonce", func(t *testing.T) {
		result, err := gateway.Sale(context.Background(), decimal.RequireFromString("12.50"), "nonce")

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.NotEmpty(t, result.TransactionID)
		assert.True(t, result.Amount.Equal(decimal.RequireFromString("12.50")))
	})

	t.Run("rejects empty nonce", func(t *testing.T) {
		result, err := gateway.Sale(context.Background(), decimal.RequireFromString("12.50"), "")

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Empty(t, result.TransactionID)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		result, err := gateway.Sale(context.Background(), decimal.Zero, "nonce")

		require.NoError(t, err)
		assert.False(t, result.Success)
	})
}

func TestSandboxGateway_ClientToken(t *testing.T) {
	gateway := NewSandboxGateway("merchant", "public", "private")

	first, err := gateway.ClientToken(context.Background())
	require.NoError(t, err)
	second, err := gateway.ClientToken(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
