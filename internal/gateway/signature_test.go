package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignature(t *testing.T) {
	// Known vector: HMAC-SHA256("order_123|pay_456", "secret"), hex-encoded.
	sig := Signature("order_123", "pay_456", "secret")
	assert.Len(t, sig, 64)
	assert.Equal(t, sig, Signature("order_123", "pay_456", "secret"))
	assert.NotEqual(t, sig, Signature("order_123", "pay_456", "other-secret"))
	assert.NotEqual(t, sig, Signature("order_123", "pay_457", "secret"))
}

func TestVerifySignature(t *testing.T) {
	secret := "test_api_secret"
	good := Signature("order_A", "pay_B", secret)

	assert.True(t, VerifySignature("order_A", "pay_B", secret, good))
	assert.False(t, VerifySignature("order_A", "pay_B", secret, good+"00"))
	assert.False(t, VerifySignature("order_A", "pay_C", secret, good))
	assert.False(t, VerifySignature("order_A", "pay_B", secret, ""))
	// Secret and signature are not interchangeable.
	assert.False(t, VerifySignature("order_A", "pay_B", good, secret))
}

func TestOrderFromResponse(t *testing.T) {
	t.Run("Valid response", func(t *testing.T) {
		o, err := orderFromResponse(map[string]interface{}{
			"id":       "order_xyz",
			"receipt":  "42",
			"currency": "INR",
			"status":   "created",
			"amount":   float64(150000),
		})
		assert.NoError(t, err)
		assert.Equal(t, "order_xyz", o.ID)
		assert.Equal(t, "42", o.Receipt)
		assert.Equal(t, int64(150000), o.Amount)
	})

	t.Run("Missing id", func(t *testing.T) {
		_, err := orderFromResponse(map[string]interface{}{"receipt": "42"})
		assert.Error(t, err)
	})
}
