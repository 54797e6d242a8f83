package gateway

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// Order is the subset of the remote order we keep. Amounts are in minor
// units, as the gateway requires.
type Order struct {
	ID       string
	Receipt  string
	Currency string
	Status   string
	Amount   int64
}

// Gateway creates remote payment orders. Verification of callbacks is done
// locally against the shared secret, see signature.go.
type Gateway interface {
	CreateOrder(ctx context.Context, amountMinorUnits int64, currency, receipt string) (*Order, error)
}

type razorpayGateway struct {
	client *razorpay.Client
}

// NewRazorpay builds a gateway backed by the Razorpay Orders API.
func NewRazorpay(keyID, keySecret string) Gateway {
	return &razorpayGateway{client: razorpay.NewClient(keyID, keySecret)}
}

func (g *razorpayGateway) CreateOrder(ctx context.Context, amountMinorUnits int64, currency, receipt string) (*Order, error) {
	data := map[string]interface{}{
		"amount":   amountMinorUnits,
		"currency": currency,
		"receipt":  receipt,
	}
	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}
	return orderFromResponse(body)
}

// orderFromResponse maps the gateway's loosely typed response. A missing or
// empty order id means the response cannot be trusted.
func orderFromResponse(body map[string]interface{}) (*Order, error) {
	o := &Order{
		ID:       stringField(body, "id"),
		Receipt:  stringField(body, "receipt"),
		Currency: stringField(body, "currency"),
		Status:   stringField(body, "status"),
	}
	if o.ID == "" {
		return nil, fmt.Errorf("razorpay order response missing id")
	}
	switch v := body["amount"].(type) {
	case float64:
		o.Amount = int64(v)
	case int64:
		o.Amount = v
	case int:
		o.Amount = int64(v)
	}
	return o, nil
}

func stringField(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
