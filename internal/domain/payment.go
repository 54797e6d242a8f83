package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// PaymentMethodUnknown is recorded until the gateway callback tells us how
// the order was actually paid.
const PaymentMethodUnknown = "Not Known"

// Payment is one attempt to settle a booking through the gateway. A booking
// may accumulate several attempts; at most one reaches COMPLETED. The remote
// order id is unique per payment row.
type Payment struct {
	ID                int64         `json:"id"`
	BookingID         int64         `json:"booking_id"`
	AmountPaidCents   int64         `json:"amount_paid_cents"`
	PaymentMethod     string        `json:"payment_method"`
	PaymentDate       time.Time     `json:"payment_date"`
	Status            PaymentStatus `json:"payment_status"`
	RazorpayOrderID   string        `json:"razorpay_order_id"`
	RazorpayPaymentID string        `json:"razorpay_payment_id"`
	RazorpaySignature string        `json:"razorpay_signature"`
	CreatedOn         time.Time     `json:"created_on"`
	UpdatedOn         time.Time     `json:"updated_on"`
}
