package domain

import "time"

// Undertaking is a damage-liability clause. Template rows (IsTemplate true,
// BookingID nil) form the catalog; booking-scoped copies are cloned from the
// distinct-by-clause-text template set at booking time, always with
// IsAccepted true and a deposit sized from the drone's price.
type Undertaking struct {
	ID                 int64     `json:"id"`
	BookingID          *int64    `json:"booking_id,omitempty"`
	IsAccepted         bool      `json:"is_accepted"`
	DepositAmountCents int64     `json:"deposit_amount_cents"`
	DamageClauseText   string    `json:"damage_clause_text"`
	IsTemplate         bool      `json:"is_template"`
	CreatedOn          time.Time `json:"created_on"`
	UpdatedOn          time.Time `json:"updated_on"`
}
