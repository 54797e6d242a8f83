package domain

import "time"

type Rating struct {
	ID           int64     `json:"id"`
	BookingID    int64     `json:"booking_id"`
	UserID       int64     `json:"user_id"`
	DroneID      int64     `json:"drone_id"`
	RatingValue  int32     `json:"rating_value"`
	FeedbackText string    `json:"feedback_text"`
	CreatedOn    time.Time `json:"created_on"`
	UpdatedOn    time.Time `json:"updated_on"`
}
