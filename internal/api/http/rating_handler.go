package http

import (
	"net/http"

	"skyfleet-backend/internal/service"
)

type RatingHandler struct {
	ratingSvc service.RatingService
}

func NewRatingHandler(ratingSvc service.RatingService) *RatingHandler {
	return &RatingHandler{ratingSvc: ratingSvc}
}

type createRatingRequest struct {
	BookingID    int64  `json:"booking_id"`
	RatingValue  int32  `json:"rating_value"`
	FeedbackText string `json:"feedback_text"`
}

func (h *RatingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRatingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rating, err := h.ratingSvc.CreateRating(r.Context(), req.BookingID, req.RatingValue, req.FeedbackText)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rating)
}

func (h *RatingHandler) List(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.ratingSvc.ListRatings(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ratings)
}

func (h *RatingHandler) ListByBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := pathID(w, r, "bookingID")
	if !ok {
		return
	}
	ratings, err := h.ratingSvc.ListRatingsByBooking(r.Context(), bookingID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ratings)
}

func (h *RatingHandler) ListByDrone(w http.ResponseWriter, r *http.Request) {
	droneID, ok := pathID(w, r, "droneID")
	if !ok {
		return
	}
	ratings, err := h.ratingSvc.ListRatingsByDrone(r.Context(), droneID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ratings)
}

func (h *RatingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.ratingSvc.DeleteRating(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "rating deleted"})
}
