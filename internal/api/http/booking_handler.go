package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"skyfleet-backend/internal/domain"
	"skyfleet-backend/internal/service"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

type createBookingRequest struct {
	DroneID             int64     `json:"drone_id"`
	StartTime           time.Time `json:"start_time"`
	EndTime             time.Time `json:"end_time"`
	DeliveryAddress     string    `json:"delivery_address"`
	UndertakingAccepted bool      `json:"undertaking_accepted"`
}

type bookingResponse struct {
	Booking      *domain.Booking      `json:"booking"`
	Undertakings []domain.Undertaking `json:"undertakings"`
	DepositCents int64                `json:"deposit_cents"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	claims := ClaimsFromContext(r.Context())
	result, err := h.bookingSvc.CreateBooking(r.Context(), service.CreateBookingInput{
		UserID:              claims.UserID,
		DroneID:             req.DroneID,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		DeliveryAddress:     req.DeliveryAddress,
		UndertakingAccepted: req.UndertakingAccepted,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, bookingResponse{
		Booking:      result.Booking,
		Undertakings: result.Undertakings,
		DepositCents: result.DepositCents,
	})
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	booking, err := h.bookingSvc.GetBooking(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingSvc.ListBookings(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())
	bookings, err := h.bookingSvc.ListBookingsByUser(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, bookings)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	status, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingSvc.UpdateBookingStatus(r.Context(), id, status)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) UpdateDeliveryStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	status, err := domain.ParseDeliveryStatus(req.Status)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingSvc.UpdateDeliveryStatus(r.Context(), id, status)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.bookingSvc.DeleteBooking(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "booking deleted"})
}

// pathID parses the named int64 path variable, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}
