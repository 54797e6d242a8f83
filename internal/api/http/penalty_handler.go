package http

import (
	"errors"
	"net/http"

	"skyfleet-backend/internal/domain"
	"skyfleet-backend/internal/service"
)

type PenaltyHandler struct {
	penaltySvc service.PenaltyService
}

func NewPenaltyHandler(penaltySvc service.PenaltyService) *PenaltyHandler {
	return &PenaltyHandler{penaltySvc: penaltySvc}
}

type recordPenaltyRequest struct {
	BookingID int64  `json:"booking_id"`
	Reason    string `json:"reason"`
}

func (h *PenaltyHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordPenaltyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	reason, err := domain.ParsePenaltyReason(req.Reason)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	penalty, err := h.penaltySvc.RecordPenalty(r.Context(), req.BookingID, reason)
	if err != nil {
		// A zero charge is a valid outcome, not a failure.
		if errors.Is(err, service.ErrNoPenaltyApplicable) {
			respondJSON(w, http.StatusOK, messageResponse{Message: "no penalty applicable"})
			return
		}
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, penalty)
}

func (h *PenaltyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	penalty, err := h.penaltySvc.GetPenalty(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, penalty)
}

func (h *PenaltyHandler) List(w http.ResponseWriter, r *http.Request) {
	penalties, err := h.penaltySvc.ListPenalties(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, penalties)
}

func (h *PenaltyHandler) ListByBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := pathID(w, r, "bookingID")
	if !ok {
		return
	}
	penalties, err := h.penaltySvc.ListPenaltiesByBooking(r.Context(), bookingID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, penalties)
}

type updatePenaltyStatusRequest struct {
	Status string `json:"status"`
}

func (h *PenaltyHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updatePenaltyStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var status domain.PenaltyStatus
	switch domain.PenaltyStatus(req.Status) {
	case domain.PenaltyStatusPending, domain.PenaltyStatusPaid, domain.PenaltyStatusWaived:
		status = domain.PenaltyStatus(req.Status)
	default:
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid penalty status: " + req.Status})
		return
	}

	penalty, err := h.penaltySvc.UpdatePenaltyStatus(r.Context(), id, status)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, penalty)
}

func (h *PenaltyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.penaltySvc.DeletePenalty(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "penalty deleted"})
}
