package http

import (
	"net/http"

	"skyfleet-backend/internal/service"
)

type UndertakingHandler struct {
	undertakingSvc service.UndertakingService
}

func NewUndertakingHandler(undertakingSvc service.UndertakingService) *UndertakingHandler {
	return &UndertakingHandler{undertakingSvc: undertakingSvc}
}

type createTemplateRequest struct {
	DamageClauseText   string `json:"damage_clause_text"`
	DepositAmountCents int64  `json:"deposit_amount_cents"`
}

func (h *UndertakingHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req createTemplateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	template, err := h.undertakingSvc.CreateTemplate(r.Context(), req.DamageClauseText, req.DepositAmountCents)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, template)
}

func (h *UndertakingHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.undertakingSvc.ListTemplates(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, templates)
}

func (h *UndertakingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	undertaking, err := h.undertakingSvc.GetUndertaking(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, undertaking)
}

func (h *UndertakingHandler) ListByBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := pathID(w, r, "bookingID")
	if !ok {
		return
	}
	undertakings, err := h.undertakingSvc.ListByBooking(r.Context(), bookingID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, undertakings)
}

func (h *UndertakingHandler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.undertakingSvc.DeleteTemplate(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "undertaking template deleted"})
}
