package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"skyfleet-backend/internal/logger"
	"skyfleet-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// respondError maps the service error taxonomy onto HTTP status codes.
func respondError(w http.ResponseWriter, err error) {
	var gatewayErr *service.GatewayError
	var paymentErr *service.PaymentError

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, service.ErrAlreadyCompleted):
		status = http.StatusConflict
	case errors.Is(err, service.ErrPreconditionFailed):
		status = http.StatusPreconditionFailed
	case errors.Is(err, service.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrVerificationFailed):
		status = http.StatusPaymentRequired
	case errors.As(err, &gatewayErr):
		status = http.StatusBadGateway
	case errors.As(err, &paymentErr):
		status = http.StatusInternalServerError
	}

	if status == http.StatusInternalServerError {
		logger.Error("Request failed", "error", err)
		respondJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}
	respondJSON(w, status, errorResponse{Error: err.Error()})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
