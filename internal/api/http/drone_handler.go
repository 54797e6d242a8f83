package http

import (
	"net/http"

	"skyfleet-backend/internal/domain"
	"skyfleet-backend/internal/service"
)

type DroneHandler struct {
	droneSvc service.DroneService
}

func NewDroneHandler(droneSvc service.DroneService) *DroneHandler {
	return &DroneHandler{droneSvc: droneSvc}
}

type droneRequest struct {
	Model             string `json:"model"`
	Brand             string `json:"brand"`
	Status            string `json:"status"`
	PricePerHourCents int64  `json:"price_per_hour_cents"`
	BatteryLife       int32  `json:"battery_life"`
	Location          string `json:"location"`
	ImageURL          string `json:"image_url"`
	GuideURL          string `json:"guide_url"`
	DronePriceCents   int64  `json:"drone_price_cents"`
}

func (h *DroneHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req droneRequest
	if !decodeBody(w, r, &req) {
		return
	}

	drone := &domain.Drone{
		Model:             req.Model,
		Brand:             req.Brand,
		Status:            domain.DroneStatus(req.Status),
		PricePerHourCents: req.PricePerHourCents,
		BatteryLife:       req.BatteryLife,
		Location:          req.Location,
		ImageURL:          req.ImageURL,
		GuideURL:          req.GuideURL,
		DronePriceCents:   req.DronePriceCents,
	}
	created, err := h.droneSvc.CreateDrone(r.Context(), drone)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *DroneHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	drone, err := h.droneSvc.GetDrone(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, drone)
}

func (h *DroneHandler) List(w http.ResponseWriter, r *http.Request) {
	drones, err := h.droneSvc.ListDrones(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, drones)
}

func (h *DroneHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req droneRequest
	if !decodeBody(w, r, &req) {
		return
	}

	drone := &domain.Drone{
		ID:                id,
		Model:             req.Model,
		Brand:             req.Brand,
		Status:            domain.DroneStatus(req.Status),
		PricePerHourCents: req.PricePerHourCents,
		BatteryLife:       req.BatteryLife,
		Location:          req.Location,
		ImageURL:          req.ImageURL,
		GuideURL:          req.GuideURL,
		DronePriceCents:   req.DronePriceCents,
	}
	if err := h.droneSvc.UpdateDrone(r.Context(), drone); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, drone)
}

func (h *DroneHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.droneSvc.DeleteDrone(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "drone deleted"})
}
