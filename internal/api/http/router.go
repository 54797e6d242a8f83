package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"skyfleet-backend/internal/domain"
	"skyfleet-backend/internal/security"
	"skyfleet-backend/internal/service"
)

// Services bundles everything the router needs.
type Services struct {
	Bookings     service.BookingService
	Payments     service.PaymentService
	Penalties    service.PenaltyService
	Undertakings service.UndertakingService
	Users        service.UserService
	Drones       service.DroneService
	Ratings      service.RatingService
}

// NewRouter wires all routes, middleware and the metrics endpoint.
func NewRouter(svcs Services, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestID)
	r.Use(Logging)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, messageResponse{Message: "ok"})
	}).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	auth := NewAuthMiddleware(tokens)
	users := NewUserHandler(svcs.Users)
	drones := NewDroneHandler(svcs.Drones)
	bookings := NewBookingHandler(svcs.Bookings)
	payments := NewPaymentHandler(svcs.Payments)
	penalties := NewPenaltyHandler(svcs.Penalties)
	undertakings := NewUndertakingHandler(svcs.Undertakings)
	ratings := NewRatingHandler(svcs.Ratings)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", users.Register).Methods("POST")
	api.HandleFunc("/auth/login", users.Login).Methods("POST")
	api.HandleFunc("/drones", drones.List).Methods("GET")
	api.HandleFunc("/drones/{id:[0-9]+}", drones.Get).Methods("GET")
	api.HandleFunc("/drones/{droneID:[0-9]+}/ratings", ratings.ListByDrone).Methods("GET")
	api.HandleFunc("/undertakings", undertakings.ListTemplates).Methods("GET")

	// Authenticated routes
	protected := api.NewRoute().Subrouter()
	protected.Use(auth.Authenticate)

	protected.HandleFunc("/bookings", auth.RequireCapability(domain.CapCreateBookings, bookings.Create)).Methods("POST")
	protected.HandleFunc("/bookings/mine", bookings.ListMine).Methods("GET")
	protected.HandleFunc("/bookings/{id:[0-9]+}", bookings.Get).Methods("GET")
	protected.HandleFunc("/bookings/{id:[0-9]+}/status", bookings.UpdateStatus).Methods("PATCH")
	protected.HandleFunc("/bookings/{bookingID:[0-9]+}/undertakings", undertakings.ListByBooking).Methods("GET")
	protected.HandleFunc("/bookings/{bookingID:[0-9]+}/penalties", penalties.ListByBooking).Methods("GET")
	protected.HandleFunc("/bookings/{bookingID:[0-9]+}/ratings", ratings.ListByBooking).Methods("GET")

	protected.HandleFunc("/payments/order", payments.CreateOrder).Methods("POST")
	protected.HandleFunc("/payments/verify", payments.Verify).Methods("POST")
	protected.HandleFunc("/payments/{id:[0-9]+}", payments.Get).Methods("GET")

	protected.HandleFunc("/ratings", ratings.Create).Methods("POST")

	// Admin routes
	protected.HandleFunc("/bookings", auth.RequireCapability(domain.CapManageFleet, bookings.List)).Methods("GET")
	protected.HandleFunc("/bookings/{id:[0-9]+}", auth.RequireCapability(domain.CapDeleteBookings, bookings.Delete)).Methods("DELETE")
	protected.HandleFunc("/bookings/{id:[0-9]+}/delivery", auth.RequireCapability(domain.CapManageFleet, bookings.UpdateDeliveryStatus)).Methods("PATCH")

	protected.HandleFunc("/drones", auth.RequireCapability(domain.CapManageFleet, drones.Create)).Methods("POST")
	protected.HandleFunc("/drones/{id:[0-9]+}", auth.RequireCapability(domain.CapManageFleet, drones.Update)).Methods("PUT")
	protected.HandleFunc("/drones/{id:[0-9]+}", auth.RequireCapability(domain.CapManageFleet, drones.Delete)).Methods("DELETE")

	protected.HandleFunc("/penalties", auth.RequireCapability(domain.CapManageFleet, penalties.Record)).Methods("POST")
	protected.HandleFunc("/penalties", auth.RequireCapability(domain.CapManageFleet, penalties.List)).Methods("GET")
	protected.HandleFunc("/penalties/{id:[0-9]+}", auth.RequireCapability(domain.CapManageFleet, penalties.Get)).Methods("GET")
	protected.HandleFunc("/penalties/{id:[0-9]+}/status", auth.RequireCapability(domain.CapManageFleet, penalties.UpdateStatus)).Methods("PATCH")
	protected.HandleFunc("/penalties/{id:[0-9]+}", auth.RequireCapability(domain.CapManageFleet, penalties.Delete)).Methods("DELETE")

	protected.HandleFunc("/payments", auth.RequireCapability(domain.CapManageFleet, payments.List)).Methods("GET")

	protected.HandleFunc("/undertakings", auth.RequireCapability(domain.CapManageFleet, undertakings.CreateTemplate)).Methods("POST")
	protected.HandleFunc("/undertakings/{id:[0-9]+}", undertakings.Get).Methods("GET")
	protected.HandleFunc("/undertakings/{id:[0-9]+}", auth.RequireCapability(domain.CapManageFleet, undertakings.DeleteTemplate)).Methods("DELETE")

	protected.HandleFunc("/users", auth.RequireCapability(domain.CapManageUsers, users.List)).Methods("GET")
	protected.HandleFunc("/users/{id:[0-9]+}", users.Get).Methods("GET")
	protected.HandleFunc("/users/{id:[0-9]+}", users.Update).Methods("PUT")
	protected.HandleFunc("/users/{id:[0-9]+}", auth.RequireCapability(domain.CapManageUsers, users.Delete)).Methods("DELETE")

	protected.HandleFunc("/ratings", auth.RequireCapability(domain.CapManageFleet, ratings.List)).Methods("GET")
	protected.HandleFunc("/ratings/{id:[0-9]+}", auth.RequireCapability(domain.CapManageFleet, ratings.Delete)).Methods("DELETE")

	return r
}
