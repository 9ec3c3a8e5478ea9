package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventlistings/internal/delivery/http/controllers"
	"eventlistings/internal/delivery/http/middleware"
	"eventlistings/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	eventController *controllers.EventController,
	bookingController *controllers.BookingController,
	authController *controllers.AuthController,
	verifier domain.TokenVerifier,
	logger *slog.Logger,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier, logger)

	// Events
	mux.HandleFunc("GET /api/events", eventController.ListEvents)
	mux.HandleFunc("POST /api/events", eventController.CreateEvent)
	mux.HandleFunc("GET /api/events/{slug}", eventController.GetEventBySlug)
	mux.HandleFunc("PUT /api/events/{slug}", requireAuth(eventController.UpdateEvent))

	// Bookings
	mux.HandleFunc("POST /api/bookings", bookingController.CreateBooking)

	// Auth
	mux.HandleFunc("POST /api/auth/signup", authController.SignUp)
	mux.HandleFunc("POST /api/auth/login", authController.Login)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
