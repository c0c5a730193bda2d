package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"careernav/internal/repository"
	"careernav/internal/service"
	"careernav/internal/transport/rest/handler"
	"careernav/internal/transport/rest/middleware"
	"careernav/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService   *service.AuthService
	TestService   *service.TestService
	SkillsService *service.SkillsService
	ResultRepo    repository.ResultRepo
	WSHub         *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	testHandler := handler.NewTestHandler(c.TestService)
	skillsHandler := handler.NewSkillsHandler(c.SkillsService)
	resultsHandler := handler.NewResultsHandler(c.ResultRepo)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")

	// WebSocket routes (token in query param)
	v1.HandleFunc("/ws/dashboard", wsHandler.DashboardWS).Methods("GET")
	v1.HandleFunc("/ws/test", wsHandler.TestWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Test-taker routes (require user auth)
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/test/start", testHandler.Start).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/test/answer", testHandler.Answer).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/test/progress", testHandler.Progress).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/test/results", testHandler.Results).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/skills/evaluate", skillsHandler.Evaluate).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/results", resultsHandler.ListMine).Methods("GET", "OPTIONS")

	// Admin routes (require admin auth)
	adminRoutes := v1.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/admin/results", resultsHandler.ListAll).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
