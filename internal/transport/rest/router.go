package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"interviewai/internal/service"
	"interviewai/internal/transport/rest/handler"
	"interviewai/internal/transport/rest/middleware"
	"interviewai/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService      *service.AuthService
	InterviewService *service.InterviewService
	EvaluatorService *service.EvaluatorService
	WSHub            *ws.Hub
	Logger           *zap.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	interviewHandler := handler.NewInterviewHandler(c.InterviewService)
	adminHandler := handler.NewAdminHandler(c.InterviewService, c.EvaluatorService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.Logger)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// Candidate routes (public)
	r.HandleFunc("/upload-resume", interviewHandler.UploadResume).Methods("POST", "OPTIONS")
	r.HandleFunc("/get-question", interviewHandler.GetQuestion).Methods("GET", "OPTIONS")
	r.HandleFunc("/submit-response", interviewHandler.SubmitResponse).Methods("POST", "OPTIONS")
	r.HandleFunc("/get-results", interviewHandler.GetResults).Methods("GET", "OPTIONS")

	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket route (public with token in query param)
	r.HandleFunc("/ws/monitor", wsHandler.MonitorWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Host routes (require host auth)
	hostRoutes := r.NewRoute().Subrouter()
	hostRoutes.Use(authMW.RequireHost)

	hostRoutes.HandleFunc("/stats", adminHandler.Stats).Methods("GET", "OPTIONS")
	hostRoutes.HandleFunc("/sessions", adminHandler.Sessions).Methods("GET", "OPTIONS")
	hostRoutes.HandleFunc("/sessions/{sessionId}/answers", adminHandler.SessionAnswers).Methods("GET", "OPTIONS")

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
