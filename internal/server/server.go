// Package server provides the HTTP REST API for careerpilot.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/careerpilot/internal/config"
	"github.com/jonathan/careerpilot/internal/db"
	"github.com/jonathan/careerpilot/internal/llm"
	"github.com/jonathan/careerpilot/internal/server/middleware"
	"github.com/jonathan/careerpilot/internal/server/ratelimit"
)

// UserStore is the persistence surface used for accounts and profiles.
type UserStore interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	UpdateUserProfile(ctx context.Context, userID uuid.UUID, upd db.UserProfileUpdate) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// InterviewStore is the persistence surface for completed interview
// sessions and the activity feed.
type InterviewStore interface {
	AppendSession(ctx context.Context, session db.InterviewSession) (uuid.UUID, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*db.InterviewSession, error)
	ListSessionsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]db.InterviewSession, error)
	AppendActivity(ctx context.Context, event db.ActivityEvent) error
	ListActivityByUser(ctx context.Context, userID uuid.UUID, limit int) ([]db.ActivityEvent, error)
}

// CareerStore is the persistence surface for resumes, job listings and
// generated insights.
type CareerStore interface {
	CreateResume(ctx context.Context, resume db.Resume) (uuid.UUID, error)
	GetResume(ctx context.Context, resumeID uuid.UUID) (*db.Resume, error)
	ListResumesByUser(ctx context.Context, userID uuid.UUID) ([]db.Resume, error)
	DeleteResume(ctx context.Context, userID, resumeID uuid.UUID) error
	ListJobListings(ctx context.Context, opts db.ListJobListingsOptions) ([]db.JobListing, error)
	SaveJob(ctx context.Context, userID, jobID uuid.UUID) error
	UnsaveJob(ctx context.Context, userID, jobID uuid.UUID) error
	ListSavedJobs(ctx context.Context, userID uuid.UUID) ([]db.JobListing, error)
	CreateInsight(ctx context.Context, insight db.CareerInsight) (uuid.UUID, error)
	ListInsightsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]db.CareerInsight, error)
}

// Store combines all persistence surfaces. *db.DB satisfies it.
type Store interface {
	UserStore
	InterviewStore
	CareerStore
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       Store
	database    *db.DB
	generator   llm.TextGenerator
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
}

// Config holds server configuration
type Config struct {
	Port         int
	DatabaseURL  string
	GeminiAPIKey string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Seed the curated job listings on first boot. A non-empty table is
	// left alone.
	if err := database.SeedJobListings(context.Background(), db.CuratedJobListings(time.Now())); err != nil {
		log.Printf("[server] failed to seed job listings: %v", err)
	}

	var generator llm.TextGenerator
	if cfg.GeminiAPIKey != "" {
		generator, err = llm.NewGeminiGenerator(context.Background(), llm.DefaultConfig(), cfg.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create text generator: %w", err)
		}
	}

	s, err := newServer(database, generator)
	if err != nil {
		return nil, err
	}
	s.database = database

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Long timeout for generation routes
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// newServer wires services and handlers around a store. Used directly
// by tests with a mock store.
func newServer(store Store, generator llm.TextGenerator) (*Server, error) {
	s := &Server{
		store:     store,
		generator: generator,
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(store, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)

	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	return s, nil
}

// Handler builds the full route table with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	auth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())

	mux.HandleFunc("GET /health", s.handleHealth)

	// Auth endpoints
	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.Handle("PUT /auth/password", auth(http.HandlerFunc(s.handleUpdatePassword)))

	// Profile endpoints
	mux.Handle("GET /users/me", auth(http.HandlerFunc(s.handleGetMe)))
	mux.Handle("PUT /users/me", auth(http.HandlerFunc(s.handleUpdateMe)))

	// Interview endpoints
	mux.HandleFunc("GET /interviews/questions", s.handleInterviewQuestions)
	mux.Handle("POST /interviews", auth(http.HandlerFunc(s.handleSubmitInterview)))
	mux.Handle("GET /interviews", auth(http.HandlerFunc(s.handleListInterviews)))
	mux.Handle("GET /interviews/{id}", auth(http.HandlerFunc(s.handleGetInterview)))

	// Activity feed
	mux.Handle("GET /activity", auth(http.HandlerFunc(s.handleListActivity)))

	// Job listings
	mux.HandleFunc("GET /jobs", s.handleListJobs)
	mux.Handle("GET /jobs/saved", auth(http.HandlerFunc(s.handleListSavedJobs)))
	mux.Handle("POST /jobs/{id}/save", auth(http.HandlerFunc(s.handleSaveJob)))
	mux.Handle("DELETE /jobs/{id}/save", auth(http.HandlerFunc(s.handleUnsaveJob)))

	// Resume endpoints
	mux.Handle("GET /resumes", auth(http.HandlerFunc(s.handleListResumes)))
	mux.Handle("POST /resumes", auth(http.HandlerFunc(s.handleCreateResume)))
	mux.Handle("GET /resumes/{id}", auth(http.HandlerFunc(s.handleGetResume)))
	mux.Handle("DELETE /resumes/{id}", auth(http.HandlerFunc(s.handleDeleteResume)))

	// Insights
	mux.Handle("GET /insights", auth(http.HandlerFunc(s.handleListInsights)))

	// Generation endpoints
	mux.Handle("POST /generate/resume", auth(http.HandlerFunc(s.handleGenerateResume)))
	mux.Handle("POST /generate/career-insights", auth(http.HandlerFunc(s.handleGenerateInsights)))
	mux.Handle("POST /generate/interview-questions", auth(http.HandlerFunc(s.handleGenerateQuestions)))

	return s.withRateLimit(s.withLogging(s.withCORS(mux)))
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	if s.generator != nil {
		if err := s.generator.Close(); err != nil {
			log.Printf("Error closing text generator: %v", err)
		}
	}

	if s.database != nil {
		s.database.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// handleRegister handles user registration requests.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	s.authHandler.Register(w, r)
}

// handleLogin handles user login requests.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	s.authHandler.Login(w, r)
}

// handleUpdatePassword handles password update requests for the
// authenticated user.
func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	s.authHandler.UpdatePasswordWithUserID(w, r, userID)
}

// extractClientID extracts the client identifier from the request.
// For MVP, this uses the IP address from RemoteAddr.
// In the future, this could use X-Forwarded-For header (only from trusted proxies).
func (s *Server) extractClientID(r *http.Request) string {
	// Get IP from RemoteAddr (format: "IP:port")
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// If parsing fails, use the whole RemoteAddr
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
