// Package server provides the HTTP REST API for the resume tailor.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/db"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/server/middleware"
	"github.com/jonathan/resume-tailor/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	rateLimiter ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
	structurer  llm.Structurer
	tailor      llm.Tailor
	llmClient   llm.Client
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	APIKey      string // LLM API key; tailoring and structuring are disabled when empty
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Server{
		db:          database,
		rateLimiter: ratelimit.NewMemoryLimiter(ratelimit.DefaultConfig()),
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	if cfg.APIKey != "" {
		client, err := llm.NewClient(context.Background(), llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		s.llmClient = client
		s.structurer = llm.NewStructurer(client)
		s.tailor = llm.NewTailor(client)
	} else {
		log.Println("No API key configured; resume structuring and tailoring are disabled")
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // LLM tailoring can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request router with middleware applied.
func (s *Server) routes() http.Handler {
	auth := middleware.Auth(s.jwtService.AsTokenValidator())

	mux := http.NewServeMux()

	// Public endpoints
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.HandleFunc("GET /health", s.handleHealth)

	// Resume endpoints
	mux.Handle("POST /resumes", auth(http.HandlerFunc(s.handleUploadResume)))
	mux.Handle("GET /resumes", auth(http.HandlerFunc(s.handleListResumes)))
	mux.Handle("GET /resumes/latest", auth(http.HandlerFunc(s.handleGetLatestResume)))
	mux.Handle("GET /resumes/{id}", auth(http.HandlerFunc(s.handleGetResume)))
	mux.Handle("DELETE /resumes/{id}", auth(http.HandlerFunc(s.handleDeleteResume)))

	// Application endpoints
	mux.Handle("POST /applications", auth(http.HandlerFunc(s.handleCreateApplication)))
	mux.Handle("GET /applications", auth(http.HandlerFunc(s.handleListApplications)))
	mux.Handle("GET /applications/{id}", auth(http.HandlerFunc(s.handleGetApplication)))
	mux.Handle("PATCH /applications/{id}", auth(http.HandlerFunc(s.handleUpdateApplicationStatus)))
	mux.Handle("DELETE /applications/{id}", auth(http.HandlerFunc(s.handleDeleteApplication)))
	mux.Handle("GET /applications/{id}/document", auth(http.HandlerFunc(s.handleApplicationDocument)))

	// Stateless scoring, section rewriting, and job ingestion
	mux.Handle("POST /score", auth(http.HandlerFunc(s.handleScore)))
	mux.Handle("POST /rewrite", auth(http.HandlerFunc(s.handleRewrite)))
	mux.Handle("POST /ingest/job", auth(http.HandlerFunc(s.handleIngestJob)))

	return s.withLogging(s.withCORS(mux))
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
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

	if ml, ok := s.rateLimiter.(*ratelimit.MemoryLimiter); ok {
		ml.Stop()
	}
	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

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

// checkRateLimit consumes one unit of the caller's rate budget. On denial
// it writes the 429 response and returns false.
func (s *Server) checkRateLimit(w http.ResponseWriter, key string) bool {
	info := s.rateLimiter.CheckAndConsume(key)

	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		if !info.ResetTime.IsZero() {
			w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
		}
	}

	if info.Allowed {
		return true
	}

	if info.RetryAfter > 0 {
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Reset=%s",
		info.Limit, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, map[string]any{
		"error":    "rate_limit_exceeded",
		"message":  "Rate limit exceeded. Please try again later.",
		"limit":    info.Limit,
		"reset_at": info.ResetTime.Format(time.RFC3339),
	})
	return false
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		s.jsonResponse(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "database": "down"})
		return
	}
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
