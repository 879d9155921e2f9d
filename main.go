// Entry point of the Resume Screening Agent API. It loads configuration,
// opens the flat-file credential store, starts the session registry and its
// reaper, wires the services and handlers, sets up the HTTP router with
// middleware, and runs the server with graceful shutdown.
//
// @title Resume Screening Agent API
// @version 1.0
// @description API for parsing, scoring, and giving feedback on resumes.
// @contact.name API Support
// @contact.email support@resumescorer.com
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/Varshinigowda8/Resume-Screening-Agent/apperror"
	"github.com/Varshinigowda8/Resume-Screening-Agent/auth"
	"github.com/Varshinigowda8/Resume-Screening-Agent/config"
	"github.com/Varshinigowda8/Resume-Screening-Agent/pages"
	"github.com/Varshinigowda8/Resume-Screening-Agent/resume"
	"github.com/Varshinigowda8/Resume-Screening-Agent/session"
	"github.com/Varshinigowda8/Resume-Screening-Agent/users"
)

func main() {
	// .env is a development convenience; production sets variables directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Open the credential store and make sure the CSV file exists with its
	// header row so the first registration does not race file creation.
	store := users.NewStore(cfg.Store.UsersFile)
	if _, err := store.Load(); err != nil {
		log.Fatalf("Failed to initialize user store at %s: %v", cfg.Store.UsersFile, err)
	}

	// The session registry backs both navigation state and token liveness.
	// The reaper sweeps idle sessions until the stop channel is closed.
	registry := session.NewRegistry(cfg.Session.IdleTimeout)
	reaperStop := make(chan struct{})
	reaperWG := registry.StartReaper(cfg.Session.ReapInterval, reaperStop)
	log.Println("Session reaper started.")

	authService := auth.NewService(store, registry, *cfg.Auth)
	authHandlers := auth.NewHandlers(authService)

	sessionHandlers := session.NewHandlers(registry)
	pageHandlers := pages.NewHandlers(registry)

	resumeService := resume.NewService(*cfg.Scoring)
	resumeHandlers := resume.NewHandlers(resumeService, cfg.Server.MaxUploadBytes)

	r := chi.NewRouter()

	// Chi requires all middleware to be registered before any routes.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Second line of panic defense that formats the failure through apperror
	// instead of Recoverer's plain 500.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Printf("Panic: %+v", rvr)
					apperror.WriteError(ww, req, apperror.NewInternalError("internal server error", nil))
				}
			}()
			next.ServeHTTP(ww, req)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		apperror.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandlers.HandleRegister())
		r.Post("/login", authHandlers.HandleLogin())

		// Logout needs the session from the token, so it sits behind the
		// auth middleware unlike its siblings.
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(authService, registry))
			r.Post("/logout", authHandlers.HandleLogout())
		})
	})

	r.Route("/session", func(r chi.Router) {
		r.Use(auth.Middleware(authService, registry))
		r.Get("/", sessionHandlers.HandleGetState())
		r.Post("/navigate", sessionHandlers.HandleNavigate())
	})

	r.Route("/pages", func(r chi.Router) {
		r.Use(auth.Middleware(authService, registry))
		r.Get("/home", pageHandlers.HandleHome())
		r.Get("/contact", pageHandlers.HandleContact())
	})

	r.Route("/resume", func(r chi.Router) {
		r.Use(auth.Middleware(authService, registry))
		r.Post("/score", resumeHandlers.HandleScore())
		r.Post("/email", resumeHandlers.HandleSendMockEmail())
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Println("Signaling session reaper to stop...")
	close(reaperStop)
	reaperWG.Wait()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}
