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

	"portfolio-backend/internal/chat"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/profile"
	"portfolio-backend/internal/router"
	"portfolio-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting portfolio backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Load Static Profile Data ────
	data := profile.Default()
	log.Printf("✓ Profile data loaded (%d projects, %d skill categories)", len(data.Projects), len(data.Skills))

	// ──── Step 3: Initialize Gemini Client ────
	var engine chat.Engine
	if cfg.GeminiAPIKey == "" {
		log.Println("⚠ GEMINI_API_KEY not set; chat requests will be rejected until it is configured")
	} else {
		gemini, err := services.NewGeminiService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("✗ Gemini client initialization failed: %v", err)
		}
		defer gemini.Close()
		engine = gemini
		log.Printf("✓ Gemini client initialized (%s)", cfg.GeminiModel)
	}

	// ──── Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(engine, data, cfg.ChatTimeout)
	profileHandler := handlers.NewProfileHandler(data)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(chatHandler, profileHandler, cfg.FrontendURL)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
		// WriteTimeout must outlast a full streamed answer.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.ChatTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Portfolio backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
