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

	"skillflow-backend/internal/config"
	"skillflow-backend/internal/database"
	"skillflow-backend/internal/handlers"
	"skillflow-backend/internal/models"
	"skillflow-backend/internal/router"
	"skillflow-backend/internal/services"
	"skillflow-backend/internal/state"
	"skillflow-backend/internal/store"
	"skillflow-backend/internal/websocket"
)

func main() {
	log.Println("🚀 Starting SkillFlow Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Document Store ────
	var docStore store.DocumentStore
	switch cfg.StorageType {
	case "redis":
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer redisClient.Close()
		docStore = store.NewRedisStore(redisClient)
		log.Println("✓ Redis connected")
	default:
		fileStore, err := store.NewFileStore(cfg.StoragePath)
		if err != nil {
			log.Fatalf("✗ File store initialization failed: %v", err)
		}
		docStore = fileStore
		log.Printf("✓ File store ready at %s", cfg.StoragePath)
	}

	// ──── Step 3: Load Application State ────
	appState := state.Load(context.Background(), docStore)
	log.Println("✓ Application state loaded")

	// ──── Step 4: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiConcurrentReqs)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	log.Println("✓ Gemini Flash client initialized")

	// ──── Initialize Services ────
	sessionService := services.NewSessionService(appState)
	meetingService := services.NewMeetingService(appState, cfg.MeetingBaseURL)
	matchService := services.NewMatchService(appState, geminiService)
	profileService := services.NewProfileService(appState)
	callSimulator := services.NewCallSimulator()

	// ──── Step 5: Start WebSocket Hub ────
	wsHub := websocket.NewHub()
	log.Println("✓ WebSocket hub started")

	// ──── Step 6: Start Reminder Scheduler ────
	reminderScheduler := services.NewReminderScheduler(appState, wsHub, cfg.ReminderScanInterval, cfg.ReminderLookahead)
	reminderScheduler.Start()

	// ──── Initialize Handlers ────
	sessionHandler := handlers.NewSessionHandler(appState, sessionService)
	meetingHandler := handlers.NewMeetingHandler(appState, meetingService)
	matchmakerHandler := handlers.NewMatchmakerHandler(appState, matchService, geminiService)
	notificationHandler := handlers.NewNotificationHandler(appState)
	profileHandler := handlers.NewProfileHandler(appState, profileService)
	callHandler := handlers.NewCallHandler(callSimulator)
	dashboardHandler := handlers.NewDashboardHandler(appState, models.SeedBursts())

	// ──── Step 7: Start HTTP Server ────
	r := router.New(
		sessionHandler,
		meetingHandler,
		matchmakerHandler,
		notificationHandler,
		profileHandler,
		callHandler,
		dashboardHandler,
		wsHub,
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		reminderScheduler.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ SkillFlow Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)
	log.Printf("  WS:  ws://localhost:%s/api/v1/ws", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
