package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/cpalomino/wedding-api/internal/auth"
	"github.com/cpalomino/wedding-api/internal/config"
	"github.com/cpalomino/wedding-api/internal/database"
	"github.com/cpalomino/wedding-api/internal/handlers"
	"github.com/cpalomino/wedding-api/internal/logger"
	"github.com/cpalomino/wedding-api/internal/notifier"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	log, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Connect to Database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	weddingDate, err := time.Parse(time.RFC3339, cfg.WeddingDate)
	if err != nil {
		log.Fatal("Invalid WEDDING_DATE, expected RFC3339", zap.Error(err))
	}

	// Initialize Handlers
	var rsvpNotifier notifier.Notifier
	if discordNotifier, err := notifier.NewDiscordNotifier(cfg.DiscordBotToken, cfg.DiscordNotificationsChannelID); err != nil {
		log.Warn("Discord notifier not initialized", zap.Error(err))
	} else {
		rsvpNotifier = discordNotifier
	}

	authHandler := auth.NewAuthHandler(cfg)
	guestHandler := handlers.NewGuestHandler(db, log, authHandler, cfg.BaseURL)
	rsvpHandler := handlers.NewRSVPHandler(db, log, rsvpNotifier)
	invitationHandler := handlers.NewInvitationHandler(db, log, weddingDate)
	statsHandler := handlers.NewStatsHandler(db, log, authHandler)
	exportHandler := handlers.NewExportHandler(db, log, authHandler)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, authHandler, guestHandler, rsvpHandler, invitationHandler, statsHandler, exportHandler)

	// Start Server
	log.Info("Starting server", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
