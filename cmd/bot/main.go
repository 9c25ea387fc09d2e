package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	_ "time/tzdata"

	"github.com/assistbot/slack-assistant-bot/internal/config"
	"github.com/assistbot/slack-assistant-bot/internal/database"
	"github.com/assistbot/slack-assistant-bot/internal/domain/service"
	"github.com/assistbot/slack-assistant-bot/internal/handlers"
	"github.com/assistbot/slack-assistant-bot/internal/storage"
	"github.com/assistbot/slack-assistant-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()
	if cfg.SlackBotToken == "" {
		log.Fatal("SLACK_BOT_TOKEN is required")
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	reminders := storage.NewReminderStore(filepath.Join(cfg.DataDir, "reminders.json"))
	timezones := storage.NewTimezoneStore(filepath.Join(cfg.DataDir, "user_timezones.json"))
	auth := storage.NewAuthStore(filepath.Join(cfg.DataDir, "authorized_users.json"))

	slackClient := slack.New(cfg.SlackBotToken)

	dataManager := database.NewInstance(db)
	services := service.NewInstance(dataManager, slackClient, reminders, timezones, auth)

	// Verify the token before the delivery sweep starts firing.
	identity, err := slackClient.AuthTest()
	if err != nil {
		log.Fatalf("Slack authentication failed: %v", err)
	}
	log.Printf("Connected to Slack as %s", identity.User)

	if err := services.Scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer services.Scheduler.Stop()

	handler := handlers.New(services.Reminder, services.Ledger, services.Paycheck, cfg.SlackSigningSecret)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
