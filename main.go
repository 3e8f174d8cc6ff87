package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/example/adytum/internal/content"
	"github.com/example/adytum/internal/database"
	"github.com/example/adytum/internal/mentor"
	"github.com/example/adytum/internal/progress"
	"github.com/example/adytum/internal/scheduler"
	"github.com/example/adytum/internal/server"
	"github.com/example/adytum/internal/telegram"
)

func main() {
	importFile := flag.String("import-stations", "", "import course stations from an Excel or CSV file and exit")
	importSheet := flag.String("import-sheet", "Sheet1", "sheet name for Excel station imports")
	flag.Parse()

	// Cargamos las variables de entorno si hay un .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if *importFile != "" {
		runImport(*importFile, *importSheet)
		return
	}

	// Imported stations extend or override the built-in catalog
	stations, err := database.NewStationRepository().GetAll()
	if err != nil {
		log.Fatalf("Failed to load imported stations: %v", err)
	}
	catalog := content.NewCatalogWith(stations)
	log.Printf("Catalog ready with %d stations", catalog.Len())

	store := progress.NewStore(database.NewStorageRepository())

	config := server.FromEnv()

	// The mentor is optional: without a key the rest of the course works and
	// the mentor endpoints explain what is missing
	var mentorSvc mentor.Service
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		client, err := mentor.NewClient(context.Background(), apiKey, config.GeminiModel)
		if err != nil {
			log.Fatalf("Failed to create mentor client: %v", err)
		}
		mentorSvc = client
	} else {
		log.Println("GEMINI_API_KEY is not set, the mentor will be unavailable")
	}

	srv := server.New(store, catalog, mentorSvc, config)

	// Recordatorios diarios por Telegram, si están configurados
	var reminders *scheduler.Scheduler
	if os.Getenv("ENABLE_SCHEDULER") == "true" {
		notifier, err := telegram.New(os.Getenv("TELEGRAM_BOT_TOKEN"), reminderChatID())
		if err != nil {
			log.Printf("Reminders disabled: %v", err)
		} else {
			reminders = scheduler.New(notifier, store, catalog)
			reminders.Start()
			log.Println("Practice reminder scheduler started")
		}
	}

	httpServer := srv.HTTPServer()
	go func() {
		log.Printf("Adytum listening on port %s", config.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	log.Printf("Received signal: %v", sig)

	if reminders != nil {
		reminders.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped")
}

// runImport loads stations from a spreadsheet and reports the outcome
func runImport(path, sheet string) {
	config := content.DefaultImportConfig()
	config.FilePath = path
	config.SheetName = sheet

	result, err := content.ImportStations(config)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Printf("Processed %d rows: %d created, %d updated", result.TotalProcessed, result.Created, result.Updated)
	for _, e := range result.Errors {
		log.Printf("  %s", e)
	}
	if len(result.Errors) > 0 {
		os.Exit(1)
	}
}

func reminderChatID() int64 {
	id, err := strconv.ParseInt(os.Getenv("REMINDER_CHAT_ID"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
