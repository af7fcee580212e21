package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hearingheroes/internal/config"
	"hearingheroes/internal/database"
	"hearingheroes/internal/handlers"
	"hearingheroes/internal/repository"
	"hearingheroes/internal/security"
	"hearingheroes/internal/service"
	"hearingheroes/internal/wordpairs"
)

// defaultProfileID identifies the single child profile the app tracks.
// Multi-profile support would thread this through the routes instead.
const defaultProfileID = "default"

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Initialize repositories
	resultRepo := repository.NewResultRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	preferencesRepo := repository.NewPreferencesRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)

	// Initialize services
	metricsService := service.NewMetricsService(resultRepo, sessionRepo)
	preferencesService := service.NewPreferencesService(preferencesRepo, maintenanceRepo)
	exportService := service.NewExportService(metricsService)
	backupService := service.NewBackupService(resultRepo, sessionRepo, preferencesRepo)
	reportService, err := service.NewReportService(metricsService, cfg.AWSRegion, cfg.ReportFromEmail, cfg.ReportFromName, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize report service: %v", err)
	}

	wordPairProvider := wordpairs.NewProvider(cfg.WordPairsPath)
	if _, err := wordPairProvider.Load(false); err != nil {
		log.Fatalf("Failed to load word pairs: %v", err)
	}

	tokens := security.NewTokenIssuer(cfg.TokenSecret, cfg.TokenDuration)

	// Initialize handlers
	middleware := handlers.NewMiddleware(preferencesService, tokens, defaultProfileID)
	practiceHandler := handlers.NewPracticeHandler(metricsService)
	dashboardHandler := handlers.NewDashboardHandler(metricsService, exportService, reportService, preferencesService, defaultProfileID)
	preferencesHandler := handlers.NewPreferencesHandler(preferencesService, defaultProfileID)
	authHandler := handlers.NewAuthHandler(preferencesService, tokens, defaultProfileID)
	wordPairsHandler := handlers.NewWordPairsHandler(wordPairProvider)
	backupHandler := handlers.NewBackupHandler(backupService)

	// Setup routes
	mux := http.NewServeMux()

	// Game assets
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(cfg.AssetsPath))))

	// Word pair content
	mux.HandleFunc("GET /api/word-pairs", wordPairsHandler.List)
	mux.HandleFunc("GET /api/word-pairs/{id}", wordPairsHandler.Get)

	// Session lifecycle and practice recording
	mux.HandleFunc("POST /api/sessions", practiceHandler.StartSession)
	mux.HandleFunc("POST /api/sessions/end", practiceHandler.EndSession)
	mux.HandleFunc("GET /api/sessions/current", practiceHandler.CurrentSession)
	mux.HandleFunc("POST /api/practices", practiceHandler.RecordPractice)

	// Preferences
	mux.HandleFunc("GET /api/preferences", preferencesHandler.Get)
	mux.HandleFunc("PUT /api/preferences", preferencesHandler.Update)

	// Parent auth
	mux.HandleFunc("POST /api/parent/login", authHandler.Login)
	mux.HandleFunc("POST /api/parent/logout", authHandler.Logout)
	mux.HandleFunc("POST /api/parent/pin", middleware.RequireParent(authHandler.SetPIN))

	// Protected parent dashboard routes
	mux.HandleFunc("GET /api/parent/statistics", middleware.RequireParent(dashboardHandler.OverallStatistics))
	mux.HandleFunc("GET /api/parent/statistics/contrast/{contrastType}", middleware.RequireParent(dashboardHandler.ContrastAccuracy))
	mux.HandleFunc("GET /api/parent/sessions", middleware.RequireParent(dashboardHandler.RecentSessions))
	mux.HandleFunc("GET /api/parent/sessions/{id}", middleware.RequireParent(dashboardHandler.Session))
	mux.HandleFunc("GET /api/parent/results", middleware.RequireParent(dashboardHandler.Results))
	mux.HandleFunc("GET /api/parent/export/sessions/{id}", middleware.RequireParent(dashboardHandler.ExportSession))
	mux.HandleFunc("GET /api/parent/export/progress", middleware.RequireParent(dashboardHandler.ExportProgress))
	mux.HandleFunc("POST /api/parent/report/email", middleware.RequireParent(dashboardHandler.EmailReport))
	mux.HandleFunc("POST /api/parent/preferences/reset", middleware.RequireParent(preferencesHandler.Reset))
	mux.HandleFunc("POST /api/parent/data/clear-practice", middleware.RequireParent(preferencesHandler.ClearPracticeData))
	mux.HandleFunc("POST /api/parent/data/reset", middleware.RequireParent(preferencesHandler.ResetAllData))
	mux.HandleFunc("GET /api/parent/backup", middleware.RequireParent(backupHandler.Download))
	mux.HandleFunc("POST /api/parent/backup", middleware.RequireParent(backupHandler.Upload))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
}
