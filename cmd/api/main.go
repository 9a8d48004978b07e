package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"skillbridge/backend/internal/config"
	"skillbridge/backend/internal/handlers"
	"skillbridge/backend/internal/middleware"
	"skillbridge/backend/internal/repositories"
	"skillbridge/backend/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	scanRepo := repositories.NewScanRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize Gemini AI
	aiClient, err := services.NewGeminiClient(cfg.Gemini)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize services
	pdfExtractor := services.NewPDFExtractor(cfg.Upload.MinTextLen)
	authService := services.NewAuthService(userRepo, cfg.JWT)
	statsUpdater := services.NewStatsUpdater(userRepo, scanRepo)
	analyzerService := services.NewAnalyzerService(scanRepo, aiClient, statsUpdater, cfg.Gemini.Timeout)
	dashboardService := services.NewDashboardService(userRepo, scanRepo)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	extractHandler := handlers.NewExtractHandler(pdfExtractor, cfg.Upload.MaxFileSize)
	analyzeHandler := handlers.NewAnalyzeHandler(analyzerService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "SkillBridge AI API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
		BodyLimit:    int(cfg.Upload.MaxFileSize) + 1024*1024,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "SkillBridge AI",
			"time":    time.Now(),
		})
	})

	// Auth endpoints
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.HandleRegister)
	auth.Post("/login", authHandler.HandleLogin)

	// Protected endpoints
	protected := api.Group("", middleware.RequireAuth(cfg.JWT.Secret))
	protected.Get("/auth/me", authHandler.HandleMe)
	protected.Post("/extract-pdf", extractHandler.HandleExtractPDF)
	protected.Post("/analyze", analyzeHandler.HandleAnalyze)
	protected.Get("/dashboard", dashboardHandler.HandleDashboard)
	protected.Get("/scans/:id", dashboardHandler.HandleGetScan)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
