package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"alfredoptarigan/interview-warmup/internal/config"
	"alfredoptarigan/interview-warmup/internal/handlers"
	"alfredoptarigan/interview-warmup/internal/services"
)

// multipart framing on top of the largest accepted file
const bodyLimitOverhead = 1 << 20

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	// Initialize services
	extractor := services.NewTextExtractor(
		services.NewPDFParserService(),
		services.NewDocxParserService(),
	)

	geminiService, err := services.NewGeminiService(context.Background(), cfg.Gemini)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Printf("✅ Gemini AI initialized successfully (model %s)", cfg.Gemini.Model)

	interviewService := services.NewInterviewService(extractor, geminiService)
	log.Println("✅ Services initialized successfully")

	// Initialize Handlers
	resumeHandler := handlers.NewResumeHandler(interviewService, cfg.Storage.MaxFileSize)
	answerHandler := handlers.NewAnswerHandler(interviewService)
	atsHandler := handlers.NewATSHandler(interviewService, cfg.Storage.MaxFileSize)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Interview Warmup API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + bodyLimitOverhead,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSAllowOrigins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
	}))

	handlers.RegisterRoutes(app, resumeHandler, answerHandler, atsHandler)

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
	log.Printf("🚀 Server starting on %s (%s)\n", addr, cfg.Server.Env)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
