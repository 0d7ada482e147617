// Package main is the entry point for Driftboard.
// The server keeps a single in-memory kanban board and exposes it over
// WebSocket and HTTP endpoints.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/driftboard/driftboard/internal/board/api"
	"github.com/driftboard/driftboard/internal/board/models"
	"github.com/driftboard/driftboard/internal/board/service"
	"github.com/driftboard/driftboard/internal/board/store"
	"github.com/driftboard/driftboard/internal/board/wshandlers"
	"github.com/driftboard/driftboard/internal/common/config"
	"github.com/driftboard/driftboard/internal/common/idgen"
	"github.com/driftboard/driftboard/internal/common/logger"
	"github.com/driftboard/driftboard/internal/dnd/session"
	"github.com/driftboard/driftboard/internal/events"
	gateways "github.com/driftboard/driftboard/internal/gateway/websocket"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize logger
	log, err := logger.NewLogger(logger.LoggingConfig{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetDefault(log)

	log.Info("Starting Driftboard...")

	// 3. Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 4. Initialize event bus (in-memory by default, NATS if configured)
	provided, busCleanup, err := events.Provide(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize event bus", zap.Error(err))
	}
	defer busCleanup()
	eventBus := provided.Bus
	if provided.NATS != nil {
		log.Info("Connected to NATS event bus", zap.String("url", cfg.NATS.URL))
	} else {
		log.Info("Using in-memory event bus")
	}

	// 5. Board store seeded from config
	ids := idgen.New()
	boardStore := store.New(seedBoard(cfg.Board, ids), ids)
	log.Info("Board initialized",
		zap.String("title", cfg.Board.Title),
		zap.Int("seed_lists", len(cfg.Board.SeedLists)))

	// 6. Board service and drag session controller
	boardSvc := service.NewService(boardStore, eventBus, log)
	dragSession := session.NewController(boardStore, eventBus, log)

	// 7. WebSocket gateway
	gateway := gateways.NewGateway(log)

	boardHandlers := wshandlers.NewHandlers(boardSvc, dragSession, log)
	boardHandlers.RegisterHandlers(gateway.Dispatcher)
	log.Info("Registered board WebSocket handlers")

	go gateway.Hub.Run(ctx)
	gateways.RegisterBoardNotifications(ctx, eventBus, gateway.Hub, log)

	// 8. HTTP server (WebSocket + HTTP endpoints)
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	gateway.SetupRoutes(router)

	apiV1 := router.Group("/api/v1")
	api.SetupRoutes(apiV1, boardSvc, log)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "driftboard",
		})
	})

	port := cfg.Server.Port
	if port == 0 {
		port = 8080
	}
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	go func() {
		log.Info("Server listening", zap.Int("port", port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("API configured",
		zap.String("websocket", "/ws"),
		zap.String("health", "/health"),
		zap.String("http", "/api/v1"),
	)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down Driftboard...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	}

	log.Info("Driftboard stopped")
}

// seedBoard builds the initial board from configuration.
func seedBoard(cfg config.BoardConfig, ids *idgen.Generator) *models.Board {
	board := &models.Board{
		ID:    ids.Generate("board"),
		Title: cfg.Title,
		Lists: make([]models.List, 0, len(cfg.SeedLists)),
	}
	for _, title := range cfg.SeedLists {
		board.Lists = append(board.Lists, models.List{
			ID:    ids.Generate(idgen.KindList),
			Title: title,
			Cards: []models.Card{},
		})
	}
	return board
}
