package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/etiket-service/internal/api"
	"github.com/hypernova-labs/etiket-service/internal/cache"
	"github.com/hypernova-labs/etiket-service/internal/config"
	"github.com/hypernova-labs/etiket-service/internal/services"
	"github.com/sirupsen/logrus"
)

func main() {
	// Cargar configuración
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Configurar logging
	logger := setupLogger(cfg)
	logger.Info("Starting etiket-service...")

	// Configurar modo de Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// El directorio de subidas debe existir antes de la primera petición
	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		logger.Fatalf("Error creating upload directory: %v", err)
	}

	// Conectar a Redis; solo respalda el rate limiter, el servicio corre sin él
	redis, err := cache.Connect(cfg)
	if err != nil {
		logger.Warnf("Error connecting to Redis: %v", err)
		redis = nil
	} else {
		defer redis.Close()
	}

	// Inicializar servicios
	uploadService := services.NewUploadService(cfg, logger)
	labelService := services.NewLabelService(logger)
	documentService := services.NewDocumentService(logger)

	// Inicializar API
	apiHandler := api.NewAPI(
		labelService,
		documentService,
		uploadService,
		redis,
		cfg,
		logger,
	)

	// Configurar router
	router := setupRouter(apiHandler, cfg)

	// Crear servidor HTTP
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Canal para señales de terminación
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Iniciar servidor en goroutine
	go func() {
		logger.Infof("Server starting on %s:%s", cfg.Server.Host, cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	// Esperar señal de terminación
	<-quit
	logger.Info("Shutting down server...")

	// Contexto con timeout para shutdown graceful
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown graceful del servidor
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}

// setupLogger configura el logger según la configuración
func setupLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	// Configurar nivel de log
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Configurar formato
	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

// setupRouter configura el router principal
func setupRouter(apiHandler *api.API, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Middleware global
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Páginas HTML
	router.LoadHTMLGlob(filepath.Join(cfg.Server.TemplatesDir, "*.html"))

	// Health check
	router.GET("/health", apiHandler.Health)

	// Páginas del generador
	router.GET("/", apiHandler.Index)
	router.GET("/barcode-generator", apiHandler.BarcodeGeneratorPage)
	router.GET("/document-generator", apiHandler.DocumentGeneratorPage)

	// Endpoints de generación, con tope de cuerpo y rate limiting
	generate := router.Group("")
	generate.Use(apiHandler.BodySizeLimit())
	generate.Use(apiHandler.RateLimit())
	{
		generate.POST("/generate_barcode", apiHandler.GenerateBarcode)
		generate.POST("/generate_document", apiHandler.GenerateDocument)
	}

	return router
}
