package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/AldebertBarber/aldebert-api/internal/config"
	dbpkg "github.com/AldebertBarber/aldebert-api/internal/db"
	"github.com/AldebertBarber/aldebert-api/internal/middleware"
	"github.com/AldebertBarber/aldebert-api/internal/routes"
)

func main() {

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	log := logger.Sugar()

	// .env opcional; em produção as variáveis vêm do ambiente.
	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg, log)
	dbpkg.SeedAdmin(db, cfg, log)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log)

	log.Infow("server running", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalw("failed to start server", "error", err)
	}
}
