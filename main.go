package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lly61/TaskFlow/config"
	"github.com/lly61/TaskFlow/middleware"
	"github.com/lly61/TaskFlow/routes"
	"github.com/lly61/TaskFlow/utils"
)

func main() {
	logger := config.NewLogger()
	defer logger.Sync()

	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := config.InitDB(conf)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	redisClient, err := config.InitRedis(conf)
	if err != nil {
		log.Fatalf("failed to initialize redis: %v", err)
	}
	if redisClient == nil {
		logger.Infow("redis not configured, login rate limiting disabled")
	}

	issuer := utils.NewTokenIssuer(conf.JWTSecret)
	limiter := utils.NewLoginLimiter(redisClient)

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	middleware.SetupMiddleware(r)
	r.Use(middleware.RequestLogger(logger))

	routes.RegisterRoutes(r, db, logger, issuer, limiter)

	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	go func() {
		logger.Infow("server starting", "port", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	logger.Infow("server stopped")
}
