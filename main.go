package main

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/naseer2426/forward-bot/internal/api"
	"github.com/naseer2426/forward-bot/internal/config"
	"github.com/naseer2426/forward-bot/internal/forwardbot"
	"github.com/naseer2426/forward-bot/internal/telegram"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("warning: could not load .env: %v", err)
		panic(err)
	}
	cfg := config.Load()

	telegramAPI := telegram.NewTelegramAPI(cfg)
	router := initRouter(cfg)
	api.RegisterRoutes(
		router,
		cfg.WebhookSecret,
		&api.TelegramWebhook{Bot: forwardbot.NewBot(cfg, telegramAPI)},
		&api.Admin{TelegramAPI: telegramAPI},
	)

	if cfg.RegisterOnStartup {
		if !telegramAPI.SetWebhook("startup") {
			log.Printf("failed to set up webhook at startup")
		}
	}

	if err := router.Run(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func initRouter(cfg *config.Config) *gin.Engine {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(requestid.New())
	// Allow CORS for all origins
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:   []string{"Content-Length"},
	}))

	return router
}
