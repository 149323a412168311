package main

import (
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/modelsec/security-admin/internal/config"
	"github.com/modelsec/security-admin/internal/database"
	"github.com/modelsec/security-admin/internal/queue"
	"github.com/modelsec/security-admin/internal/registry"
	"github.com/modelsec/security-admin/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		logrus.WithError(err).Fatal("migration failed")
	}

	events := queue.NewPublisher(cfg.AMQPURL, logrus.WithField("component", "audit"))
	if events == nil {
		logrus.Info("audit publishing disabled (RABBITMQ_URL unset)")
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		logrus.Warn("redis unavailable, login rate limiting disabled")
	}

	container := registry.Build(db, cfg, events)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, container, rdb)

	addr := ":" + cfg.Port
	logrus.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env}).Info("listening")
	if err := e.Start(addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
