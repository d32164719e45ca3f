package main

import (
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/gaming-lounge-backend/internal/config"
	"github.com/iliyamo/gaming-lounge-backend/internal/database"
	"github.com/iliyamo/gaming-lounge-backend/internal/handler"
	"github.com/iliyamo/gaming-lounge-backend/internal/pricing"
	"github.com/iliyamo/gaming-lounge-backend/internal/queue"
	"github.com/iliyamo/gaming-lounge-backend/internal/repository"
	"github.com/iliyamo/gaming-lounge-backend/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	if err := database.Migrate(db, "migrations"); err != nil {
		logrus.WithError(err).Fatal("database migration failed")
	}

	rdb := config.NewRedisClient() // nil when Redis is absent; cache and limiter no-op

	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	serviceTypeRepo := repository.NewServiceTypeRepo(db)
	gameTypeRepo := repository.NewGameTypeRepo(db)
	stationRepo := repository.NewStationRepo(db)
	durationRepo := repository.NewDurationRepo(db)
	servicePriceRepo := repository.NewServicePriceRepo(db)
	snackRepo := repository.NewSnackRepo(db)
	sessionRepo := repository.NewSessionRepo(db)
	sessionSnackRepo := repository.NewSessionSnackRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)

	resolver := pricing.NewResolver(serviceTypeRepo, servicePriceRepo)

	events := cfg.AMQPURL != ""
	if events {
		go func() {
			if err := queue.StartSessionConsumer(); err != nil {
				logrus.WithError(err).Error("session consumer stopped")
			}
		}()
	}

	handlers := router.Handlers{
		Auth:          handler.NewAuthHandler(cfg, userRepo, roleRepo, tokenRepo),
		Profiles:      handler.NewUserProfileHandler(userRepo),
		ServiceTypes:  handler.NewServiceTypeHandler(serviceTypeRepo),
		GameTypes:     handler.NewGameTypeHandler(gameTypeRepo, serviceTypeRepo),
		Stations:      handler.NewStationHandler(stationRepo, gameTypeRepo),
		Durations:     handler.NewDurationHandler(durationRepo),
		Snacks:        handler.NewSnackHandler(snackRepo),
		ServicePrices: handler.NewServicePriceHandler(servicePriceRepo, serviceTypeRepo, gameTypeRepo, durationRepo),
		Sessions:      handler.NewSessionHandler(sessionRepo, stationRepo, durationRepo, snackRepo, userRepo, resolver, events),
		SessionSnacks: handler.NewSessionSnackHandler(sessionRepo, snackRepo, sessionSnackRepo),
		Payments:      handler.NewPaymentHandler(paymentRepo, sessionRepo),
	}

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handlers.Auth, cfg.JWTSecret)
	router.RegisterAPI(e, handlers, cfg.JWTSecret, rdb)

	addr := ":" + cfg.Port
	logrus.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env}).Info("listening")

	if err := e.Start(addr); err != nil {
		logrus.Fatal(err)
	}
}
