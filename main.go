package main

import (
	"errors"
	"log"
	"net/http"

	"tracker/src/api"
	"tracker/src/config"
	"tracker/src/utils"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// .env is optional, environment variables win either way
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./settings")
	if err != nil {
		log.Println(err, "Error while loading config")
		return
	}

	logger := utils.NewLogger(logrus.InfoLevel)

	errC, err := run(cfg, logger)
	if err != nil {
		logger.WithError(err).Error("Couldn't run")
		return
	}

	if err := <-errC; err != nil {
		logger.WithError(err).Error("Error while running")
	}
}

func run(cfg *config.Config, logger *logrus.Logger) (<-chan error, error) {
	errC := make(chan error, 1)

	server, err := api.NewServer(cfg, logger)
	if err != nil {
		return nil, err
	}
	httpServer := api.NewHTTPServer(server)

	go func() {
		logger.WithField("port", cfg.Service.Port).Info("Starting server")

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()
	return errC, nil
}
