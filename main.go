package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/api"
	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

func main() {
	// Missing .env is fine, the environment may already be set.
	_ = godotenv.Load()

	logger := logging.SetupLogging()
	logrus.Info("finance-tracker starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}

	if err := dbStorage.VerifyConnectivity(context.Background()); err != nil {
		logrus.WithError(err).Fatal("storage.VerifyConnectivity")
		return
	}

	if err := dbStorage.EnsureSchema(); err != nil {
		logrus.WithError(err).Fatal("storage.EnsureSchema")
		return
	}

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()

	svc := service.NewService(dbStorage)

	httpRest := api.Rest{
		Logger:   logger,
		Port:     envConfig.HTTPPort,
		Storage:  dbStorage,
		Operator: delegator,
		Service:  svc,
	}
	go httpRest.Serve()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logrus.Info("finance-tracker stopping")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpRest.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("HttpServer.Shutdown")
	}

	delegator.Stop()

	if err := dbStorage.Close(); err != nil {
		logrus.WithError(err).Error("storage.Close")
	}
	logrus.Info("finance-tracker stopped")
}
