// Standalone migration runner for environments where the schema is managed
// out of band. The server applies the same embedded migrations on start, so
// this is only needed for pre-deploy migration steps.
package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

func main() {
	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	store, err := storage.NewStorage(env)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer store.Close()

	if err := store.VerifyConnectivity(context.Background()); err != nil {
		logrus.WithError(err).Fatal("storage.VerifyConnectivity")
		return
	}

	if err := store.EnsureSchema(); err != nil {
		logrus.WithError(err).Fatal("storage.EnsureSchema")
		return
	}
}
