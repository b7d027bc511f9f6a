package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finpro-ledger/api"
	"github.com/carson-networks/finpro-ledger/internal/config"
	"github.com/carson-networks/finpro-ledger/internal/locale"
	"github.com/carson-networks/finpro-ledger/internal/logging"
	"github.com/carson-networks/finpro-ledger/internal/operator"
	"github.com/carson-networks/finpro-ledger/internal/service"
	"github.com/carson-networks/finpro-ledger/internal/storage"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		logrus.WithError(err).Fatal("config.LoadDotEnv")
		return
	}

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logrus.SetFormatter(logger.Formatter)
	logrus.SetLevel(logger.Level)
	logger.WithFields(logrus.Fields{
		"backend":  envConfig.Backend,
		"authMode": envConfig.AuthMode,
	}).Info("finpro-ledger starting")

	store, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer func() { _ = store.Close() }()

	svc, err := service.NewService(store, service.LedgerOptions{
		FormatDate: locale.DateFormatter(envConfig.Locale),
		Logger:     logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("service.NewService")
		return
	}

	// One worker: mutations on a ledger never overlap.
	op := operator.NewOperatorDelegator(svc.Sessions, 1)
	op.Start()
	defer op.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpRest := api.Rest{
		Logger:   logger,
		Env:      envConfig,
		Storage:  store,
		Service:  svc,
		Operator: op,
	}
	if err := httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("HttpServer.Serve")
	}
}
