package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finpro-ledger/internal/auth"
	"github.com/carson-networks/finpro-ledger/internal/config"
	"github.com/carson-networks/finpro-ledger/internal/handlers/v1/export"
	"github.com/carson-networks/finpro-ledger/internal/handlers/v1/profile"
	"github.com/carson-networks/finpro-ledger/internal/handlers/v1/status"
	"github.com/carson-networks/finpro-ledger/internal/handlers/v1/summary"
	"github.com/carson-networks/finpro-ledger/internal/handlers/v1/transaction"
	"github.com/carson-networks/finpro-ledger/internal/logging"
	"github.com/carson-networks/finpro-ledger/internal/operator"
	"github.com/carson-networks/finpro-ledger/internal/service"
	"github.com/carson-networks/finpro-ledger/internal/storage"
)

type Rest struct {
	Logger   *logrus.Logger
	Env      *config.Config
	Storage  *storage.Storage
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

// Handler builds the routing tree: /status as a plain handler and everything under /v1
// through huma.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(string(r.Storage.Backend), nil)
	if r.Storage.DB != nil {
		statusHandler.DB = r.Storage.DB
	}
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("finpro-ledger", "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger))
	if r.Env.AuthMode == config.AuthJWT {
		api.UseMiddleware(auth.Middleware(api, auth.NewVerifier(r.Env.JWTSecret)))
	}

	transaction.NewCreateTransactionHandler(r.Operator).Register(api)
	transaction.NewUpdateTransactionHandler(r.Operator).Register(api)
	transaction.NewDeleteTransactionHandler(r.Operator).Register(api)
	transaction.NewRefreshTransactionsHandler(r.Operator).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Sessions).Register(api)
	summary.NewHandler(r.Service.Sessions, r.Service.Profile, r.Env.Currency).Register(api)
	profile.NewHandler(r.Service.Profile).Register(api)
	export.NewHandler(r.Service.Sessions, r.Service.Profile, r.Env.Currency).Register(api)

	return mux
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Env.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Env.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
