package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/pbzweihander/glt/internal/config"
	"github.com/pbzweihander/glt/internal/slack"
	"github.com/pbzweihander/glt/internal/store"
)

type App struct {
	cfg     config.Config
	log     *zap.Logger
	httpSrv *http.Server
}

func New(cfg config.Config, log *zap.Logger) (*App, error) {
	st, err := store.Open(cfg.DataRoot)
	if err != nil {
		return nil, err
	}
	router := slack.NewRouter(log, st, cfg.VerificationToken)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.Handle(cfg.SlashPath, router.Handler())
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	return &App{cfg: cfg, log: log, httpSrv: srv}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.log.Info("starting glt",
		zap.String("http", a.cfg.HTTPAddr),
		zap.String("slash_path", a.cfg.SlashPath),
		zap.String("data_root", a.cfg.DataRoot),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		a.log.Info("shutdown signal received")

		// Create a short-lived shutdown context and cancel it immediately after use.
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := a.httpSrv.Shutdown(shCtx)
		cancel()

		if err != nil {
			a.log.Warn("http server shutdown error", zap.Error(err))
		}
		return nil
	}
}
