package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"go.uber.org/dig"

	"courier-app/internal/jobs"
	"courier-app/internal/logx"
	"courier-app/internal/state/session"
)

// MustRun starts the application using the provided DI container
func MustRun(container *dig.Container) {
	if err := run(container); err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			log.Println("shutdown requested, exiting")
			return
		default:
			log.Fatalf("run error: %v", err)
		}
	}
}

func run(container *dig.Container) error {
	return container.Invoke(func(
		ctx context.Context,
		server *http.Server,
		sess *session.Store,
		job *jobs.TrackingJob,
		logger logx.Logger,
	) error {
		sess.Initialize(ctx)
		if err := job.Start(); err != nil {
			return err
		}
		startServer(server, logger)

		waitForShutdown(ctx, logger)
		job.Stop()
		gracefulShutdown(server, logger, 15*time.Second)
		return logger.Sync()
	})
}

func startServer(server *http.Server, logger logx.Logger) {
	go func() {
		logger.Info("diagnostics listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen error: %v", err)
		}
	}()
}

func waitForShutdown(ctx context.Context, logger logx.Logger) {
	<-ctx.Done()
	logger.Info("shutting down courier-app")
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Any("err", err))
	}
}
