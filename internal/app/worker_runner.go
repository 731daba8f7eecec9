package app

import (
	"context"
	"errors"

	"go.uber.org/dig"

	"courier-app/internal/jobs"
	"courier-app/internal/logx"
	"courier-app/internal/state/session"
)

// WorkerRunner runs the tracker without the diagnostics server.
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun starts the tracker using the provided DI container
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

func workerRun(
	ctx context.Context,
	sess *session.Store,
	job *jobs.TrackingJob,
	logger logx.Logger,
) error {
	sess.Initialize(ctx)
	if err := job.Start(); err != nil {
		return err
	}
	logger.Info("courier-tracker started")

	<-ctx.Done()
	job.Stop()
	return logger.Sync()
}
