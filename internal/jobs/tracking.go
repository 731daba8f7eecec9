package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"courier-app/internal/domain"
	"courier-app/internal/logx"
)

// LocationProvider supplies the device's current position. The real
// provider wraps the platform's positioning source; tests and the
// tracker binary use a stub.
type LocationProvider interface {
	Location(ctx context.Context) (domain.Location, error)
}

// locationReporter is the session slice the tracking job uses to push
// positions to the server.
type locationReporter interface {
	IsAuthenticated() bool
	UpdateLocation(ctx context.Context, latitude, longitude float64) bool
}

// TrackingJob periodically reports the courier's position while a
// session is active. Reports are skipped, not queued, when logged out.
type TrackingJob struct {
	provider LocationProvider
	session  locationReporter
	counter  interface{ Inc() }
	cron     *cron.Cron
	interval time.Duration
	logger   logx.Logger
}

// NewTrackingJob creates a tracking job reporting every interval.
func NewTrackingJob(provider LocationProvider, session locationReporter, counter interface{ Inc() }, interval time.Duration, logger logx.Logger) *TrackingJob {
	if provider == nil || session == nil {
		return nil
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &TrackingJob{
		provider: provider,
		session:  session,
		counter:  counter,
		cron:     cron.New(),
		interval: interval,
		logger:   logger.With(logx.String("component", "tracking_job")),
	}
}

// Start schedules the periodic report.
func (j *TrackingJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		j.Tick(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("tracking job started", logx.Duration("interval", j.interval))
	return nil
}

// Stop stops the job. Already-running reports finish on their own.
func (j *TrackingJob) Stop() {
	j.cron.Stop()
	j.logger.Info("tracking job stopped")
}

// Tick performs a single report cycle.
func (j *TrackingJob) Tick(ctx context.Context) {
	if !j.session.IsAuthenticated() {
		j.logger.Debug("tracking skipped, no active session")
		return
	}

	loc, err := j.provider.Location(ctx)
	if err != nil {
		j.logger.Warn("tracking position unavailable", logx.Any("err", err))
		return
	}
	if !j.session.UpdateLocation(ctx, loc.Latitude, loc.Longitude) {
		return
	}
	if j.counter != nil {
		j.counter.Inc()
	}
}
