package services

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/zamtransit/vendor-portal-backend/internal/store"
)

// CleanupService manages scheduled background jobs: expired-session
// sweeps and trip lifecycle advancement.
type CleanupService struct {
	cron     *cron.Cron
	sessions *SessionService
	trips    store.TripStore
	logger   *logrus.Logger

	sweepSpec   string
	advanceSpec string
}

// NewCleanupService creates a new CleanupService
func NewCleanupService(sessions *SessionService, trips store.TripStore, sweepInterval time.Duration, logger *logrus.Logger) *CleanupService {
	sweepMinutes := int(sweepInterval.Minutes())
	if sweepMinutes < 1 {
		sweepMinutes = 1
	}

	return &CleanupService{
		cron:        cron.New(),
		sessions:    sessions,
		trips:       trips,
		logger:      logger,
		sweepSpec:   fmt.Sprintf("@every %dm", sweepMinutes),
		advanceSpec: "@every 5m",
	}
}

// Start schedules and starts all background jobs
func (s *CleanupService) Start() error {
	if _, err := s.cron.AddFunc(s.sweepSpec, s.sweepSessionsJob); err != nil {
		return fmt.Errorf("failed to schedule session sweep job: %w", err)
	}
	if _, err := s.cron.AddFunc(s.advanceSpec, s.advanceTripsJob); err != nil {
		return fmt.Errorf("failed to schedule trip lifecycle job: %w", err)
	}

	s.cron.Start()
	s.logger.WithFields(logrus.Fields{
		"session_sweep":  s.sweepSpec,
		"trip_lifecycle": s.advanceSpec,
	}).Info("Background jobs started")

	return nil
}

// Stop stops the scheduler and waits for running jobs to finish
func (s *CleanupService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Background jobs stopped")
}

func (s *CleanupService) sweepSessionsJob() {
	removed, err := s.sessions.SweepExpired(time.Now().UTC())
	if err != nil {
		s.logger.WithError(err).Error("Session sweep failed")
		return
	}
	if removed > 0 {
		s.logger.WithField("removed", removed).Info("Swept expired sessions")
	}
}

func (s *CleanupService) advanceTripsJob() {
	advanced, err := s.trips.AdvanceTripStatuses(time.Now().UTC())
	if err != nil {
		s.logger.WithError(err).Error("Trip lifecycle advance failed")
		return
	}
	if advanced > 0 {
		s.logger.WithField("advanced", advanced).Info("Advanced trip statuses")
	}
}
