// File: /jobs/token_cleanup_job.go
package jobs

import (
	"autosales-api/repositories"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TokenCleanupJob periodically removes expired entries from the token blacklist.
type TokenCleanupJob struct {
	tokens   *repositories.TokenRepository
	logger   *zap.Logger
	schedule string
	cron     *cron.Cron
}

// NewTokenCleanupJob creates a new token cleanup job. The schedule uses
// standard cron syntax (descriptors like "@hourly" are accepted).
func NewTokenCleanupJob(db *gorm.DB, schedule string, logger *zap.Logger) *TokenCleanupJob {
	return &TokenCleanupJob{
		tokens:   repositories.NewTokenRepository(db),
		logger:   logger,
		schedule: schedule,
		cron:     cron.New(),
	}
}

// Start registers the cleanup on the configured schedule and runs it
// once immediately.
func (j *TokenCleanupJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.cleanup); err != nil {
		return err
	}

	j.logger.Info("token cleanup job started", zap.String("schedule", j.schedule))

	// Run immediately on start
	j.cleanup()

	j.cron.Start()
	return nil
}

// Stop stops the scheduler. Already running cleanups finish on their own.
func (j *TokenCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.Info("token cleanup job stopped")
}

func (j *TokenCleanupJob) cleanup() {
	purged, err := j.tokens.PurgeExpired()
	if err != nil {
		j.logger.Error("token cleanup failed", zap.Error(err))
		return
	}

	if purged > 0 {
		j.logger.Info("purged expired blacklisted tokens", zap.Int64("count", purged))
	}
}
