package service

import (
	"time"

	"github.com/mkosarev/keepsake/internal/logger"
)

// lockoutJanitor periodically evicts expired PIN lockouts so the limiter's
// memory stays bounded to owners with live failure state. It implements
// workers.Worker.
type lockoutJanitor struct {
	limiter  *attemptLimiter
	interval time.Duration
	logger   *logger.Logger
}

func newLockoutJanitor(limiter *attemptLimiter, logger *logger.Logger) *lockoutJanitor {
	return &lockoutJanitor{
		limiter:  limiter,
		interval: limiter.lockout,
		logger:   logger,
	}
}

// Run starts the sweep loop in its own goroutine and returns immediately.
func (j *lockoutJanitor) Run() {
	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for range ticker.C {
			j.limiter.purgeExpired()
		}
	}()

	j.logger.Info().Dur("interval", j.interval).Msg("pin lockout janitor started")
}
