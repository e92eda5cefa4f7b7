package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

// otpSweeper periodically removes expired one-time codes. Expired codes are
// already unusable, so a missed or failed sweep only delays the cleanup.
type otpSweeper struct {
	otps     store.OTPRepository
	interval time.Duration

	logger *logger.Logger
}

func NewOTPSweeper(otps store.OTPRepository, interval time.Duration, logger *logger.Logger) Worker {
	return &otpSweeper{
		otps:     otps,
		interval: interval,
		logger:   logger,
	}
}

func (s *otpSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("otp sweeper started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("otp sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *otpSweeper) sweep(ctx context.Context) {
	purged, err := s.otps.PurgeExpired(s.logger.WithContext(ctx))
	if err != nil {
		s.logger.Err(err).Str("func", "*otpSweeper.sweep").Msg("failed to purge expired otp records")
		return
	}

	if purged > 0 {
		s.logger.Debug().Int64("purged", purged).Msg("expired otp records purged")
	}
}
