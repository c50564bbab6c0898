package roster

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/iho/tipbot/internal/usecase"
)

// Syncer periodically pulls the member directory into the roster. Money
// flows never retry; the sync loop is the one place transient failures
// are worth retrying, with exponential backoff.
type Syncer struct {
	roster    *Roster
	directory usecase.MemberDirectory
	interval  time.Duration
	logger    zerolog.Logger
}

// NewSyncer creates a roster syncer.
func NewSyncer(roster *Roster, directory usecase.MemberDirectory, interval time.Duration, logger zerolog.Logger) *Syncer {
	return &Syncer{
		roster:    roster,
		directory: directory,
		interval:  interval,
		logger:    logger,
	}
}

// Run syncs once immediately and then on every interval tick until ctx is
// cancelled.
func (s *Syncer) Run(ctx context.Context) {
	s.syncOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.syncOnce(ctx)
		}
	}
}

func (s *Syncer) syncOnce(ctx context.Context) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 2 * time.Minute

	err := backoff.Retry(func() error {
		members, err := s.directory.ListMembers(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("member listing failed, retrying")
			return err
		}

		s.roster.Sync(members)
		return nil
	}, backoff.WithContext(b, ctx))
	if err != nil {
		s.logger.Error().Err(err).Msg("roster sync gave up")
	}
}
