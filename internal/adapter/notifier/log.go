package notifier

import (
	"context"

	"github.com/rs/zerolog"
)

// Log writes messages to the log instead of a chat gateway. Used when no
// redis is configured, mainly for local development.
type Log struct {
	logger zerolog.Logger
}

// NewLog creates a log-backed notifier.
func NewLog(logger zerolog.Logger) *Log {
	return &Log{logger: logger}
}

func (n *Log) Announce(ctx context.Context, channelID, text string) error {
	n.logger.Info().Str("channel", channelID).Str("text", text).Msg("announce")
	return nil
}

func (n *Log) Whisper(ctx context.Context, accountID, text string) error {
	n.logger.Info().Str("account", accountID).Str("text", text).Msg("whisper")
	return nil
}
