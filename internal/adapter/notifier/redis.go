// Package notifier delivers formatted chat messages to the chat gateway.
package notifier

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	channelTopicPrefix = "tipbot:chat:channel:"
	dmTopicPrefix      = "tipbot:chat:dm:"
)

// Redis publishes messages over redis pub/sub; the chat gateway
// subscribes and relays them to the platform.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a redis-backed notifier.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Announce publishes to a channel topic.
func (n *Redis) Announce(ctx context.Context, channelID, text string) error {
	if err := n.client.Publish(ctx, channelTopicPrefix+channelID, text).Err(); err != nil {
		return fmt.Errorf("publish to channel %s: %w", channelID, err)
	}
	return nil
}

// Whisper publishes to a direct-message topic.
func (n *Redis) Whisper(ctx context.Context, accountID, text string) error {
	if err := n.client.Publish(ctx, dmTopicPrefix+accountID, text).Err(); err != nil {
		return fmt.Errorf("publish dm to %s: %w", accountID, err)
	}
	return nil
}
