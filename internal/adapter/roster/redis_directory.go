package roster

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/iho/tipbot/internal/domain"
)

const membersKey = "tipbot:members"

// RedisDirectory reads the membership roster from a redis hash maintained
// by the chat gateway: field = member ID, value = JSON profile.
type RedisDirectory struct {
	client *redis.Client
}

// NewRedisDirectory creates a redis-backed member directory.
func NewRedisDirectory(client *redis.Client) *RedisDirectory {
	return &RedisDirectory{client: client}
}

type memberRecord struct {
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
	Deleted bool   `json:"deleted"`
}

// ListMembers returns the full membership roster.
func (d *RedisDirectory) ListMembers(ctx context.Context) ([]domain.Member, error) {
	fields, err := d.client.HGetAll(ctx, membersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("read members hash: %w", err)
	}

	members := make([]domain.Member, 0, len(fields))
	for id, raw := range fields {
		var rec memberRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, fmt.Errorf("decode member %s: %w", id, err)
		}

		members = append(members, domain.Member{
			ID:      id,
			Name:    rec.Name,
			IsAdmin: rec.IsAdmin,
			Deleted: rec.Deleted,
		})
	}

	return members, nil
}
