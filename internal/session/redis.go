package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-dreamjob/internal/domain"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

type redisStore struct {
	client *redis.Client
}

// NewRedisStore keeps sessions in Redis as JSON payloads with a TTL, so
// they survive restarts and are visible to every replica.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, sid string) (*domain.User, error) {
	payload, err := s.client.Get(ctx, redisKeyPrefix+sid).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var user domain.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *redisStore) Set(ctx context.Context, sid string, user *domain.User, ttl time.Duration) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, redisKeyPrefix+sid, payload, ttl).Err()
}

func (s *redisStore) Delete(ctx context.Context, sid string) error {
	return s.client.Del(ctx, redisKeyPrefix+sid).Err()
}
