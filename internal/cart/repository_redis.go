package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisRepository stores each cart as a JSON document so carts survive
// process restarts.
type RedisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

func cartKey(userID int) string {
	return fmt.Sprintf("cart:%d", userID)
}

func (r *RedisRepository) Get(userID int) ([]Line, error) {
	raw, err := r.client.Get(context.Background(), cartKey(userID)).Bytes()
	if err == redis.Nil {
		return []Line{}, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *RedisRepository) Put(userID int, lines []Line) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return r.client.Set(context.Background(), cartKey(userID), raw, 0).Err()
}

func (r *RedisRepository) Clear(userID int) error {
	return r.client.Del(context.Background(), cartKey(userID)).Err()
}
