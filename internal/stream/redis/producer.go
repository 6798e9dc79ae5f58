package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/s-pike/advent2021/internal/models"
)

// Publish appends req to stream and returns the entry id.
func Publish(ctx context.Context, client *redis.Client, stream string, req models.SolveRequest) (string, error) {
	values, err := EncodeRequest(req)
	if err != nil {
		return "", err
	}

	return client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: values,
	}).Result()
}
