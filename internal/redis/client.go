package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gil10101/sokin-sub000/internal/config"
)

// Client wraps the go-redis client shared by the view caches and the
// event streams.
type Client struct {
	*redis.Client
}

func NewClient(addr, password string, db int) (*Client, error) {
	poolSize, err := strconv.Atoi(config.GetEnv("REDIS_POOL_SIZE", "10"))
	if err != nil || poolSize <= 0 {
		poolSize = 10
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     poolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	config.Logger().WithField("addr", addr).Debug("connected to redis")

	return &Client{Client: rdb}, nil
}
