package kvstore

import (
	"context"
	"time"

	"careerlaunch/internal/pkg/config"
	"careerlaunch/internal/pkg/errs"

	goredis "github.com/redis/go-redis/v9"
)

type RedisStore struct {
	rdb    *goredis.Client
	prefix string
}

// OpenRedis connects and pings before handing the client out.
func OpenRedis(ctx context.Context, cfg config.RedisConfig) (*RedisStore, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errs.Wrap(err, "failed to connect to redis")
	}

	return &RedisStore{rdb: rdb, prefix: cfg.KeyPrefix}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if errs.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.Wrapf(err, "failed to read key %q", key)
	}
	return value, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.rdb.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return errs.Wrapf(err, "failed to write key %q", key)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, s.prefix+key).Err(); err != nil {
		return errs.Wrapf(err, "failed to delete key %q", key)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
