package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ValkeyConfig holds connection settings for the Valkey backend
type ValkeyConfig struct {
	Addr       string
	Password   string
	KeyPrefix  string
	QuotaBytes int
}

// ValkeyStore keeps one key per collection under a prefix
type ValkeyStore struct {
	client     *redis.Client
	keyPrefix  string
	quotaBytes int
}

func NewValkeyStore(cfg ValkeyConfig) (*ValkeyStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           0,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		DialTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Valkey: %w", err)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "lerida"
	}
	quota := cfg.QuotaBytes
	if quota <= 0 {
		quota = DefaultQuotaBytes
	}

	return &ValkeyStore{
		client:     rdb,
		keyPrefix:  prefix,
		quotaBytes: quota,
	}, nil
}

func (s *ValkeyStore) key(collection string) string {
	return fmt.Sprintf("%s:collections:%s", s.keyPrefix, collection)
}

func (s *ValkeyStore) Load(ctx context.Context, collection string) ([]byte, error) {
	blob, err := s.client.Get(ctx, s.key(collection)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load collection %s: %w", collection, err)
	}
	return blob, nil
}

func (s *ValkeyStore) Save(ctx context.Context, collection string, blob []byte) error {
	if len(blob) > s.quotaBytes {
		return ErrCapacityExceeded
	}

	if err := s.client.Set(ctx, s.key(collection), blob, 0).Err(); err != nil {
		return fmt.Errorf("failed to save collection %s: %w", collection, err)
	}
	return nil
}

func (s *ValkeyStore) Delete(ctx context.Context, collection string) error {
	if err := s.client.Del(ctx, s.key(collection)).Err(); err != nil {
		return fmt.Errorf("failed to delete collection %s: %w", collection, err)
	}
	return nil
}

func (s *ValkeyStore) Close() error {
	return s.client.Close()
}
