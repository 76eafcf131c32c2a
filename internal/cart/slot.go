package cart

import (
	"context"
	"errors"
	"os"

	"github.com/redis/go-redis/v9"
)

// FileSlot persists the cart as a JSON file on disk.
type FileSlot struct {
	path string
}

func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

func (s *FileSlot) Load() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

func (s *FileSlot) Save(data []byte) error {
	return os.WriteFile(s.path, data, 0600)
}

// RedisSlot persists the cart under a single redis key, so a cart can be
// shared across processes the way browser tabs share local storage. Last
// write wins; there is no locking between writers.
type RedisSlot struct {
	rdb *redis.Client
	key string
}

func NewRedisSlot(rdb *redis.Client, key string) *RedisSlot {
	return &RedisSlot{rdb: rdb, key: key}
}

func (s *RedisSlot) Load() ([]byte, error) {
	data, err := s.rdb.Get(context.Background(), s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return data, err
}

func (s *RedisSlot) Save(data []byte) error {
	return s.rdb.Set(context.Background(), s.key, data, 0).Err()
}

// MemorySlot is an in-memory Slot for tests.
type MemorySlot struct {
	Data    []byte
	LoadErr error
	SaveErr error
}

func (s *MemorySlot) Load() ([]byte, error) {
	return s.Data, s.LoadErr
}

func (s *MemorySlot) Save(data []byte) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Data = data
	return nil
}
