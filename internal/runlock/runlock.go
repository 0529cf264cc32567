// Package runlock keeps two imports from writing the catalog at once.
package runlock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrLocked = errors.New("another run holds the lock")

const keyPrefix = "solarcatalog:lock:"

// releaseScript deletes the key only while it still carries our token.
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`

// Client is the part of *redis.Client the lock uses.
type Client interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

type Locker struct {
	Client Client
}

// Lock is a held lock. Release it when the run ends.
type Lock struct {
	client Client
	key    string
	token  string
}

// Acquire takes the named lock for ttl. It fails with ErrLocked when another
// holder has it.
func (l *Locker) Acquire(ctx context.Context, name string, ttl time.Duration) (*Lock, error) {
	key := keyPrefix + name
	token := uuid.NewString()

	ok, err := l.Client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire %s: %w", name, err)
	}
	if !ok {
		return nil, fmt.Errorf("acquire %s: %w", name, ErrLocked)
	}
	return &Lock{client: l.Client, key: key, token: token}, nil
}

// Release frees the lock unless it already expired and was taken over.
func (k *Lock) Release(ctx context.Context) error {
	n, err := k.client.Eval(ctx, releaseScript, []string{k.key}, k.token).Int64()
	if err != nil {
		return fmt.Errorf("release %s: %w", k.key, err)
	}
	if n == 0 {
		return fmt.Errorf("release %s: lock no longer held", k.key)
	}
	return nil
}

// Connect parses url and checks the server answers.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}
