package runlock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient keeps keys in memory and runs the release script's logic.
type fakeClient struct {
	values map[string]string
	err    error
}

func newFake() *fakeClient { return &fakeClient{values: map[string]string{}} }

func (f *fakeClient) SetNX(_ context.Context, key string, value interface{}, _ time.Duration) *redis.BoolCmd {
	if f.err != nil {
		return redis.NewBoolResult(false, f.err)
	}
	if _, ok := f.values[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.values[key] = value.(string)
	return redis.NewBoolResult(true, nil)
}

func (f *fakeClient) Eval(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	if f.values[keys[0]] == args[0].(string) {
		delete(f.values, keys[0])
		return redis.NewCmdResult(int64(1), nil)
	}
	return redis.NewCmdResult(int64(0), nil)
}

func TestAcquireRelease(t *testing.T) {
	ctx := context.Background()
	client := newFake()
	l := &Locker{Client: client}

	lock, err := l.Acquire(ctx, "import", time.Minute)
	require.NoError(t, err)

	_, err = l.Acquire(ctx, "import", time.Minute)
	assert.ErrorIs(t, err, ErrLocked)

	other, err := l.Acquire(ctx, "export", time.Minute)
	require.NoError(t, err)
	require.NoError(t, other.Release(ctx))

	require.NoError(t, lock.Release(ctx))
	assert.Empty(t, client.values)

	again, err := l.Acquire(ctx, "import", time.Minute)
	require.NoError(t, err)
	require.NoError(t, again.Release(ctx))
}

func TestReleaseAfterTakeover(t *testing.T) {
	ctx := context.Background()
	client := newFake()
	l := &Locker{Client: client}

	lock, err := l.Acquire(ctx, "import", time.Minute)
	require.NoError(t, err)

	client.values[keyPrefix+"import"] = "someone-else"
	assert.Error(t, lock.Release(ctx))
	assert.Equal(t, "someone-else", client.values[keyPrefix+"import"])
}

func TestAcquireError(t *testing.T) {
	client := newFake()
	client.err = errors.New("connection refused")
	l := &Locker{Client: client}

	_, err := l.Acquire(context.Background(), "import", time.Minute)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrLocked))
}
