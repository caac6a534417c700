package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/repository/cache"
)

const (
	KeyThreadView    = "thread:view:%s"
	KeyThreadVersion = "thread:version:%s"

	// a logically expired view is still served while it is rebuilt
	staleGrace = 5 * time.Minute
)

type threadCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ domain.ThreadCache = (*threadCache)(nil)

func NewThreadCache(client *redis.Client, ttl time.Duration) *threadCache {
	return &threadCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *threadCache) GetThreadView(ctx context.Context, id string) (domain.ThreadDetail, bool, error) {
	data, err := c.client.Get(ctx, fmt.Sprintf(KeyThreadView, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.ThreadDetail{}, false, domain.ErrCacheMiss
	} else if err != nil {
		return domain.ThreadDetail{}, false, err
	}

	var entry cache.DataWithLogicalExpire[domain.ThreadDetail]
	if err := json.Unmarshal(data, &entry); err != nil {
		return domain.ThreadDetail{}, false, err
	}
	return entry.Data, entry.IsLogicalExpired(), nil
}

// setViewIfVersion writes the view only while the version key still holds
// the value read before the view was assembled. A missing version is 0.
var setViewIfVersion = redis.NewScript(`
local current = redis.call('GET', KEYS[1]) or '0'
if current ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
return 1
`)

func (c *threadCache) ThreadVersion(ctx context.Context, id string) (int64, error) {
	version, err := c.client.Get(ctx, fmt.Sprintf(KeyThreadVersion, id)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return version, err
}

func (c *threadCache) SetThreadView(ctx context.Context, view domain.ThreadDetail, version int64) (bool, error) {
	data, err := json.Marshal(cache.NewDataWithLogicalExpire(view, c.ttl))
	if err != nil {
		return false, err
	}

	keys := []string{fmt.Sprintf(KeyThreadVersion, view.ID), fmt.Sprintf(KeyThreadView, view.ID)}
	stored, err := setViewIfVersion.Run(ctx, c.client, keys,
		strconv.FormatInt(version, 10), string(data), (c.ttl + staleGrace).Milliseconds()).Int()
	if err != nil {
		return false, err
	}
	return stored == 1, nil
}

// InvalidateThread bumps the version before dropping the view, so an
// assembly that started earlier can no longer store its result.
func (c *threadCache) InvalidateThread(ctx context.Context, id string) error {
	_, err := c.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, fmt.Sprintf(KeyThreadVersion, id))
		pipe.Del(ctx, fmt.Sprintf(KeyThreadView, id))
		return nil
	})
	return err
}
