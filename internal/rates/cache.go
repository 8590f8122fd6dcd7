package rates

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"parceldesk/internal/model"
)

const (
	keyPrefix = "usd_rate:"
	dayFormat = "2006-01-02"

	// EntryTTL keeps Friday's quote usable through the weekend.
	EntryTTL = 48 * time.Hour
)

// ErrNoRate means no unexpired rate entry exists for today or any prior day.
var ErrNoRate = errors.New("no usd rate available")

// KV is the slice of redis the cache needs: set-with-TTL, get, and
// list-keys-by-prefix.
type KV interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error)
	Keys(ctx context.Context, prefix string) ([]string, error)
}

type redisKV struct {
	rdb *redis.Client
}

func (r redisKV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.rdb.Set(ctx, key, value, ttl).Err()
}

func (r redisKV) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r redisKV) Keys(ctx context.Context, prefix string) ([]string, error) {
	return r.rdb.Keys(ctx, prefix+"*").Result()
}

// Cache is the date-partitioned rate store. One entry per calendar day, keyed
// "usd_rate:YYYY-MM-DD"; redis enforces expiry and entry-level atomicity.
type Cache struct {
	kv KV
}

func NewCache(rdb *redis.Client) *Cache {
	return &Cache{kv: redisKV{rdb: rdb}}
}

// Put stores the rate under its effective date, overwriting a same-day entry.
func (c *Cache) Put(ctx context.Context, rate model.ExchangeRate) error {
	key := keyPrefix + rate.Date.UTC().Format(dayFormat)
	value := strconv.FormatFloat(rate.Value, 'f', -1, 64)
	if err := c.kv.Set(ctx, key, value, EntryTTL); err != nil {
		return fmt.Errorf("store usd rate: %w", err)
	}
	return nil
}

// Current returns today's rate, falling back to the most recent unexpired
// entry for a day strictly older than today. ErrNoRate when nothing usable
// is stored.
func (c *Cache) Current(ctx context.Context, today time.Time) (float64, error) {
	day := today.UTC().Format(dayFormat)

	value, ok, err := c.kv.Get(ctx, keyPrefix+day)
	if err != nil {
		return 0, fmt.Errorf("read usd rate: %w", err)
	}
	if ok {
		if rate, err := strconv.ParseFloat(value, 64); err == nil {
			return rate, nil
		}
	}

	keys, err := c.kv.Keys(ctx, keyPrefix)
	if err != nil {
		return 0, fmt.Errorf("list usd rate keys: %w", err)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	for _, key := range keys {
		entryDay := strings.TrimPrefix(key, keyPrefix)
		if entryDay >= day {
			continue
		}
		value, ok, err := c.kv.Get(ctx, key)
		if err != nil {
			return 0, fmt.Errorf("read usd rate: %w", err)
		}
		if !ok {
			continue
		}
		if rate, err := strconv.ParseFloat(value, 64); err == nil {
			return rate, nil
		}
	}

	return 0, ErrNoRate
}
