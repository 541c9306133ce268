package rediscache

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/lifeboard/backend/domain"
	"github.com/lifeboard/backend/repository"
)

const notePrefix = "notes:list:"

// NoteCache keeps note list/search results in Redis. A nil result with a nil
// error means a cache miss; callers fall through to the repository.
type NoteCache struct {
	client *redislib.Client
	ttl    time.Duration
}

// NewNoteCache creates a Redis-backed note list cache.
func NewNoteCache(client *redislib.Client, ttl time.Duration) *NoteCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &NoteCache{client: client, ttl: ttl}
}

func (c *NoteCache) Get(ctx context.Context, filter repository.NoteFilter) ([]domain.Note, error) {
	result, err := c.client.Get(ctx, c.key(filter)).Bytes()
	if err != nil {
		if err == redislib.Nil {
			return nil, nil
		}
		return nil, err
	}

	var notes []domain.Note
	if err := json.Unmarshal(result, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *NoteCache) Set(ctx context.Context, filter repository.NoteFilter, notes []domain.Note) error {
	payload, err := json.Marshal(notes)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(filter), payload, c.ttl).Err()
}

// Invalidate drops every cached note listing. Called on any note write.
func (c *NoteCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, notePrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// key covers every field of the filter; listings that differ only in
// pagination must not share an entry.
func (c *NoteCache) key(filter repository.NoteFilter) string {
	var b strings.Builder
	b.WriteString(notePrefix)
	b.WriteString(strings.ToLower(strings.TrimSpace(filter.Category)))
	b.WriteByte(':')
	b.WriteString(strings.ToLower(strings.TrimSpace(filter.Search)))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(filter.Limit))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(filter.Offset))
	return b.String()
}
