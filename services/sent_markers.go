package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"backoffice/model"

	"github.com/redis/go-redis/v9"
)

// DefaultMarkerTTL keeps markers well past the same-day window they guard;
// dedup is only ever checked against today's key.
const DefaultMarkerTTL = 7 * 24 * time.Hour

// SentMarkerStore is the once-per-day delivery ledger. Each marker is a
// Redis key with a TTL, so the store purges itself.
type SentMarkerStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSentMarkerStore(redisURL string, ttl time.Duration) (*SentMarkerStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	if ttl <= 0 {
		ttl = DefaultMarkerTTL
	}
	return &SentMarkerStore{client: client, ttl: ttl}, nil
}

func markerKey(markerID string) string {
	return fmt.Sprintf("sent:%s", markerID)
}

// Exists reports whether a marker has been recorded for the given id.
func (s *SentMarkerStore) Exists(ctx context.Context, markerID string) (bool, error) {
	count, err := s.client.Exists(ctx, markerKey(markerID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check marker existence: %v", err)
	}
	return count > 0, nil
}

// Put records a marker. SetNX keeps the first write; a concurrent tick
// recording the same day's marker is a no-op.
func (s *SentMarkerStore) Put(ctx context.Context, marker *model.SentMarker) error {
	if marker == nil || marker.MarkerID == "" {
		return fmt.Errorf("cannot record empty marker")
	}

	now := time.Now()
	marker.SentAt = now.Unix()
	marker.ExpiresAt = now.Add(s.ttl).Unix()

	data, err := json.Marshal(marker)
	if err != nil {
		return fmt.Errorf("failed to marshal marker: %v", err)
	}

	if err := s.client.SetNX(ctx, markerKey(marker.MarkerID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to record marker: %v", err)
	}
	return nil
}

// Get returns a recorded marker, or nil when none exists.
func (s *SentMarkerStore) Get(ctx context.Context, markerID string) (*model.SentMarker, error) {
	data, err := s.client.Get(ctx, markerKey(markerID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get marker: %v", err)
	}

	var marker model.SentMarker
	if err := json.Unmarshal(data, &marker); err != nil {
		return nil, fmt.Errorf("failed to unmarshal marker: %v", err)
	}
	return &marker, nil
}

func (s *SentMarkerStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *SentMarkerStore) Close() error {
	return s.client.Close()
}
