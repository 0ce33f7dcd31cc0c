package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key layout: slots:{doctor_id}:{date}
	slotCacheKeyPrefix = "slots:"

	// Timeout for individual Redis operations
	slotCacheTimeout = 5 * time.Second

	// Batch size for SCAN during doctor-wide invalidation
	slotCacheScanCount = 100
)

// SlotCacheService is a read-through cache for resolved availability slots.
// Slot resolution hits three tables per request; the resolved slice is small
// and changes only when a booking lands or the doctor edits their windows,
// so cached entries stay correct between writes and expire on their own
// after the TTL. Cache failures are logged and swallowed: Redis being down
// must never block a booking.
type SlotCacheService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewSlotCacheService(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *SlotCacheService {
	return &SlotCacheService{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

func slotCacheKey(doctorID uuid.UUID, date string) string {
	return fmt.Sprintf("%s%s:%s", slotCacheKeyPrefix, doctorID.String(), date)
}

// Get returns the cached slots for a doctor/date, or (nil, false) on a miss.
// A cached empty slice is a valid hit: "no slots" is a real answer.
func (s *SlotCacheService) Get(ctx context.Context, doctorID uuid.UUID, date string) ([]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, slotCacheTimeout)
	defer cancel()

	payload, err := s.redisClient.Get(ctx, slotCacheKey(doctorID, date)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		s.log.Warnf("Failed to read slot cache: %+v", err)
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal([]byte(payload), &slots); err != nil {
		s.log.Warnf("Failed to decode slot cache entry: %+v", err)
		return nil, false
	}
	if slots == nil {
		slots = []string{}
	}

	return slots, true
}

func (s *SlotCacheService) Set(ctx context.Context, doctorID uuid.UUID, date string, slots []string) {
	ctx, cancel := context.WithTimeout(ctx, slotCacheTimeout)
	defer cancel()

	payload, err := json.Marshal(slots)
	if err != nil {
		s.log.Warnf("Failed to encode slot cache entry: %+v", err)
		return
	}

	if err := s.redisClient.Set(ctx, slotCacheKey(doctorID, date), payload, s.ttl).Err(); err != nil {
		s.log.Warnf("Failed to write slot cache: %+v", err)
	}
}

// Invalidate drops the cached slots for one doctor/date. Called after a
// booking or status change touches that day.
func (s *SlotCacheService) Invalidate(ctx context.Context, doctorID uuid.UUID, date string) {
	ctx, cancel := context.WithTimeout(ctx, slotCacheTimeout)
	defer cancel()

	if err := s.redisClient.Del(ctx, slotCacheKey(doctorID, date)).Err(); err != nil {
		s.log.Warnf("Failed to invalidate slot cache: %+v", err)
	}
}

// InvalidateDoctor drops every cached date for a doctor. Called after a
// weekly availability replace, which affects all future dates at once.
// Uses SCAN rather than KEYS so a large keyspace does not stall Redis.
func (s *SlotCacheService) InvalidateDoctor(ctx context.Context, doctorID uuid.UUID) {
	ctx, cancel := context.WithTimeout(ctx, slotCacheTimeout)
	defer cancel()

	pattern := fmt.Sprintf("%s%s:*", slotCacheKeyPrefix, doctorID.String())
	iter := s.redisClient.Scan(ctx, 0, pattern, slotCacheScanCount).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		s.log.Warnf("Failed to scan slot cache keys: %+v", err)
		return
	}

	if len(keys) > 0 {
		if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
			s.log.Warnf("Failed to invalidate doctor slot cache: %+v", err)
		}
	}
}
