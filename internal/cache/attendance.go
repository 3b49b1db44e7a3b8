package cache

import (
	"context"
	"fmt"
	"time"

	"event-experience/internal/model"

	"github.com/redis/go-redis/v9"
)

const attendanceTTL = 30 * time.Second

// AttendanceCache keeps the per-event registered/checked-in counters in Redis.
// It holds derived read-side state only: a miss or a failure means the caller
// recomputes from the store, never that data is lost.
type AttendanceCache interface {
	// Get returns the cached attendance, or nil on a miss.
	Get(ctx context.Context, eventID int) (*model.EventAttendance, error)
	Set(ctx context.Context, eventID int, attendance *model.EventAttendance) error
	Invalidate(ctx context.Context, eventID int) error
}

type RedisAttendanceCacheImpl struct {
	client *redis.Client
}

func NewRedisAttendanceCache(client *redis.Client) AttendanceCache {
	return &RedisAttendanceCacheImpl{
		client: client,
	}
}

func (c *RedisAttendanceCacheImpl) key(eventID int) string {
	return fmt.Sprintf("event:%d:attendance", eventID)
}

func (c *RedisAttendanceCacheImpl) Get(ctx context.Context, eventID int) (*model.EventAttendance, error) {
	result, err := c.client.HGetAll(ctx, c.key(eventID)).Result()
	if err != nil {
		return nil, err
	}

	// empty hash means the key does not exist
	if len(result) == 0 {
		return nil, nil
	}

	var attendance model.EventAttendance
	if _, err := fmt.Sscanf(result["registered"], "%d", &attendance.Registered); err != nil {
		return nil, err
	}
	if _, err := fmt.Sscanf(result["checked_in"], "%d", &attendance.CheckedIn); err != nil {
		return nil, err
	}

	return &attendance, nil
}

func (c *RedisAttendanceCacheImpl) Set(ctx context.Context, eventID int, attendance *model.EventAttendance) error {
	key := c.key(eventID)

	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, key, map[string]interface{}{
		"registered": attendance.Registered,
		"checked_in": attendance.CheckedIn,
	})
	pipe.Expire(ctx, key, attendanceTTL)

	_, err := pipe.Exec(ctx)
	return err
}

func (c *RedisAttendanceCacheImpl) Invalidate(ctx context.Context, eventID int) error {
	return c.client.Del(ctx, c.key(eventID)).Err()
}
