package cache

import (
	"context"
	"log"
	"os"
	"testing"

	"event-experience/internal/cache"
	"event-experience/internal/model"
	"event-experience/test/internal/testutil"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRdb *redis.Client

func TestMain(m *testing.M) {
	rdb, cleanup, err := testutil.SetupRedisOnly()
	if err != nil {
		// no redis, nothing to verify here
		log.Printf("Skipping cache tests: %v", err)
		os.Exit(0)
	}
	testRdb = rdb

	log.Println("Running cache tests...")
	code := m.Run()

	cleanup()
	os.Exit(code)
}

func TestAttendanceCache_SetAndGet(t *testing.T) {
	ctx := context.Background()
	attendanceCache := cache.NewRedisAttendanceCache(testRdb)

	require.NoError(t, attendanceCache.Invalidate(ctx, 3))

	err := attendanceCache.Set(ctx, 3, &model.EventAttendance{Registered: 120, CheckedIn: 45})
	require.NoError(t, err)

	got, err := attendanceCache.Get(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 120, got.Registered)
	assert.Equal(t, 45, got.CheckedIn)
}

func TestAttendanceCache_MissReturnsNil(t *testing.T) {
	ctx := context.Background()
	attendanceCache := cache.NewRedisAttendanceCache(testRdb)

	require.NoError(t, attendanceCache.Invalidate(ctx, 404))

	got, err := attendanceCache.Get(ctx, 404)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAttendanceCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	attendanceCache := cache.NewRedisAttendanceCache(testRdb)

	require.NoError(t, attendanceCache.Set(ctx, 5, &model.EventAttendance{Registered: 10, CheckedIn: 1}))
	require.NoError(t, attendanceCache.Invalidate(ctx, 5))

	got, err := attendanceCache.Get(ctx, 5)
	require.NoError(t, err)
	assert.Nil(t, got)
}
