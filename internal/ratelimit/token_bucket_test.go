package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }

func newTestBucket(qpm, capacity int) (*TokenBucket, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	tb := NewTokenBucket(qpm, capacity)
	tb.now = clock.now
	tb.lastRefillTime = clock.t
	return tb, clock
}

func TestAllowConsumesCapacity(t *testing.T) {
	tb, _ := newTestBucket(60, 3)

	assert.True(t, tb.Allow())
	assert.True(t, tb.Allow())
	assert.True(t, tb.Allow())
	assert.False(t, tb.Allow())
}

func TestAllowRefillsOverTime(t *testing.T) {
	tb, clock := newTestBucket(60, 2) // 每秒1个令牌

	assert.True(t, tb.Allow())
	assert.True(t, tb.Allow())
	assert.False(t, tb.Allow())

	clock.t = clock.t.Add(1500 * time.Millisecond)
	assert.True(t, tb.Allow())
	assert.False(t, tb.Allow())

	// 长时间空闲也不会超过容量
	clock.t = clock.t.Add(time.Hour)
	assert.True(t, tb.Allow())
	assert.True(t, tb.Allow())
	assert.False(t, tb.Allow())
}

func TestDefaultCapacity(t *testing.T) {
	tb := NewTokenBucket(1, 0)
	assert.Equal(t, 1.0, tb.capacity)

	tb = NewTokenBucket(120, 0)
	assert.Equal(t, 60.0, tb.capacity)
}
