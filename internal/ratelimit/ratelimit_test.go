package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyFormat(t *testing.T) {
	limiter := New(nil, "classtracker", 5, 10*time.Second)
	assert.Equal(t, "classtracker:rate_limit:1001:10", limiter.key(1001))
}

func TestDecide(t *testing.T) {
	const limit = 3

	tests := []struct {
		count      int64
		admit      bool
		notifyOnce bool
	}{
		{1, true, false},
		{2, true, false},
		{3, true, false},
		{4, false, true},
		{5, false, false},
		{100, false, false},
	}

	for _, tt := range tests {
		decision := decide(tt.count, limit)
		assert.Equal(t, tt.admit, decision.Admit, "count=%d", tt.count)
		assert.Equal(t, tt.notifyOnce, decision.NotifyOnce, "count=%d", tt.count)
	}
}

func TestDecideNotifiesExactlyOncePerWindow(t *testing.T) {
	const limit = 3

	notifications := 0
	for count := int64(1); count <= 20; count++ {
		if decide(count, limit).NotifyOnce {
			notifications++
		}
	}
	assert.Equal(t, 1, notifications)
}
