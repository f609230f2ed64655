package fetch

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateLimiter_DefaultRate(t *testing.T) {
	r := NewRateLimiter(0)

	assert.InDelta(t, DefaultRate, float64(r.bucket.Limit()), 0.0001)
	assert.Equal(t, 1, r.bucket.Burst())
}

func TestRateLimiter_Wait_Cancelled(t *testing.T) {
	r := NewRateLimiter(0.001)
	require.NoError(t, r.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, r.Wait(ctx))
}

func TestRateLimiter_Observe(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		retryAfter  string
		wantMin     time.Duration
		wantBackoff bool
	}{
		{name: "ok ignored", status: http.StatusOK},
		{name: "not found ignored", status: http.StatusNotFound},
		{name: "429 with header", status: http.StatusTooManyRequests, retryAfter: "30", wantMin: 29 * time.Second, wantBackoff: true},
		{name: "503 without header", status: http.StatusServiceUnavailable, wantMin: DefaultBackoff - time.Second, wantBackoff: true},
		{name: "429 with date header", status: http.StatusTooManyRequests, retryAfter: "Wed, 21 Oct 2015 07:28:00 GMT", wantMin: DefaultBackoff - time.Second, wantBackoff: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRateLimiter(1)
			resp := &http.Response{StatusCode: tt.status, Header: http.Header{}}
			if tt.retryAfter != "" {
				resp.Header.Set(HeaderRetryAfter, tt.retryAfter)
			}

			r.Observe(resp)

			if !tt.wantBackoff {
				assert.True(t, r.RetryAt().IsZero())
				return
			}
			assert.True(t, r.RetryAt().After(time.Now().Add(tt.wantMin)))
		})
	}
}

func TestRateLimiter_Observe_Nil(t *testing.T) {
	r := NewRateLimiter(1)
	r.Observe(nil)
	assert.True(t, r.RetryAt().IsZero())
}
