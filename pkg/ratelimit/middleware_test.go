package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRateLimitType(t *testing.T) {
	tests := []struct {
		path     string
		expected RateLimitType
	}{
		{"/health", RateLimitTypeHealth},
		{"/ping", RateLimitTypeHealth},
		{"/status", RateLimitTypeHealth},
		{"/api/v1/bookings/book", RateLimitTypeBooking},
		{"/api/v1/bookings/cancel/:bookingId", RateLimitTypeBooking},
		{"/api/v1/bookings/user/:userId", RateLimitTypeBooking},
		{"/api/v1/events", RateLimitTypePublic},
		{"/api/v1/events/:eventId/seats/live", RateLimitTypePublic},
		{"/api/v1/users/:userId", RateLimitTypeUser},
		{"/metrics", RateLimitTypeDefault},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, getRateLimitType(tt.path), "path %s", tt.path)
	}
}

func TestGetLimitPerType(t *testing.T) {
	limiter := NewRateLimiter(nil, &Config{
		DefaultRequests: 60,
		PublicRequests:  100,
		BookingRequests: 20,
		UserRequests:    40,
		HealthRequests:  120,
	})

	assert.Equal(t, 20, limiter.getLimit(RateLimitTypeBooking))
	assert.Equal(t, 100, limiter.getLimit(RateLimitTypePublic))
	assert.Equal(t, 40, limiter.getLimit(RateLimitTypeUser))
	assert.Equal(t, 120, limiter.getLimit(RateLimitTypeHealth))
	assert.Equal(t, 60, limiter.getLimit(RateLimitType("unknown")))
}

func TestIsWhitelisted(t *testing.T) {
	limiter := NewRateLimiter(nil, &Config{
		WhitelistedIPs: []string{"10.0.0.1", "192.168.1.5"},
	})

	assert.True(t, limiter.isWhitelisted("10.0.0.1"))
	assert.False(t, limiter.isWhitelisted("10.0.0.2"))
}
