package iot

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-device rate limiters: serial_number -> rate limiter
type RateLimiterStore struct {
	limiters     map[int]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[int]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(serialNumber int) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[serialNumber]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[serialNumber] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(serialNumber int, deviceRate rate.Limit, deviceBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[serialNumber] = rate.NewLimiter(deviceRate, deviceBurst)
}

// Allow reports whether one more request for the device fits its bucket. A
// nil store never limits.
func (s *RateLimiterStore) Allow(serialNumber int) bool {
	if s == nil {
		return true
	}
	return s.GetLimiter(serialNumber).Allow()
}
