// Package hub fans status updates out to live subscribers. It knows nothing
// about transports; websocket and gRPC streams plug in as Subscribers.
package hub

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/common"
)

type Subscriber interface {
	ID() string
	Send(ctx context.Context, payload []byte) error
	Close() error
}

type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]Subscriber
	sendTimeout time.Duration
	closed      bool
}

func New(sendTimeout time.Duration) *Hub {
	if sendTimeout <= 0 {
		sendTimeout = common.DefaultBroadcastTimeout
	}
	return &Hub{
		subscribers: make(map[string]Subscriber),
		sendTimeout: sendTimeout,
	}
}

func logger() *zap.Logger {
	return common.GetLoggerWith(common.LoggerNameHub)
}

// Subscribe registers s. A second call with the same ID keeps the first
// registration. Subscribing to a closed hub closes s right away.
func (h *Hub) Subscribe(s Subscriber) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = s.Close()
		return
	}
	if _, exists := h.subscribers[s.ID()]; exists {
		h.mu.Unlock()
		return
	}
	h.subscribers[s.ID()] = s
	count := len(h.subscribers)
	h.mu.Unlock()

	logger().Info("Subscriber connected",
		zap.String(common.LoggerFieldSubscriberID, s.ID()),
		zap.Int("subscribers", count))
}

// Unsubscribe is a no-op for unknown subscribers.
func (h *Hub) Unsubscribe(s Subscriber) {
	if h.remove(s) {
		logger().Info("Subscriber disconnected", zap.String(common.LoggerFieldSubscriberID, s.ID()))
	}
}

func (h *Hub) remove(s Subscriber) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	current, exists := h.subscribers[s.ID()]
	if !exists || current != s {
		return false
	}
	delete(h.subscribers, s.ID())
	return true
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Broadcast sends msg as JSON to every subscriber registered when the call
// starts and returns how many accepted it. Each delivery is bounded by the
// hub's send timeout; subscribers that fail are closed and dropped.
func (h *Hub) Broadcast(ctx context.Context, msg any) int {
	payload, err := json.Marshal(msg)
	if err != nil {
		logger().Error("Broadcast payload not encodable", zap.Error(err))
		return 0
	}

	h.mu.RLock()
	targets := make([]Subscriber, 0, len(h.subscribers))
	for _, s := range h.subscribers {
		targets = append(targets, s)
	}
	h.mu.RUnlock()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		delivered int
	)
	for _, s := range targets {
		wg.Add(1)
		go func(s Subscriber) {
			defer wg.Done()

			sendCtx, cancel := context.WithTimeout(ctx, h.sendTimeout)
			defer cancel()

			if err := s.Send(sendCtx, payload); err != nil {
				h.drop(s, err)
				return
			}
			mu.Lock()
			delivered++
			mu.Unlock()
		}(s)
	}
	wg.Wait()

	return delivered
}

func (h *Hub) drop(s Subscriber, cause error) {
	if !h.remove(s) {
		return
	}
	_ = s.Close()
	logger().Warn("Subscriber dropped after failed delivery",
		zap.String(common.LoggerFieldSubscriberID, s.ID()),
		zap.Error(cause))
}

// Close disconnects every subscriber. Later subscriptions are refused.
func (h *Hub) Close() {
	h.mu.Lock()
	subscribers := h.subscribers
	h.subscribers = make(map[string]Subscriber)
	h.closed = true
	h.mu.Unlock()

	for _, s := range subscribers {
		_ = s.Close()
	}
	logger().Info("Hub closed", zap.Int("subscribers", len(subscribers)))
}
