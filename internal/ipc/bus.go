package ipc

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"loc-editor/internal/logger"
)

const component = "MessageBus"

// Message is one delivery on a channel.
type Message struct {
	Channel   string
	Payload   interface{}
	Timestamp time.Time
}

type Handler func(msg Message)

// Poster schedules a function on the UI goroutine.
type Poster interface {
	Post(fn func())
}

// Publisher is the view-facing half of the bus.
type Publisher interface {
	Publish(channel string, payload interface{})
}

type subscription struct {
	id      string
	handler Handler
}

// Bus delivers every message through the Poster, so handlers run one at a
// time on the UI goroutine in publish order.
type Bus struct {
	subscribers map[string][]subscription
	mu          sync.RWMutex
	poster      Poster
	journal     *Journal
	logger      logger.Logger
	ctx         context.Context
	cancel      context.CancelFunc
}

func NewBus(poster Poster, journal *Journal, log logger.Logger) *Bus {
	ctx, cancel := context.WithCancel(context.Background())

	return &Bus{
		subscribers: make(map[string][]subscription),
		poster:      poster,
		journal:     journal,
		logger:      log,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Subscribe registers handler for channel and returns the subscription id.
func (b *Bus) Subscribe(channel string, handler Handler) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.NewString()
	b.subscribers[channel] = append(b.subscribers[channel], subscription{id: id, handler: handler})
	return id
}

func (b *Bus) Unsubscribe(channel, id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subscribers[channel]
	for i, s := range subs {
		if s.id == id {
			b.subscribers[channel] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
}

// Publish queues payload on channel. Messages published after Shutdown are
// dropped.
func (b *Bus) Publish(channel string, payload interface{}) {
	select {
	case <-b.ctx.Done():
		b.logger.Debug(component, "message dropped after shutdown", map[string]interface{}{
			"channel": channel,
		})
		return
	default:
	}

	msg := Message{Channel: channel, Payload: payload, Timestamp: time.Now()}
	if b.journal != nil {
		b.journal.Record(Inbound, channel, "", payload)
	}

	b.poster.Post(func() {
		b.dispatch(msg)
	})
}

func (b *Bus) Shutdown() {
	b.cancel()
}

func (b *Bus) dispatch(msg Message) {
	b.mu.RLock()
	subs := make([]subscription, len(b.subscribers[msg.Channel]))
	copy(subs, b.subscribers[msg.Channel])
	b.mu.RUnlock()

	if len(subs) == 0 {
		b.logger.Warning(component, "no handler for channel", map[string]interface{}{
			"channel": msg.Channel,
		})
		return
	}

	for _, s := range subs {
		b.call(s, msg)
	}
}

func (b *Bus) call(s subscription, msg Message) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error(component, fmt.Errorf("handler panic: %v", r), map[string]interface{}{
				"channel":      msg.Channel,
				"subscription": s.id,
			})
		}
	}()
	s.handler(msg)
}

// Decode extracts a payload of type T, accepting both T and *T.
func Decode[T any](msg Message) (T, error) {
	var zero T
	switch p := msg.Payload.(type) {
	case T:
		return p, nil
	case *T:
		if p != nil {
			return *p, nil
		}
	}

	return zero, fmt.Errorf("channel %s: unexpected payload %T, want %T", msg.Channel, msg.Payload, zero)
}
