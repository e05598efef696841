package realtime

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/Azotik83/Eclipse.github.io/pkg/logger"
)

// Broker is the in-process change feed: publishers push events, subscribers
// get them in arrival order on a dedicated goroutine per subscription.
// Publishing never blocks; a subscriber that cannot keep up has its backlog
// collapsed into a single OpResync marker.
type Broker struct {
	mu     sync.RWMutex
	subs   map[uuid.UUID]*Subscription
	buffer int
	logger logger.Logger
	closed bool
}

func NewBroker(buffer int, log logger.Logger) *Broker {
	if buffer <= 0 {
		buffer = 64
	}
	return &Broker{
		subs:   make(map[uuid.UUID]*Subscription),
		buffer: buffer,
		logger: log,
	}
}

type Subscription struct {
	id       uuid.UUID
	topic    string
	bindings []Binding
	handler  Handler

	ch        chan Event
	done      chan struct{}
	closeOnce sync.Once
	lost      atomic.Bool

	broker *Broker
}

func (b *Broker) Subscribe(topic string, bindings []Binding, h Handler) (*Subscription, error) {
	s := &Subscription{
		id:       uuid.New(),
		topic:    topic,
		bindings: bindings,
		handler:  h,
		ch:       make(chan Event, b.buffer),
		done:     make(chan struct{}),
		broker:   b,
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(s.done)
		return s, nil
	}
	b.subs[s.id] = s
	b.mu.Unlock()

	go s.dispatch()
	return s, nil
}

func (s *Subscription) dispatch() {
	for {
		select {
		case <-s.done:
			return
		case ev := <-s.ch:
			select {
			case <-s.done:
				return
			default:
			}
			if s.lost.Swap(false) {
				s.handler(Event{Op: OpResync})
			}
			s.handler(ev)
		}
	}
}

// Close is idempotent. A handler already in flight may finish; consumers
// discard stale deliveries by checking their own state at delivery time.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		s.broker.mu.Lock()
		delete(s.broker.subs, s.id)
		s.broker.mu.Unlock()
		close(s.done)
	})
}

func (s *Subscription) Topic() string { return s.topic }

func (b *Broker) Publish(ev Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, s := range b.subs {
		for _, bind := range s.bindings {
			if !bind.matches(ev) {
				continue
			}
			select {
			case s.ch <- ev:
			default:
				if !s.lost.Swap(true) {
					b.logger.Warn("feed subscriber overflowed, forcing resync",
						"topic", s.topic, "table", ev.Table)
				}
			}
			break
		}
	}
}

// Close tears down every subscription. Used on session teardown.
func (b *Broker) Close() {
	b.mu.Lock()
	subs := make([]*Subscription, 0, len(b.subs))
	for _, s := range b.subs {
		subs = append(subs, s)
	}
	b.closed = true
	b.mu.Unlock()

	for _, s := range subs {
		s.Close()
	}
}
