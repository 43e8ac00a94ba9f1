// Package uievent is a small publish/subscribe hub for screen level events
// that widgets react to without owning them, such as a click landing outside
// an open dropdown or the terminal being resized.
package uievent

import "sync"

// Kind identifies an event category.
type Kind int

const (
	ClickOutside Kind = iota + 1
	Resize
)

func (k Kind) String() string {
	switch k {
	case ClickOutside:
		return "click-outside"
	case Resize:
		return "resize"
	default:
		return "unknown"
	}
}

// Event carries the payload of a published event. X and Y are set for
// clicks, Width and Height for resizes.
type Event struct {
	Kind   Kind
	X, Y   int
	Width  int
	Height int
}

// Handler receives events synchronously on Publish.
type Handler func(Event)

// Source fans events out to subscribers in subscription order.
type Source struct {
	mu     sync.Mutex
	subs   []*Subscription
	closed bool
}

// NewSource returns an empty source.
func NewSource() *Source {
	return &Source{}
}

// Subscription is returned by Subscribe and detaches its handler.
type Subscription struct {
	source  *Source
	kind    Kind
	handler Handler
}

// Subscribe registers handler for kind. Subscribing to a closed source
// returns an inert subscription.
func (s *Source) Subscribe(kind Kind, handler Handler) *Subscription {
	sub := &Subscription{source: s, kind: kind, handler: handler}
	if handler == nil {
		return sub
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.subs = append(s.subs, sub)
	}
	return sub
}

// Publish delivers ev to every handler subscribed to its kind. Handlers may
// unsubscribe (themselves or others) while being called.
func (s *Source) Publish(ev Event) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	targets := make([]*Subscription, 0, len(s.subs))
	for _, sub := range s.subs {
		if sub.kind == ev.Kind {
			targets = append(targets, sub)
		}
	}
	s.mu.Unlock()

	for _, sub := range targets {
		if sub.active() {
			sub.handler(ev)
		}
	}
}

// Len reports the number of live subscriptions.
func (s *Source) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Close drops all subscriptions; later publishes are ignored.
func (s *Source) Close() {
	s.mu.Lock()
	s.subs = nil
	s.closed = true
	s.mu.Unlock()
}

// Unsubscribe detaches the handler. Calling it more than once is harmless.
func (sub *Subscription) Unsubscribe() {
	if sub == nil || sub.source == nil {
		return
	}
	s := sub.source
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, candidate := range s.subs {
		if candidate == sub {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

func (sub *Subscription) active() bool {
	s := sub.source
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, candidate := range s.subs {
		if candidate == sub {
			return true
		}
	}
	return false
}
