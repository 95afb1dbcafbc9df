/*
signal.go - Synchronous change notification

PURPOSE:
  UI bindings and other observers attach to a Signal per observable field
  (total, participant list, each participant's amount). Emit runs every
  handler in the caller's goroutine, after the engine has committed the
  change and before the mutating call returns. There is no batching,
  coalescing or async dispatch.

USAGE:
  sub := engine.TotalChanged.Subscribe(func(total float64) {
      fmt.Println("total is now", total)
  })
  defer sub.Unsubscribe()

SEE ALSO:
  - engine.go: Emits TotalChanged, ParticipantsChanged, AmountChanged
*/
package generic

import (
	"sync"

	"github.com/google/uuid"
)

// Handler receives a committed value.
type Handler[T any] func(T)

// Signal is a typed, synchronous publish point.
// The zero value is ready to use.
type Signal[T any] struct {
	mu       sync.Mutex
	handlers []*subscription[T]
}

type subscription[T any] struct {
	id      string
	handler Handler[T]
	signal  *Signal[T]
}

// Subscription is returned by Subscribe.
type Subscription interface {
	ID() string
	Unsubscribe()
}

// Subscribe registers a handler. Handlers run in subscription order.
func (s *Signal[T]) Subscribe(h Handler[T]) Subscription {
	sub := &subscription[T]{
		id:      uuid.New().String(),
		handler: h,
		signal:  s,
	}

	s.mu.Lock()
	s.handlers = append(s.handlers, sub)
	s.mu.Unlock()

	return sub
}

// Emit calls every handler with v. Handlers may subscribe or unsubscribe
// while being called; changes apply to the next Emit.
func (s *Signal[T]) Emit(v T) {
	s.mu.Lock()
	handlers := make([]*subscription[T], len(s.handlers))
	copy(handlers, s.handlers)
	s.mu.Unlock()

	for _, sub := range handlers {
		sub.handler(v)
	}
}

// Len returns the number of active subscriptions.
func (s *Signal[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handlers)
}

func (sub *subscription[T]) ID() string { return sub.id }

func (sub *subscription[T]) Unsubscribe() {
	s := sub.signal
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, h := range s.handlers {
		if h == sub {
			s.handlers = append(s.handlers[:i:i], s.handlers[i+1:]...)
			return
		}
	}
}
