// Package progress implements observer-based progress reporting for long
// sequence generations. A Subject fans a stream of Update values out to any
// number of registered observers; the generator never blocks on a slow
// consumer because the channel observer drops updates when its buffer is
// full.
package progress

import (
	"sync"

	"github.com/agbru/fibseq/internal/logging"
)

// Update is a single progress report emitted during sequence generation.
type Update struct {
	// Value is the normalized completion ratio, 0.0 to 1.0.
	Value float64
	// Terms is the number of terms generated so far.
	Terms int
}

// Callback receives a normalized progress value (0.0 to 1.0). It
// implements Observer, so a bare function can be registered on a Subject
// when the caller has no use for the term count.
type Callback func(value float64)

// Notify forwards the update's completion ratio to the callback.
func (f Callback) Notify(update Update) { f(update.Value) }

// Observer receives progress updates from a Subject.
type Observer interface {
	// Notify delivers a single progress update. Implementations must not
	// block; the generation loop calls this inline.
	Notify(update Update)
}

// Subject maintains a set of observers and broadcasts updates to all of
// them. It is safe for concurrent registration and notification.
type Subject struct {
	mu        sync.RWMutex
	observers []Observer
}

// NewSubject creates an empty progress subject.
func NewSubject() *Subject {
	return &Subject{}
}

// Register adds an observer to the notification set. Nil observers are
// ignored.
func (s *Subject) Register(o Observer) {
	if o == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Unregister removes a previously registered observer. Unknown observers
// are ignored.
func (s *Subject) Unregister(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.observers {
		if existing == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// NotifyAll broadcasts an update to every registered observer.
func (s *Subject) NotifyAll(update Update) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.observers {
		o.Notify(update)
	}
}

// Len returns the number of registered observers.
func (s *Subject) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}

// ChannelObserver forwards updates to a channel, dropping updates when the
// channel buffer is full so the generation loop never blocks on display.
type ChannelObserver struct {
	ch chan<- Update
}

// NewChannelObserver creates an observer forwarding to ch. The channel
// should be buffered; unbuffered channels drop every update that finds no
// waiting receiver.
func NewChannelObserver(ch chan<- Update) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

// Notify sends the update without blocking.
func (c *ChannelObserver) Notify(update Update) {
	select {
	case c.ch <- update:
	default:
		// Consumer is behind; skip this update.
	}
}

// LoggingObserver writes progress updates to a structured logger at debug
// level. Useful for non-interactive runs where a spinner makes no sense.
type LoggingObserver struct {
	logger logging.Logger
}

// NewLoggingObserver creates an observer logging to the given logger.
func NewLoggingObserver(logger logging.Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger}
}

// Notify logs the update at debug level.
func (l *LoggingObserver) Notify(update Update) {
	l.logger.Debug("generation progress",
		logging.Float64("value", update.Value),
		logging.Int("terms", update.Terms),
	)
}

// NoOpObserver discards all updates. Useful as a placeholder in tests and
// quiet mode.
type NoOpObserver struct{}

// NewNoOpObserver creates a discarding observer.
func NewNoOpObserver() *NoOpObserver {
	return &NoOpObserver{}
}

// Notify discards the update.
func (NoOpObserver) Notify(Update) {}
