package field

import (
	"context"
	"sync"
)

// Change is published after every validation a controller performs.
type Change struct {
	FieldID string
	Field   string
	Trigger Trigger
	Valid   bool
	// Error is the current error message, empty when Valid.
	Error string
}

// Feed fans field changes out to any number of subscribers, typically a form
// that enables its submit action once every field it tracks reports valid.
// A subscriber whose buffer is full misses the change; publishing never blocks.
// All methods are safe for concurrent use.
type Feed struct {
	mu       sync.RWMutex
	subs     map[*Subscription]struct{}
	buffer   int
	closed   bool
	watchers sync.WaitGroup
}

// NewFeed creates a feed whose subscribers buffer up to buffer changes.
// The buffer is at least 1.
func NewFeed(buffer int) *Feed {
	return &Feed{
		subs:   make(map[*Subscription]struct{}),
		buffer: max(buffer, 1),
	}
}

// Subscription receives changes from a Feed until it is closed.
type Subscription struct {
	feed *Feed
	ch   chan Change
	done chan struct{}
	once sync.Once
}

// Changes returns the channel changes are delivered on.
// It is closed when the subscription or the feed is closed.
func (s *Subscription) Changes() <-chan Change {
	return s.ch
}

// Close stops delivery. It is safe to call more than once.
func (s *Subscription) Close() {
	s.feed.remove(s)
}

func (s *Subscription) shut() {
	s.once.Do(func() {
		close(s.done)
		close(s.ch)
	})
}

// Subscribe registers a new subscriber. The subscription ends when ctx is
// cancelled or Close is called. Subscribing to a closed feed returns a
// subscription whose channel is already closed.
func (f *Feed) Subscribe(ctx context.Context) *Subscription {
	sub := &Subscription{
		feed: f,
		ch:   make(chan Change, f.buffer),
		done: make(chan struct{}),
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		sub.shut()
		return sub
	}
	f.subs[sub] = struct{}{}

	if ctx.Done() != nil {
		f.watchers.Add(1)
		go func() {
			defer f.watchers.Done()
			select {
			case <-ctx.Done():
				f.remove(sub)
			case <-sub.done:
			}
		}()
	}

	return sub
}

// Publish delivers change to every subscriber with room in its buffer.
func (f *Feed) Publish(change Change) error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.closed {
		return ErrFeedClosed
	}

	for sub := range f.subs {
		select {
		case sub.ch <- change:
		default:
		}
	}
	return nil
}

// Close closes every subscription. Later calls are no-ops.
func (f *Feed) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true
	for sub := range f.subs {
		sub.shut()
	}
	clear(f.subs)
	f.mu.Unlock()

	f.watchers.Wait()
	return nil
}

func (f *Feed) remove(sub *Subscription) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.subs, sub)
	sub.shut()
}
