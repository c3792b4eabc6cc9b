package clientlist

import "sync"

// StatusChange names a confirmed status transition on one client.
type StatusChange struct {
	ClientID  int64
	OldStatus string
	NewStatus string
}

// Bus is a best-effort in-process broadcast for status changes: every
// currently-subscribed handler is invoked synchronously on Publish.
// There is no delivery guarantee beyond that and no propagation across
// processes.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(StatusChange)
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]func(StatusChange))}
}

// Subscription identifies one subscriber; Cancel detaches it.
type Subscription struct {
	bus *Bus
	id  int
}

// Cancel removes the subscriber. Safe to call more than once.
func (s *Subscription) Cancel() {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()
	delete(s.bus.subs, s.id)
}

// Subscribe registers fn to be called for every published change.
func (b *Bus) Subscribe(fn func(StatusChange)) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.subs[id] = fn
	return &Subscription{bus: b, id: id}
}

// Publish delivers ev to all current subscribers, synchronously, in
// unspecified order. Fire-and-forget: Publish never fails.
func (b *Bus) Publish(ev StatusChange) {
	b.mu.Lock()
	fns := make([]func(StatusChange), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}
