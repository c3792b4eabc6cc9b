package clientlist

import (
	"sync"

	"delivery_tracker/internal/model"
)

// Store holds one view's list state: the clients fetched for its status
// scope, the active filters and the loading flag. Every mutation method
// is meant to be called only after the directory store confirmed the
// operation; a failed call therefore leaves the Store untouched and the
// caller simply never invokes the corresponding method.
type Store struct {
	mu      sync.Mutex
	status  string // status scope this view was loaded for; "" means unscoped
	filter  Filter
	streets []model.Street
	clients []model.Client
	loading bool
}

// NewStore creates a view state container scoped to the given status.
// An empty status means the view shows clients of every status.
func NewStore(status string) *Store {
	return &Store{status: status}
}

// Status returns the status scope the store was created with.
func (s *Store) Status() string {
	return s.status
}

// BeginLoad marks a fetch as in flight.
func (s *Store) BeginLoad() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
}

// Loaded replaces the snapshot with a fetch result and clears the
// loading flag.
func (s *Store) Loaded(clients []model.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = append(s.clients[:0:0], clients...)
	s.loading = false
}

// Loading reports whether a fetch is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// SetFilter replaces the search/address filter.
func (s *Store) SetFilter(f Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
}

// SetStreets replaces the street reference list used for ordering.
func (s *Store) SetStreets(streets []model.Street) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.streets = append(s.streets[:0:0], streets...)
}

// ClientCreated appends a store-confirmed new client. Whether it shows
// up is decided by Visible, so a client outside the current filter is
// carried but not rendered.
func (s *Store) ClientCreated(c model.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = append(s.clients, c)
}

// ClientUpdated replaces the record with the same identifier in place,
// preserving its list position. Unknown identifiers are ignored.
func (s *Store) ClientUpdated(c model.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.clients {
		if s.clients[i].ID == c.ID {
			s.clients[i] = c
			return
		}
	}
}

// ClientDeleted removes the record with the given identifier
// unconditionally, regardless of the current filter. Removing an absent
// identifier is a no-op.
func (s *Store) ClientDeleted(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.clients {
		if s.clients[i].ID == id {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			return
		}
	}
}

// StatusChanged applies a confirmed status transition. When the new
// status leaves this view's scope the record is dropped; a view scoped
// to the new status picks the record up on its next fetch rather than
// being live-patched here.
func (s *Store) StatusChanged(id int64, newStatus string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == "" || newStatus == s.status {
		for i := range s.clients {
			if s.clients[i].ID == id {
				s.clients[i].Status = newStatus
				return
			}
		}
		return
	}
	for i := range s.clients {
		if s.clients[i].ID == id {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			return
		}
	}
}

// Visible returns the render-ready list: the snapshot narrowed by the
// status scope and the active filter, sorted by the street reference
// order. The returned slice is a copy.
func (s *Store) Visible() []model.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	scoped := make([]model.Client, 0, len(s.clients))
	for _, c := range s.clients {
		if s.status != "" && c.Status != s.status {
			continue
		}
		scoped = append(scoped, c)
	}
	return Apply(scoped, s.filter, s.streets)
}

// Attach subscribes the store to a bus so confirmed status changes made
// elsewhere in the process apply their transition here. Cancel the
// returned subscription when the view goes away.
func (s *Store) Attach(b *Bus) *Subscription {
	return b.Subscribe(func(ev StatusChange) {
		s.StatusChanged(ev.ClientID, ev.NewStatus)
	})
}
