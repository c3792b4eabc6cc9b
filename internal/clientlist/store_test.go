package clientlist

import (
	"testing"

	"delivery_tracker/internal/model"

	"github.com/stretchr/testify/assert"
)

func pendingClient(id int64, name, address string) model.Client {
	return model.Client{ID: id, FullName: name, Address: address, Phone: "070", Status: model.StatusPending}
}

func TestStore_LoadedClearsLoading(t *testing.T) {
	s := NewStore(model.StatusPending)

	s.BeginLoad()
	assert.True(t, s.Loading())

	s.Loaded([]model.Client{pendingClient(1, "A", "Oak 1")})
	assert.False(t, s.Loading())
	assert.Len(t, s.Visible(), 1)
}

func TestStore_ClientCreatedOutsideScopeIsCarriedButHidden(t *testing.T) {
	s := NewStore(model.StatusPending)
	s.Loaded(nil)

	delivered := pendingClient(1, "A", "Oak 1")
	delivered.Status = model.StatusDelivered
	s.ClientCreated(delivered)
	s.ClientCreated(pendingClient(2, "B", "Oak 2"))

	visible := s.Visible()
	assert.Len(t, visible, 1)
	assert.Equal(t, int64(2), visible[0].ID)
}

func TestStore_ClientUpdatedReplacesInPlace(t *testing.T) {
	s := NewStore("")
	s.Loaded([]model.Client{pendingClient(1, "A", "Oak 1"), pendingClient(2, "B", "Oak 2")})

	updated := pendingClient(1, "A renamed", "Oak 1")
	s.ClientUpdated(updated)

	visible := s.Visible()
	assert.Equal(t, "A renamed", visible[0].FullName)
	assert.Len(t, visible, 2)
}

func TestStore_ClientUpdatedUnknownIDIsIgnored(t *testing.T) {
	s := NewStore("")
	s.Loaded([]model.Client{pendingClient(1, "A", "Oak 1")})

	s.ClientUpdated(pendingClient(99, "Ghost", "Oak 9"))

	assert.Len(t, s.Visible(), 1)
}

func TestStore_ClientDeletedRemovesExactlyOne(t *testing.T) {
	s := NewStore("")
	s.SetFilter(Filter{Search: "zzz"}) // delete ignores the active filter
	s.Loaded([]model.Client{pendingClient(1, "A", "Oak 1"), pendingClient(2, "B", "Oak 2")})

	s.ClientDeleted(1)
	s.SetFilter(Filter{})

	visible := s.Visible()
	assert.Len(t, visible, 1)
	assert.Equal(t, int64(2), visible[0].ID)
}

func TestStore_ClientDeletedAbsentIsNoop(t *testing.T) {
	s := NewStore("")
	s.Loaded([]model.Client{pendingClient(1, "A", "Oak 1")})

	s.ClientDeleted(42)

	assert.Len(t, s.Visible(), 1)
}

func TestStore_StatusChangeAwayFromScopeRemoves(t *testing.T) {
	// Scenario D: pending -> undelivered drops the record from a
	// pending-scoped view.
	s := NewStore(model.StatusPending)
	s.Loaded([]model.Client{pendingClient(1, "A", "Oak 1"), pendingClient(2, "B", "Oak 2")})

	s.StatusChanged(1, model.StatusUndelivered)

	visible := s.Visible()
	assert.Len(t, visible, 1)
	assert.Equal(t, int64(2), visible[0].ID)
}

func TestStore_StatusChangeWithinScopeKeeps(t *testing.T) {
	s := NewStore("")
	s.Loaded([]model.Client{pendingClient(1, "A", "Oak 1")})

	s.StatusChanged(1, model.StatusDelivered)

	visible := s.Visible()
	assert.Len(t, visible, 1)
	assert.Equal(t, model.StatusDelivered, visible[0].Status)
}

func TestStore_FailedCallLeavesListUntouched(t *testing.T) {
	// Scenario E: a failed create never reaches the store, so the
	// visible list is identical by identity and order.
	s := NewStore(model.StatusPending)
	s.SetStreets(streetRefs("Oak"))
	s.Loaded([]model.Client{pendingClient(1, "A", "Oak 1"), pendingClient(2, "B", "Oak 2")})

	before := s.Visible()
	// create fails against the directory store: no mutation method is called
	after := s.Visible()

	assert.Equal(t, before, after)
}

func TestStore_VisibleAppliesFilterAndOrder(t *testing.T) {
	s := NewStore(model.StatusPending)
	s.SetStreets(streetRefs("Oak", "Pine"))
	s.Loaded([]model.Client{
		pendingClient(1, "A", "Pine 5"),
		pendingClient(2, "B", "Oak 12"),
		pendingClient(3, "C", "Oak 3"),
	})

	assert.Equal(t, []string{"Oak 3", "Oak 12", "Pine 5"}, addresses(s.Visible()))

	s.SetFilter(Filter{Address: "Oak"})
	assert.Equal(t, []string{"Oak 3", "Oak 12"}, addresses(s.Visible()))
}
