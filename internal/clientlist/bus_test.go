package clientlist

import (
	"testing"

	"delivery_tracker/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestBus_PublishDeliversSynchronously(t *testing.T) {
	b := NewBus()
	var got []StatusChange
	sub := b.Subscribe(func(ev StatusChange) { got = append(got, ev) })
	defer sub.Cancel()

	ev := StatusChange{ClientID: 7, OldStatus: model.StatusPending, NewStatus: model.StatusDelivered}
	b.Publish(ev)

	assert.Equal(t, []StatusChange{ev}, got)
}

func TestBus_CancelStopsDelivery(t *testing.T) {
	b := NewBus()
	calls := 0
	sub := b.Subscribe(func(StatusChange) { calls++ })

	b.Publish(StatusChange{ClientID: 1})
	sub.Cancel()
	sub.Cancel() // second cancel is harmless
	b.Publish(StatusChange{ClientID: 2})

	assert.Equal(t, 1, calls)
}

func TestBus_MultipleSubscribersAllReceive(t *testing.T) {
	b := NewBus()
	a, c := 0, 0
	subA := b.Subscribe(func(StatusChange) { a++ })
	subC := b.Subscribe(func(StatusChange) { c++ })
	defer subA.Cancel()
	defer subC.Cancel()

	b.Publish(StatusChange{ClientID: 1})

	assert.Equal(t, 1, a)
	assert.Equal(t, 1, c)
}

func TestStore_AttachAppliesBusTransitions(t *testing.T) {
	b := NewBus()
	pendingView := NewStore(model.StatusPending)
	pendingView.Loaded([]model.Client{pendingClient(1, "A", "Oak 1")})
	sub := pendingView.Attach(b)

	b.Publish(StatusChange{ClientID: 1, OldStatus: model.StatusPending, NewStatus: model.StatusDelivered})
	assert.Empty(t, pendingView.Visible(), "record left the view's status scope")

	sub.Cancel()
	pendingView.Loaded([]model.Client{pendingClient(2, "B", "Oak 2")})
	b.Publish(StatusChange{ClientID: 2, OldStatus: model.StatusPending, NewStatus: model.StatusDelivered})
	assert.Len(t, pendingView.Visible(), 1, "cancelled view no longer reacts")
}
