package cart

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maisonlux/boutique/internal/model"
)

var (
	testBag = model.Product{
		ID: "bag-001", Name: "GG Marmont Matelassé Mini Bag", Price: 1280, Category: "Bags",
	}
	testBelt = model.Product{
		ID: "belt-001", Name: "GG Supreme Web Belt", Price: 450, Category: "Accessories",
	}
	testWallet = model.Product{
		ID: "wallet-001", Name: "Marmont Card Case", Price: 320, Category: "Accessories",
	}
)

// notificationRecorder captures cart notifications for assertions.
type notificationRecorder struct {
	notifications []model.Notification
}

func (nr *notificationRecorder) record(n model.Notification) {
	nr.notifications = append(nr.notifications, n)
}

func (nr *notificationRecorder) last() model.Notification {
	if len(nr.notifications) == 0 {
		return model.Notification{}
	}
	return nr.notifications[len(nr.notifications)-1]
}

func newTestCart() (*Service, *notificationRecorder) {
	svc := NewService(nil)
	recorder := &notificationRecorder{}
	svc.SetNotifyCallback(recorder.record)
	return svc, recorder
}

func TestAdd_NewItem(t *testing.T) {
	svc, recorder := newTestCart()

	svc.Add(testBag, 2)

	items := svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "bag-001", items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)

	assert.Equal(t, model.NotifySuccess, recorder.last().Type)
	assert.Contains(t, recorder.last().Message, testBag.Name)
}

func TestAdd_AccumulatesAdditively(t *testing.T) {
	svc, _ := newTestCart()

	svc.Add(testBag, 2)
	svc.Add(testBag, 3)

	items := svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAdd_ClampsAtMaximum(t *testing.T) {
	svc, _ := newTestCart()

	svc.Add(testBag, 6)
	svc.Add(testBag, 6)

	items := svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, model.MaxQuantity, items[0].Quantity)
}

func TestAdd_ZeroQuantityCountsAsOne(t *testing.T) {
	svc, _ := newTestCart()

	svc.Add(testBag, 0)

	items := svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	svc, _ := newTestCart()

	svc.Add(testBelt, 1)
	svc.Add(testBag, 1)
	svc.Add(testWallet, 1)
	svc.Add(testBag, 1) // merge, must not reorder

	var ids []string
	for _, item := range svc.Items() {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"belt-001", "bag-001", "wallet-001"}, ids)
}

func TestRemove(t *testing.T) {
	svc, recorder := newTestCart()

	svc.Add(testBag, 1)
	svc.Add(testBelt, 1)
	svc.Remove("bag-001")

	items := svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "belt-001", items[0].ID)

	assert.Equal(t, model.NotifySuccess, recorder.last().Type)
	assert.Contains(t, recorder.last().Message, testBag.Name)
}

func TestRemove_AbsentIDIsSilentNoOp(t *testing.T) {
	svc, recorder := newTestCart()

	svc.Add(testBag, 1)
	before := len(recorder.notifications)

	svc.Remove("no-such-id")

	assert.Equal(t, 1, svc.Len())
	assert.Len(t, recorder.notifications, before, "no notification for absent remove")
}

func TestUpdateQuantity(t *testing.T) {
	svc, recorder := newTestCart()
	svc.Add(testBag, 2)

	tests := []struct {
		name        string
		qty         int
		wantErr     error
		expectedQty int
		notified    bool
	}{
		{"valid update", 7, nil, 7, false},
		{"above maximum rejected", 11, ErrQuantityTooHigh, 7, true},
		{"zero is silent no-op", 0, nil, 7, false},
		{"negative is silent no-op", -3, nil, 7, false},
		{"maximum allowed", 10, nil, 10, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			before := len(recorder.notifications)

			err := svc.UpdateQuantity("bag-001", test.qty)
			assert.ErrorIs(t, err, test.wantErr)

			item, ok := svc.Get("bag-001")
			require.True(t, ok)
			assert.Equal(t, test.expectedQty, item.Quantity)

			if test.notified {
				require.Greater(t, len(recorder.notifications), before)
				assert.Equal(t, model.NotifyError, recorder.last().Type)
			} else {
				assert.Len(t, recorder.notifications, before)
			}
		})
	}
}

func TestUpdateQuantity_AbsentIDIsNoOp(t *testing.T) {
	svc, _ := newTestCart()

	err := svc.UpdateQuantity("no-such-id", 5)
	assert.NoError(t, err)
	assert.Equal(t, 0, svc.Len())
}

func TestClear(t *testing.T) {
	svc, recorder := newTestCart()

	svc.Add(testBag, 1)
	svc.Add(testBelt, 1)
	svc.Clear()

	assert.Equal(t, 0, svc.Len())
	assert.Equal(t, 0, svc.Count())
	assert.Equal(t, "Cart cleared", recorder.last().Message)
}

func TestCount(t *testing.T) {
	svc, _ := newTestCart()

	svc.Add(testBag, 2)
	svc.Add(testBelt, 3)

	assert.Equal(t, 5, svc.Count())
	assert.Equal(t, 2, svc.Len())
}

func TestTotals(t *testing.T) {
	svc, _ := newTestCart()

	assert.Equal(t, model.Totals{}, svc.Totals())

	// 450 + 320 = 770: flat shipping applies
	svc.Add(testBelt, 1)
	svc.Add(testWallet, 1)

	totals := svc.Totals()
	assert.InDelta(t, 770.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 25.0, totals.Shipping, 1e-9)
	assert.InDelta(t, 61.6, totals.Tax, 1e-9)
	assert.InDelta(t, 856.6, totals.Total, 1e-9)

	// Adding the bag crosses the free-shipping threshold
	svc.Add(testBag, 1)
	assert.InDelta(t, 0.0, svc.Totals().Shipping, 1e-9)
	assert.True(t, svc.Totals().FreeShipping())
}

func TestSubscribe_EmitsOnEveryCommittedMutation(t *testing.T) {
	svc, _ := newTestCart()

	var events [][]model.CartItem
	svc.Subscribe(func(items []model.CartItem) {
		events = append(events, items)
	})

	svc.Add(testBag, 1)             // event 1
	svc.UpdateQuantity("bag-001", 3) // event 2
	svc.UpdateQuantity("bag-001", 0) // rejected silently, no event
	svc.Remove("no-such-id")         // no-op, no event
	svc.Remove("bag-001")            // event 3
	svc.Clear()                      // event 4

	require.Len(t, events, 4)
	assert.Equal(t, 1, events[0][0].Quantity)
	assert.Equal(t, 3, events[1][0].Quantity)
	assert.Empty(t, events[2])
	assert.Empty(t, events[3])
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	svc, _ := newTestCart()

	svc.Add(testBelt, 2)
	svc.Add(testBag, 1)
	svc.Add(testWallet, 4)

	snapshot := svc.Snapshot()

	restored := NewService(nil)
	restored.Restore(snapshot)

	assert.Equal(t, svc.Items(), restored.Items())
}

func TestRestore_ReimposesInvariants(t *testing.T) {
	svc, _ := newTestCart()

	svc.Restore([]model.CartItem{
		{Product: testBag, Quantity: 99},                          // clamped
		{Product: testBelt, Quantity: 0},                          // clamped up
		{Product: testBag, Quantity: 1},                           // duplicate dropped
		{Product: model.Product{Name: "orphan"}, Quantity: 1},     // no id, dropped
	})

	items := svc.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "bag-001", items[0].ID)
	assert.Equal(t, model.MaxQuantity, items[0].Quantity)
	assert.Equal(t, "belt-001", items[1].ID)
	assert.Equal(t, model.MinQuantity, items[1].Quantity)
}

// TestOperationSequences_InvariantsHold drives the cart through a long random
// operation sequence and checks the structural invariants after every step:
// no duplicate product ids, quantities within bounds.
func TestOperationSequences_InvariantsHold(t *testing.T) {
	svc, _ := newTestCart()
	products := []model.Product{testBag, testBelt, testWallet}
	rng := rand.New(rand.NewSource(42))

	checkInvariants := func() {
		seen := make(map[string]bool)
		for _, item := range svc.Items() {
			require.False(t, seen[item.ID], "duplicate product id %s", item.ID)
			seen[item.ID] = true
			require.GreaterOrEqual(t, item.Quantity, model.MinQuantity)
			require.LessOrEqual(t, item.Quantity, model.MaxQuantity)
		}
	}

	for i := 0; i < 1000; i++ {
		p := products[rng.Intn(len(products))]
		switch rng.Intn(4) {
		case 0:
			svc.Add(p, rng.Intn(15)-2)
		case 1:
			svc.Remove(p.ID)
		case 2:
			_ = svc.UpdateQuantity(p.ID, rng.Intn(15)-2)
		case 3:
			if rng.Intn(10) == 0 {
				svc.Clear()
			}
		}
		checkInvariants()
	}
}
