package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/maisonlux/boutique/internal/cart"
	"github.com/maisonlux/boutique/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testProduct = model.Product{
	ID: "wallet-001", Name: "Marmont Card Case", Price: 320, Category: "Accessories",
}

func validForm() model.CheckoutForm {
	return model.CheckoutForm{
		Email:     "customer@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Address:   "12 Via Condotti",
		City:      "Rome",
		ZipCode:   "00187",
		Payment:   model.PaymentCard,
	}
}

// newTestCheckout returns a checkout service with a short processing delay
// and a channel receiving every order update.
func newTestCheckout(t *testing.T) (*Service, cart.Cart, chan *model.Order) {
	t.Helper()
	c := cart.NewService(nil)
	svc := NewService(c, nil)
	svc.SetProcessingDelay(10 * time.Millisecond)
	t.Cleanup(svc.Close)

	updates := make(chan *model.Order, 8)
	svc.SetUpdateCallback(func(o *model.Order) { updates <- o })
	return svc, c, updates
}

func waitForStatus(t *testing.T, updates chan *model.Order, status model.OrderStatus) *model.Order {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case order := <-updates:
			if order.Status == status {
				return order
			}
		case <-deadline:
			t.Fatalf("timed out waiting for order status %s", status)
		}
	}
}

func TestSubmit_EmptyCartRejected(t *testing.T) {
	svc, _, _ := newTestCheckout(t)

	_, err := svc.Submit(validForm())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestValidateForm(t *testing.T) {
	svc, _, _ := newTestCheckout(t)

	tests := []struct {
		name    string
		mutate  func(*model.CheckoutForm)
		field   string
	}{
		{"missing email", func(f *model.CheckoutForm) { f.Email = "" }, "email"},
		{"blank first name", func(f *model.CheckoutForm) { f.FirstName = "   " }, "firstName"},
		{"missing last name", func(f *model.CheckoutForm) { f.LastName = "" }, "lastName"},
		{"missing address", func(f *model.CheckoutForm) { f.Address = "" }, "address"},
		{"missing city", func(f *model.CheckoutForm) { f.City = "" }, "city"},
		{"missing zip", func(f *model.CheckoutForm) { f.ZipCode = "" }, "zipCode"},
		{"email without at sign", func(f *model.CheckoutForm) { f.Email = "not-an-email" }, "email"},
		{"unknown payment method", func(f *model.CheckoutForm) { f.Payment = "bitcoin" }, "payment"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			form := validForm()
			test.mutate(&form)

			err := svc.ValidateForm(form)
			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, test.field, fieldErr.Field)
		})
	}

	assert.NoError(t, svc.ValidateForm(validForm()))
}

func TestSubmit_CompletesAndClearsCart(t *testing.T) {
	svc, c, updates := newTestCheckout(t)
	c.Add(testProduct, 2)

	var notifications []model.Notification
	c.SetNotifyCallback(func(n model.Notification) { notifications = append(notifications, n) })

	order, err := svc.Submit(validForm())
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusSubmitting, order.Status)
	require.Len(t, order.Items, 1)
	assert.InDelta(t, 640.0, order.Totals.Subtotal, 1e-9)

	submitted := waitForStatus(t, updates, model.OrderStatusSubmitting)
	assert.Equal(t, order.ID, submitted.ID)

	completed := waitForStatus(t, updates, model.OrderStatusCompleted)
	assert.Equal(t, order.ID, completed.ID)
	assert.False(t, completed.FinishedAt.IsZero())

	assert.Equal(t, 0, c.Len(), "successful checkout clears the cart")
	assert.Empty(t, notifications, "the cart is reset silently on success")

	// Snapshot taken at submit time survives the clear
	assert.Len(t, completed.Items, 1)
}

func TestSubmit_SimulatedDecline(t *testing.T) {
	svc, c, updates := newTestCheckout(t)
	c.Add(testProduct, 1)

	form := validForm()
	form.Email = "customer@decline.test"

	_, err := svc.Submit(form)
	require.NoError(t, err)

	declined := waitForStatus(t, updates, model.OrderStatusDeclined)
	assert.NotEmpty(t, declined.LastError)
	assert.Equal(t, 1, c.Len(), "declined order leaves the cart untouched")
}

func TestSubmit_RejectsWhileInFlight(t *testing.T) {
	svc, c, updates := newTestCheckout(t)
	svc.SetProcessingDelay(200 * time.Millisecond)
	c.Add(testProduct, 1)

	_, err := svc.Submit(validForm())
	require.NoError(t, err)

	_, err = svc.Submit(validForm())
	assert.ErrorIs(t, err, ErrOrderInFlight)

	waitForStatus(t, updates, model.OrderStatusCompleted)
}

func TestSubmit_AllowedAfterFinishedOrder(t *testing.T) {
	svc, c, updates := newTestCheckout(t)
	c.Add(testProduct, 1)

	_, err := svc.Submit(validForm())
	require.NoError(t, err)
	waitForStatus(t, updates, model.OrderStatusCompleted)

	c.Add(testProduct, 1)
	second, err := svc.Submit(validForm())
	require.NoError(t, err)
	waitForStatus(t, updates, model.OrderStatusCompleted)

	current, ok := svc.CurrentOrder()
	require.True(t, ok)
	assert.Equal(t, second.ID, current.ID)
}

func TestSubmit_DefaultsPaymentToCard(t *testing.T) {
	svc, c, updates := newTestCheckout(t)
	c.Add(testProduct, 1)

	form := validForm()
	form.Payment = ""

	order, err := svc.Submit(form)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentCard, order.Form.Payment)

	waitForStatus(t, updates, model.OrderStatusCompleted)
}

func TestClose_DiscardsCompletionMidDelay(t *testing.T) {
	c := cart.NewService(nil)
	svc := NewService(c, nil)
	svc.SetProcessingDelay(50 * time.Millisecond)

	updates := make(chan *model.Order, 8)
	svc.SetUpdateCallback(func(o *model.Order) { updates <- o })

	c.Add(testProduct, 3)

	order, err := svc.Submit(validForm())
	require.NoError(t, err)

	svc.Close()

	// Give the dropped completion time to have fired if it were going to
	time.Sleep(150 * time.Millisecond)

	assert.Equal(t, 3, c.Count(), "cart must not be touched after Close")
	assert.Equal(t, model.OrderStatusSubmitting, order.Status, "order never finishes")

	_, err = svc.Submit(validForm())
	assert.ErrorIs(t, err, ErrClosed)
}
