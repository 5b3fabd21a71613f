package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/maisonlux/boutique/internal/cart"
	"github.com/maisonlux/boutique/internal/model"
)

const (
	// DefaultProcessingDelay is the fixed simulated network latency.
	DefaultProcessingDelay = 2 * time.Second

	// DeclineDomain triggers the simulated decline branch: any form email
	// under this domain is declined after the processing delay.
	DeclineDomain = "decline.test"

	orderIDPrefix = "order-"
)

var (
	// ErrEmptyCart rejects a submit on an empty cart.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrOrderInFlight rejects a submit while another order is processing.
	ErrOrderInFlight = errors.New("an order is already being processed")

	// ErrClosed rejects submits after the service has been closed.
	ErrClosed = errors.New("checkout service is closed")
)

// FieldError reports a single invalid checkout form field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Service handles order submission against the cart.
type Service struct {
	cart   cart.Cart
	delay  time.Duration
	logger *zap.Logger

	mu       sync.Mutex
	current  *model.Order
	onUpdate func(*model.Order) // callback for UI updates

	ctx    context.Context
	cancel context.CancelFunc
}

// NewService creates a checkout service bound to a cart.
func NewService(c cart.Cart, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		cart:   c,
		delay:  DefaultProcessingDelay,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// SetUpdateCallback sets the callback function for order updates.
func (s *Service) SetUpdateCallback(callback func(*model.Order)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetProcessingDelay overrides the simulated latency. Tests use this.
func (s *Service) SetProcessingDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
}

// ValidateForm checks the required checkout fields. All fields must be
// non-empty after trimming; the email must have an "@" shape. An empty
// payment method defaults to card before validation elsewhere, so both known
// methods are accepted here.
func (s *Service) ValidateForm(form model.CheckoutForm) error {
	required := []struct {
		field string
		value string
	}{
		{"email", form.Email},
		{"firstName", form.FirstName},
		{"lastName", form.LastName},
		{"address", form.Address},
		{"city", form.City},
		{"zipCode", form.ZipCode},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &FieldError{Field: r.field, Reason: "must not be empty"}
		}
	}
	if !strings.Contains(form.Email, "@") {
		return &FieldError{Field: "email", Reason: "must contain @"}
	}
	if form.Payment != "" && form.Payment != model.PaymentCard && form.Payment != model.PaymentPayPal {
		return &FieldError{Field: "payment", Reason: "unknown payment method"}
	}
	return nil
}

// Submit validates the form and cart and starts processing the order in the
// background. It returns the in-flight order immediately; progress is
// reported through the update callback.
func (s *Service) Submit(form model.CheckoutForm) (*model.Order, error) {
	if form.Payment == "" {
		form.Payment = model.PaymentCard
	}
	if err := s.ValidateForm(form); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.ctx.Err() != nil {
		s.mu.Unlock()
		return nil, ErrClosed
	}
	if s.current != nil && s.current.Status.IsActive() {
		s.mu.Unlock()
		return nil, ErrOrderInFlight
	}

	items := s.cart.Snapshot()
	if len(items) == 0 {
		s.mu.Unlock()
		return nil, ErrEmptyCart
	}

	order := &model.Order{
		ID:       generateOrderID(),
		Status:   model.OrderStatusSubmitting,
		Items:    items,
		Totals:   model.CalculateTotals(items),
		Form:     form,
		PlacedAt: time.Now(),
	}
	s.current = order
	s.mu.Unlock()

	s.logger.Info("order submitted",
		zap.String("order", order.ID),
		zap.Int("items", order.ItemCount()),
		zap.Float64("total", order.Totals.Total))

	s.notifyUpdate(order)
	go s.process(order)

	return order, nil
}

// CurrentOrder returns the most recent order, if any.
func (s *Service) CurrentOrder() (*model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.current != nil
}

// Close cancels any in-flight processing. A completion racing with Close is
// discarded: neither the cart nor the order state is touched afterwards.
func (s *Service) Close() {
	s.cancel()
}

// process waits out the simulated latency and finishes the order.
func (s *Service) process(order *model.Order) {
	s.mu.Lock()
	delay := s.delay
	s.mu.Unlock()

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-s.ctx.Done():
		s.logger.Info("checkout cancelled mid-delay, dropping completion",
			zap.String("order", order.ID))
		return
	case <-timer.C:
	}

	declined := isDeclined(order.Form)

	s.mu.Lock()
	if declined {
		order.Status = model.OrderStatusDeclined
		order.LastError = "payment was declined"
	} else {
		order.Status = model.OrderStatusCompleted
	}
	order.FinishedAt = time.Now()
	s.mu.Unlock()

	if declined {
		s.logger.Warn("order declined", zap.String("order", order.ID))
	} else {
		// The success message replaces any cleared-cart notice, so the
		// cart is reset silently.
		s.cart.Reset()
		s.logger.Info("order completed", zap.String("order", order.ID))
	}

	s.notifyUpdate(order)
}

// isDeclined implements the deterministic simulated-decline rule.
func isDeclined(form model.CheckoutForm) bool {
	return strings.HasSuffix(strings.ToLower(form.Email), "@"+DeclineDomain)
}

// notifyUpdate calls the update callback if set.
func (s *Service) notifyUpdate(order *model.Order) {
	s.mu.Lock()
	callback := s.onUpdate
	s.mu.Unlock()
	if callback != nil {
		callback(order)
	}
}

// generateOrderID generates a unique order ID using UUID v7 so orders sort
// chronologically.
func generateOrderID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(orderIDPrefix+"%d", time.Now().UnixNano())
	}
	return orderIDPrefix + id.String()
}
