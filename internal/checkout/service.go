package checkout

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/amansinghakash/legacy-battery/internal/cart"
	"github.com/amansinghakash/legacy-battery/internal/domain"
	"github.com/amansinghakash/legacy-battery/internal/events"
)

// DefaultClearDelay is how long after a successful order the cart is kept,
// so the success view can still show what was bought before the badge
// empties. It is presentation polish, not a correctness requirement.
const DefaultClearDelay = 2 * time.Second

// State is a snapshot of one session's checkout, with totals computed fresh
// on every call.
type State struct {
	Step     domain.CheckoutStep
	Shipping domain.ShippingDetails
	Payment  domain.PaymentMethod
	Totals   domain.OrderTotals
	Order    *domain.Order // set once the order is placed
}

type session struct {
	step     domain.CheckoutStep
	shipping domain.ShippingDetails
	payment  domain.PaymentMethod
	order    *domain.Order
}

// Service drives the cart → shipping → payment → success flow, one checkout
// per browsing session. All transitions happen under a single lock; guards
// reject a transition without losing any draft field.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*session
	timers   map[string]*time.Timer

	carts      *cart.Service
	publisher  events.OrderPublisher
	logger     *zap.Logger
	clearDelay time.Duration
}

func NewService(carts *cart.Service, publisher events.OrderPublisher, logger *zap.Logger, clearDelay time.Duration) *Service {
	return &Service{
		sessions:   make(map[string]*session),
		timers:     make(map[string]*time.Timer),
		carts:      carts,
		publisher:  publisher,
		logger:     logger,
		clearDelay: clearDelay,
	}
}

// Begin enters checkout for the session. An in-progress checkout is resumed;
// a finished one is discarded and restarted. Entering with an empty cart
// returns ErrEmptyCart, which callers render as the empty-cart view.
func (s *Service) Begin(ctx context.Context, sessionID string) (*State, error) {
	count, err := s.carts.CartCount(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	sess, exists := s.sessions[sessionID]
	if exists && !sess.step.IsTerminal() {
		snapshot := *sess
		s.mu.Unlock()
		return s.snapshotState(ctx, sessionID, &snapshot)
	}
	if count == 0 {
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		return nil, ErrEmptyCart
	}
	sess = &session{step: domain.StepCart, payment: domain.PaymentMethodCard}
	s.sessions[sessionID] = sess
	snapshot := *sess
	s.mu.Unlock()

	return s.snapshotState(ctx, sessionID, &snapshot)
}

// State returns the current checkout snapshot for the session.
func (s *Service) State(ctx context.Context, sessionID string) (*State, error) {
	s.mu.Lock()
	sess, exists := s.sessions[sessionID]
	if !exists {
		s.mu.Unlock()
		return nil, ErrNotStarted
	}
	snapshot := *sess
	s.mu.Unlock()

	return s.snapshotState(ctx, sessionID, &snapshot)
}

// SaveDraft stores the shipping form and payment method as typed so far.
// No validation happens here; guards validate on forward transitions.
func (s *Service) SaveDraft(_ context.Context, sessionID string, shipping domain.ShippingDetails, payment domain.PaymentMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, exists := s.sessions[sessionID]
	if !exists {
		return ErrNotStarted
	}
	if sess.step.IsTerminal() {
		return ErrIllegalTransition
	}

	sess.shipping = shipping
	if payment != "" {
		sess.payment = payment
	}
	return nil
}

// GoToStep moves the session to the given step, enforcing the transition
// table and the shipping guard. Success is only reachable via PlaceOrder.
func (s *Service) GoToStep(ctx context.Context, sessionID string, to domain.CheckoutStep) (*State, error) {
	s.mu.Lock()
	sess, exists := s.sessions[sessionID]
	if !exists {
		s.mu.Unlock()
		return nil, ErrNotStarted
	}

	if to == domain.StepSuccess || !domain.CanTransitionTo(sess.step, to) {
		s.mu.Unlock()
		return nil, ErrIllegalTransition
	}

	if sess.step.IsForward(to) && sess.step == domain.StepShipping {
		if missing := sess.shipping.MissingFields(); len(missing) > 0 {
			s.mu.Unlock()
			return nil, &domain.ValidationError{MissingFields: missing}
		}
	}

	sess.step = to
	snapshot := *sess
	s.mu.Unlock()

	return s.snapshotState(ctx, sessionID, &snapshot)
}

// Advance moves one step forward from the current one.
func (s *Service) Advance(ctx context.Context, sessionID string) (*State, error) {
	s.mu.Lock()
	sess, exists := s.sessions[sessionID]
	if !exists {
		s.mu.Unlock()
		return nil, ErrNotStarted
	}
	var to domain.CheckoutStep
	switch sess.step {
	case domain.StepCart:
		to = domain.StepShipping
	case domain.StepShipping:
		to = domain.StepPayment
	default:
		s.mu.Unlock()
		return nil, ErrIllegalTransition
	}
	s.mu.Unlock()

	return s.GoToStep(ctx, sessionID, to)
}

// Back moves one step backward from the current one.
func (s *Service) Back(ctx context.Context, sessionID string) (*State, error) {
	s.mu.Lock()
	sess, exists := s.sessions[sessionID]
	if !exists {
		s.mu.Unlock()
		return nil, ErrNotStarted
	}
	var to domain.CheckoutStep
	switch sess.step {
	case domain.StepShipping:
		to = domain.StepCart
	case domain.StepPayment:
		to = domain.StepShipping
	default:
		s.mu.Unlock()
		return nil, ErrIllegalTransition
	}
	s.mu.Unlock()

	return s.GoToStep(ctx, sessionID, to)
}

// PlaceOrder finishes checkout from the payment step. Shipping fields are
// re-validated; payment details are collected but never validated, the
// payment itself is simulated. On success the order gets a generated id,
// an order-placed event is published, and the cart is cleared after the
// configured delay.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string) (*domain.Order, error) {
	cartState, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	sess, exists := s.sessions[sessionID]
	if !exists {
		s.mu.Unlock()
		return nil, ErrNotStarted
	}
	if !domain.CanTransitionTo(sess.step, domain.StepSuccess) {
		s.mu.Unlock()
		return nil, ErrIllegalTransition
	}
	if missing := sess.shipping.MissingFields(); len(missing) > 0 {
		s.mu.Unlock()
		return nil, &domain.ValidationError{MissingFields: missing}
	}
	if len(cartState.Items) == 0 {
		s.mu.Unlock()
		return nil, ErrEmptyCart
	}

	order := &domain.Order{
		ID:        NewOrderID(),
		SessionID: sessionID,
		Items:     cartState.Items,
		Shipping:  sess.shipping,
		Payment:   sess.payment,
		Totals:    CalculateTotals(cartState.Items),
		PlacedAt:  time.Now(),
	}

	sess.step = domain.StepSuccess
	sess.order = order
	s.scheduleCartClear(sessionID)
	s.mu.Unlock()

	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("session_id", sessionID),
		zap.Float64("total", order.Totals.Total),
	)

	go s.publishOrderPlaced(order)

	return order, nil
}

// Abandon leaves checkout, discarding the draft. The cart is untouched; a
// pending post-success clear still runs.
func (s *Service) Abandon(_ context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// Close stops pending cart-clear timers.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	return nil
}

// scheduleCartClear arranges the post-success cart clear. Callers hold s.mu.
func (s *Service) scheduleCartClear(sessionID string) {
	clear := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.carts.ClearCart(ctx, sessionID); err != nil {
			s.logger.Error("failed to clear cart after order", zap.Error(err), zap.String("session_id", sessionID))
		}
		s.mu.Lock()
		delete(s.timers, sessionID)
		s.mu.Unlock()
	}

	if s.clearDelay <= 0 {
		go clear()
		return
	}

	if existing, ok := s.timers[sessionID]; ok {
		existing.Stop()
	}
	s.timers[sessionID] = time.AfterFunc(s.clearDelay, clear)
}

func (s *Service) publishOrderPlaced(order *domain.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	event := events.OrderPlacedEvent{
		OrderID:   order.ID,
		SessionID: order.SessionID,
		Items:     order.Items,
		Subtotal:  order.Totals.Subtotal,
		Tax:       order.Totals.Tax,
		Shipping:  order.Totals.Shipping,
		Total:     order.Totals.Total,
		PlacedAt:  order.PlacedAt,
	}

	// Publication is best-effort: the order is already placed.
	if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
		s.logger.Warn("failed to publish order event", zap.Error(err), zap.String("order_id", order.ID))
	}
}

// snapshotState fills in fresh totals for a session snapshot. After success
// the totals are frozen on the order, since the cart is about to empty.
func (s *Service) snapshotState(ctx context.Context, sessionID string, sess *session) (*State, error) {
	state := &State{
		Step:     sess.step,
		Shipping: sess.shipping,
		Payment:  sess.payment,
		Order:    sess.order,
	}

	if sess.order != nil {
		state.Totals = sess.order.Totals
		return state, nil
	}

	cartState, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	state.Totals = CalculateTotals(cartState.Items)
	return state, nil
}
