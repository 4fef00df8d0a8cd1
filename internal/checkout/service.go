package checkout

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"accstore-be/internal/cart"
	"accstore-be/internal/logger"
	"accstore-be/internal/metrics"
	"accstore-be/internal/notification"
	"accstore-be/internal/order"
	"accstore-be/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultPaymentMethod applies when the storefront sends none.
	DefaultPaymentMethod = "USDT"

	// RedirectDelay gives the user a moment to read the confirmation
	// before the storefront navigates back to the catalog.
	RedirectDelay = 3 * time.Second
)

type SubmitInput struct {
	SessionID        string
	CustomerName     string
	TelegramUsername string
	PaymentMethod    string
	Agreed           bool
}

type Result struct {
	OrderIDs      []uint
	GroupID       uuid.UUID
	Total         float64
	RedirectAfter time.Duration
}

// OrderGroupEvent is pushed to live admin dashboards after a successful
// submission.
type OrderGroupEvent struct {
	GroupID      uuid.UUID `json:"order_group_id"`
	OrderIDs     []uint    `json:"order_ids"`
	CustomerName string    `json:"customer_name"`
	Total        float64   `json:"total"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// Publisher fans a new order group out to connected admin clients.
// Best-effort, like the notification sink.
type Publisher interface {
	PublishOrderGroup(event OrderGroupEvent)
}

type Service interface {
	Submit(ctx context.Context, input SubmitInput) (*Result, error)
}

type service struct {
	carts   *cart.Manager
	users   user.Repository
	orders  order.Repository
	sink    notification.Sink
	pub     Publisher
	metrics *metrics.Metrics
	timeout time.Duration

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewService wires the checkout flow. pub may be nil when no live feed is
// attached.
func NewService(
	carts *cart.Manager,
	users user.Repository,
	orders order.Repository,
	sink notification.Sink,
	pub Publisher,
	m *metrics.Metrics,
	timeout time.Duration,
) Service {
	if m == nil {
		m = metrics.New()
	}
	return &service{
		carts:    carts,
		users:    users,
		orders:   orders,
		sink:     sink,
		pub:      pub,
		metrics:  m,
		timeout:  timeout,
		inFlight: make(map[string]struct{}),
	}
}

func (s *service) Submit(ctx context.Context, input SubmitInput) (*Result, error) {
	timer := metrics.StartTimer()
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Submit"),
		zap.String("session_id", input.SessionID),
	)

	// Every precondition is checked before any store or network call.
	if input.SessionID == "" {
		s.metrics.SubmissionsRejected.Inc()
		return nil, ErrIdentityRequired
	}
	if err := validateFields(input); err != nil {
		s.metrics.SubmissionsRejected.Inc()
		return nil, err
	}

	lines := s.carts.Lines(input.SessionID)
	if len(lines) == 0 {
		s.metrics.SubmissionsRejected.Inc()
		return nil, ErrEmptyCart
	}

	if !s.acquire(input.SessionID) {
		s.metrics.SubmissionsRejected.Inc()
		return nil, ErrSubmissionInFlight
	}
	defer s.release(input.SessionID)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	telegramID, err := strconv.ParseInt(input.SessionID, 10, 64)
	if err != nil {
		s.metrics.SubmissionsRejected.Inc()
		return nil, ErrIdentityRequired
	}

	buyer, err := s.users.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if err == user.ErrUserNotFound {
			s.metrics.SubmissionsRejected.Inc()
			return nil, ErrIdentityRequired
		}
		log.Error("failed to resolve user", zap.Error(err))
		return nil, ErrOrderPersistenceFailed
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}

	// One order row per distinct cart line, in cart order.
	newLines := make([]order.NewLine, 0, len(lines))
	summaryLines := make([]notification.SummaryLine, 0, len(lines))
	var total float64

	for _, l := range lines {
		subtotal := l.Price * float64(l.Quantity)
		total += subtotal

		newLines = append(newLines, order.NewLine{
			ProductName: fmt.Sprintf("%s (x%d)", l.Name, l.Quantity),
			Price:       subtotal,
		})
		summaryLines = append(summaryLines, notification.SummaryLine{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.Price,
			Subtotal:  subtotal,
		})
	}

	groupID := uuid.New()
	log = log.With(
		zap.String("order_group_id", groupID.String()),
		zap.Int("line_count", len(newLines)),
		zap.Float64("total", total),
	)

	ids, err := s.orders.CreateOrdersTx(ctx, buyer.ID, groupID, newLines)
	if err != nil {
		// All-or-nothing: the transaction left no partial rows and the
		// cart stays untouched so the user can retry.
		log.Error("order persistence failed", zap.Error(err))
		return nil, ErrOrderPersistenceFailed
	}

	submittedAt := time.Now()
	s.notify(ctx, log, notification.OrderSummary{
		CustomerName:     input.CustomerName,
		TelegramUsername: input.TelegramUsername,
		PaymentMethod:    paymentMethod,
		Lines:            summaryLines,
		Total:            total,
		SubmittedAt:      submittedAt,
	})

	s.carts.Clear(input.SessionID)
	s.metrics.OrdersCreated.Add(uint64(len(ids)))
	s.metrics.ObserveCheckout(timer)

	if s.pub != nil {
		s.pub.PublishOrderGroup(OrderGroupEvent{
			GroupID:      groupID,
			OrderIDs:     ids,
			CustomerName: input.CustomerName,
			Total:        total,
			SubmittedAt:  submittedAt,
		})
	}

	log.Info("checkout completed", zap.Uints("order_ids", ids))

	return &Result{
		OrderIDs:      ids,
		GroupID:       groupID,
		Total:         total,
		RedirectAfter: RedirectDelay,
	}, nil
}

// notify dispatches the summary to the operators' chat. Failures are logged
// and counted, never propagated: the persisted order is the success
// criterion.
func (s *service) notify(ctx context.Context, log *zap.Logger, summary notification.OrderSummary) {
	if err := s.sink.Send(ctx, notification.FormatOrderMessage(summary)); err != nil {
		s.metrics.NotificationFailures.Inc()
		log.Error("order notification failed", zap.Error(err))
	}
}

func validateFields(input SubmitInput) error {
	if input.CustomerName == "" {
		return &ValidationError{Field: "customerName"}
	}
	if input.TelegramUsername == "" {
		return &ValidationError{Field: "telegramUsername"}
	}
	if !input.Agreed {
		return &ValidationError{Field: "agreement"}
	}
	return nil
}

func (s *service) acquire(session string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.inFlight[session]; taken {
		return false
	}
	s.inFlight[session] = struct{}{}
	return true
}

func (s *service) release(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, session)
}
