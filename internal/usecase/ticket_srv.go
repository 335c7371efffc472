package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ticket-purchase/internal/data/entity"
	"ticket-purchase/internal/dto/response"
	"ticket-purchase/pkg/metrics"
	"ticket-purchase/pkg/utils"

	"go.uber.org/zap"
)

// TicketPaymentService meneruskan instruksi pembayaran ke payment gateway
type TicketPaymentService interface {
	MakePayment(ctx context.Context, accountID int64, amount int) error
}

// SeatReservationService meneruskan instruksi reservasi kursi
type SeatReservationService interface {
	ReserveSeats(ctx context.Context, accountID int64, seats int) error
}

type TicketService interface {
	PurchaseTickets(ctx context.Context, req *entity.PurchaseRequest) (*response.PurchaseResponse, error)
	QuoteTickets(ctx context.Context, req *entity.PurchaseRequest) (*response.QuoteResponse, error)
	Prices(ctx context.Context) response.TicketPricesResponse
}

type ticketService struct {
	payment     TicketPaymentService
	reservation SeatReservationService
	metrics     *metrics.PurchaseMetrics
	log         *zap.Logger
	now         func() time.Time
}

func NewTicketService(
	payment TicketPaymentService,
	reservation SeatReservationService,
	m *metrics.PurchaseMetrics,
	log *zap.Logger,
) TicketService {
	return &ticketService{
		payment:     payment,
		reservation: reservation,
		metrics:     m,
		log:         log.With(zap.String("service", "ticket")),
		now:         time.Now,
	}
}

func (s *ticketService) PurchaseTickets(ctx context.Context, req *entity.PurchaseRequest) (*response.PurchaseResponse, error) {
	if err := ValidatePurchase(req); err != nil {
		s.log.Warn("Purchase rejected",
			zap.Int64("account_id", req.AccountID()),
			zap.Int("total_tickets", req.TotalTickets()),
			zap.Error(err),
		)
		s.recordRejected(err)
		return nil, err
	}

	accountID := req.AccountID()
	totalPrice := req.TotalPrice()
	totalSeats := req.TotalSeats()

	// Payment first, reservation is never made for an unpaid request
	if err := s.payment.MakePayment(ctx, accountID, totalPrice); err != nil {
		s.log.Error("Failed to make payment",
			zap.Error(err),
			zap.Int64("account_id", accountID),
			zap.Int("amount", totalPrice),
		)
		s.recordFailed("payment")
		return nil, fmt.Errorf("make payment: %w", err)
	}

	if err := s.reservation.ReserveSeats(ctx, accountID, totalSeats); err != nil {
		s.log.Error("Failed to reserve seats",
			zap.Error(err),
			zap.Int64("account_id", accountID),
			zap.Int("seats", totalSeats),
		)
		s.recordFailed("reservation")
		return nil, fmt.Errorf("reserve seats: %w", err)
	}

	now := s.now()
	resp := &response.PurchaseResponse{
		Reference:     utils.GeneratePurchaseReference(now),
		QuoteResponse: response.QuoteFromRequest(req),
		PurchasedAt:   now,
	}
	s.recordAccepted(req)

	requestID, _ := utils.GetRequestIDFromContext(ctx)
	s.log.Info("Tickets purchased",
		zap.String("request_id", requestID),
		zap.String("reference", resp.Reference),
		zap.Int64("account_id", accountID),
		zap.Int("total_tickets", resp.TotalTickets),
		zap.Int("total_price", totalPrice),
		zap.Int("total_seats", totalSeats),
	)

	return resp, nil
}

func (s *ticketService) QuoteTickets(ctx context.Context, req *entity.PurchaseRequest) (*response.QuoteResponse, error) {
	if err := ValidatePurchase(req); err != nil {
		s.log.Debug("Quote rejected", zap.Int64("account_id", req.AccountID()), zap.Error(err))
		return nil, err
	}

	quote := response.QuoteFromRequest(req)
	return &quote, nil
}

func (s *ticketService) Prices(ctx context.Context) response.TicketPricesResponse {
	return response.TicketPricesToResponse()
}

// ==================== HELPER METHODS ====================

func (s *ticketService) recordRejected(err error) {
	if s.metrics == nil {
		return
	}
	reason := "unknown"
	var purchaseErr *entity.PurchaseError
	if errors.As(err, &purchaseErr) {
		reason = string(purchaseErr.Kind)
	}
	s.metrics.Purchases.WithLabelValues(metrics.ResultRejected, reason).Inc()
}

func (s *ticketService) recordFailed(step string) {
	if s.metrics == nil {
		return
	}
	s.metrics.Purchases.WithLabelValues(metrics.ResultFailed, step).Inc()
}

func (s *ticketService) recordAccepted(req *entity.PurchaseRequest) {
	if s.metrics == nil {
		return
	}
	s.metrics.Purchases.WithLabelValues(metrics.ResultAccepted, "").Inc()
	for _, category := range entity.Categories() {
		if n := req.TotalTicketsOf(category); n > 0 {
			s.metrics.TicketsSold.WithLabelValues(string(category)).Add(float64(n))
		}
	}
	if price := req.TotalPrice(); price > 0 {
		s.metrics.AmountCharged.Add(float64(price))
	}
}
