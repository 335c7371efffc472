package usecase

import (
	"ticket-purchase/pkg/metrics"

	"go.uber.org/zap"
)

type Service struct {
	Ticket TicketService
}

func NewService(
	payment TicketPaymentService,
	reservation SeatReservationService,
	m *metrics.PurchaseMetrics,
	log *zap.Logger,
) *Service {
	return &Service{
		Ticket: NewTicketService(payment, reservation, m, log),
	}
}
