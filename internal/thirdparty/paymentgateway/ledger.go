// Package paymentgateway berisi adapter TicketPaymentService.
package paymentgateway

import (
	"context"
	"fmt"
	"time"

	"ticket-purchase/internal/data/entity"
	"ticket-purchase/internal/data/repository"
	"ticket-purchase/pkg/utils"

	"go.uber.org/zap"
)

// LedgerPaymentService mencatat setiap instruksi pembayaran ke tabel payment_instructions
type LedgerPaymentService struct {
	repo repository.PaymentRepository
	log  *zap.Logger
	now  func() time.Time
}

func NewLedgerPaymentService(repo repository.PaymentRepository, log *zap.Logger) *LedgerPaymentService {
	return &LedgerPaymentService{
		repo: repo,
		log:  log.With(zap.String("gateway", "payment_ledger")),
		now:  time.Now,
	}
}

func (s *LedgerPaymentService) MakePayment(ctx context.Context, accountID int64, amount int) error {
	payment := &entity.PaymentInstruction{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: s.now(),
		},
		AccountID: accountID,
		Amount:    amount,
		Status:    entity.PaymentStatusCompleted,
	}

	if err := s.repo.Create(ctx, payment); err != nil {
		return fmt.Errorf("record payment instruction: %w", err)
	}

	s.log.Info("Payment instruction recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.Int64("account_id", accountID),
		zap.Int("amount", amount),
	)
	return nil
}
