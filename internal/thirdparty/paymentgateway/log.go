package paymentgateway

import (
	"context"

	"go.uber.org/zap"
)

// LogPaymentService only logs the instruction. Used for local runs without a database.
type LogPaymentService struct {
	log *zap.Logger
}

func NewLogPaymentService(log *zap.Logger) *LogPaymentService {
	return &LogPaymentService{log: log.With(zap.String("gateway", "payment_log"))}
}

func (s *LogPaymentService) MakePayment(ctx context.Context, accountID int64, amount int) error {
	s.log.Info("Payment requested",
		zap.Int64("account_id", accountID),
		zap.Int("amount", amount),
	)
	return nil
}
