package repository

import (
	"context"
	"fmt"

	"ticket-purchase/internal/data/entity"
	"ticket-purchase/pkg/database"

	"go.uber.org/zap"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.PaymentInstruction) error
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.PaymentInstruction) error {
	query := `
		INSERT INTO payment_instructions (id, account_id, amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.AccountID,
		payment.Amount,
		payment.Status,
		payment.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment instruction",
			zap.Error(err),
			zap.Int64("account_id", payment.AccountID),
			zap.Int("amount", payment.Amount),
		)
		return fmt.Errorf("create payment for account %d: %w", payment.AccountID, err)
	}

	return nil
}
