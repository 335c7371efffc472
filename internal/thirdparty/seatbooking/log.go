package seatbooking

import (
	"context"

	"go.uber.org/zap"
)

type LogSeatReservationService struct {
	log *zap.Logger
}

func NewLogSeatReservationService(log *zap.Logger) *LogSeatReservationService {
	return &LogSeatReservationService{log: log.With(zap.String("gateway", "seat_log"))}
}

func (s *LogSeatReservationService) ReserveSeats(ctx context.Context, accountID int64, seats int) error {
	s.log.Info("Seat reservation requested",
		zap.Int64("account_id", accountID),
		zap.Int("seats", seats),
	)
	return nil
}
