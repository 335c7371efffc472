package seatbooking

import (
	"context"
	"fmt"
	"time"

	"ticket-purchase/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const reservedSeatsKeyPrefix = "seats:reserved:"

// RedisSeatReservationService keeps a running count of reserved seats per account
type RedisSeatReservationService struct {
	client redis.Cmdable
	log    *zap.Logger
}

func NewRedisClient(config utils.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", config.Addr, err)
	}

	return client, nil
}

func NewRedisSeatReservationService(client redis.Cmdable, log *zap.Logger) *RedisSeatReservationService {
	return &RedisSeatReservationService{
		client: client,
		log:    log.With(zap.String("gateway", "seat_redis")),
	}
}

func ReservedSeatsKey(accountID int64) string {
	return fmt.Sprintf("%s%d", reservedSeatsKeyPrefix, accountID)
}

func (s *RedisSeatReservationService) ReserveSeats(ctx context.Context, accountID int64, seats int) error {
	key := ReservedSeatsKey(accountID)
	total, err := s.client.IncrBy(ctx, key, int64(seats)).Result()
	if err != nil {
		return fmt.Errorf("reserve seats for account %d: %w", accountID, err)
	}

	s.log.Info("Seats reserved",
		zap.Int64("account_id", accountID),
		zap.Int("seats", seats),
		zap.Int64("reserved_total", total),
	)
	return nil
}
