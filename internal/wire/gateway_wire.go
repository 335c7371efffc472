package wire

import (
	"fmt"

	"ticket-purchase/internal/data/repository"
	"ticket-purchase/internal/thirdparty/paymentgateway"
	"ticket-purchase/internal/thirdparty/seatbooking"
	"ticket-purchase/internal/usecase"
	"ticket-purchase/pkg/database"
	"ticket-purchase/pkg/utils"

	"go.uber.org/zap"
)

// Gateways menyimpan adapter collaborator beserta resource yang harus ditutup
type Gateways struct {
	Payment     usecase.TicketPaymentService
	Reservation usecase.SeatReservationService
	closers     []closer
	log         *zap.Logger
}

type closer struct {
	name  string
	close func() error
}

func (g *Gateways) addCloser(name string, fn func() error) {
	g.closers = append(g.closers, closer{name: name, close: fn})
}

// Close melepas resource dalam urutan terbalik; kegagalan dicatat, tidak menghentikan sisanya
func (g *Gateways) Close() {
	log := g.log
	if log == nil {
		log = zap.NewNop()
	}
	for i := len(g.closers) - 1; i >= 0; i-- {
		c := g.closers[i]
		if err := c.close(); err != nil {
			log.Error("Failed to close gateway resource",
				zap.String("resource", c.name),
				zap.Error(err),
			)
		}
	}
}

// NewGateways builds the payment and seat adapters selected in config
func NewGateways(config *utils.Config, logger *zap.Logger) (*Gateways, error) {
	g := &Gateways{log: logger.With(zap.String("component", "gateways"))}

	switch config.Payment.Driver {
	case utils.DriverPostgres:
		db, err := database.InitDB(config.Database)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		g.addCloser("postgres", func() error { db.Close(); return nil })

		repos := repository.NewRepository(db, logger)
		g.Payment = paymentgateway.NewLedgerPaymentService(repos.Payment, logger)
		logger.Info("Database connected successfully")
	case utils.DriverLog, "":
		g.Payment = paymentgateway.NewLogPaymentService(logger)
	default:
		return nil, fmt.Errorf("unknown payment driver %q", config.Payment.Driver)
	}

	switch config.Seat.Driver {
	case utils.DriverAMQP:
		svc, err := seatbooking.NewAMQPSeatReservationService(config.RabbitMQ, logger)
		if err != nil {
			g.Close()
			return nil, err
		}
		g.addCloser("rabbitmq", svc.Close)
		g.Reservation = svc
	case utils.DriverRedis:
		client, err := seatbooking.NewRedisClient(config.Redis)
		if err != nil {
			g.Close()
			return nil, err
		}
		g.addCloser("redis", client.Close)
		g.Reservation = seatbooking.NewRedisSeatReservationService(client, logger)
	case utils.DriverLog, "":
		g.Reservation = seatbooking.NewLogSeatReservationService(logger)
	default:
		g.Close()
		return nil, fmt.Errorf("unknown seat driver %q", config.Seat.Driver)
	}

	return g, nil
}
