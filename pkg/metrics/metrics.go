package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
	ResultFailed   = "failed"
)

type PurchaseMetrics struct {
	Purchases     *prometheus.CounterVec
	TicketsSold   *prometheus.CounterVec
	AmountCharged prometheus.Counter
}

func NewPurchaseMetrics(reg prometheus.Registerer) *PurchaseMetrics {
	purchases := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ticket",
		Subsystem: "purchase",
		Name:      "requests_total",
		Help:      "Total number of ticket purchase requests by result.",
	}, []string{"result", "reason"})
	tickets := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ticket",
		Subsystem: "purchase",
		Name:      "tickets_total",
		Help:      "Tickets sold by category.",
	}, []string{"category"})
	amount := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ticket",
		Subsystem: "purchase",
		Name:      "amount_total",
		Help:      "Total amount sent to the payment gateway.",
	})

	reg.MustRegister(purchases, tickets, amount)
	return &PurchaseMetrics{Purchases: purchases, TicketsSold: tickets, AmountCharged: amount}
}

func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
