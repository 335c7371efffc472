package wire

import (
	"ticket-purchase/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTicket(r chi.Router, ticketHandler *adaptor.TicketHandler) {
	r.Route("/api/tickets", func(r chi.Router) {
		// GET /api/tickets/prices - Category price and seat table
		r.Get("/prices", ticketHandler.GetPrices)

		// POST /api/tickets/quote - Validate and compute totals, no payment
		r.Post("/quote", ticketHandler.QuoteTickets)

		// POST /api/tickets/purchase - Validate, pay, then reserve seats
		r.Post("/purchase", ticketHandler.PurchaseTickets)
	})
}
