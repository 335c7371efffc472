package response

import (
	"time"

	"ticket-purchase/internal/data/entity"
)

type TicketLineResponse struct {
	Type  entity.TicketCategory `json:"type"`
	Count int                   `json:"count"`
	Price int                   `json:"price"`
	Seats int                   `json:"seats"`
}

type QuoteResponse struct {
	AccountID    int64                `json:"account_id"`
	TotalTickets int                  `json:"total_tickets"`
	TotalPrice   int                  `json:"total_price"`
	TotalSeats   int                  `json:"total_seats"`
	Lines        []TicketLineResponse `json:"lines"`
}

type PurchaseResponse struct {
	Reference string `json:"reference"`
	QuoteResponse
	PurchasedAt time.Time `json:"purchased_at"`
}

type TicketPriceResponse struct {
	Type  entity.TicketCategory `json:"type"`
	Price int                   `json:"price"`
	Seats int                   `json:"seats"`
}

type TicketPricesResponse struct {
	MaxTicketsPerPurchase int                   `json:"max_tickets_per_purchase"`
	Prices                []TicketPriceResponse `json:"prices"`
}

// Helper converters
func QuoteFromRequest(req *entity.PurchaseRequest) QuoteResponse {
	items := req.LineItems()
	lines := make([]TicketLineResponse, len(items))
	for i, item := range items {
		lines[i] = TicketLineResponse{
			Type:  item.Category,
			Count: item.Count,
			Price: item.Price(),
			Seats: item.Seats(),
		}
	}

	return QuoteResponse{
		AccountID:    req.AccountID(),
		TotalTickets: req.TotalTickets(),
		TotalPrice:   req.TotalPrice(),
		TotalSeats:   req.TotalSeats(),
		Lines:        lines,
	}
}

func TicketPricesToResponse() TicketPricesResponse {
	categories := entity.Categories()
	prices := make([]TicketPriceResponse, len(categories))
	for i, category := range categories {
		rate := category.Rate()
		prices[i] = TicketPriceResponse{
			Type:  category,
			Price: rate.Price,
			Seats: rate.Seats,
		}
	}

	return TicketPricesResponse{
		MaxTicketsPerPurchase: entity.MaxTicketsPerPurchase,
		Prices:                prices,
	}
}
