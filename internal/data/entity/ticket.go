package entity

import (
	"fmt"
	"strings"
)

// MaxTicketsPerPurchase batas tiket per satu pembelian
const MaxTicketsPerPurchase = 20

type TicketCategory string

const (
	TicketCategoryAdult  TicketCategory = "ADULT"
	TicketCategoryChild  TicketCategory = "CHILD"
	TicketCategoryInfant TicketCategory = "INFANT"
)

// TicketRate harga dan jumlah kursi per satu tiket
type TicketRate struct {
	Price int
	Seats int
}

var ticketRates = map[TicketCategory]TicketRate{
	TicketCategoryAdult:  {Price: 20, Seats: 1},
	TicketCategoryChild:  {Price: 10, Seats: 1},
	TicketCategoryInfant: {Price: 0, Seats: 0},
}

// Categories returns all categories in display order
func Categories() []TicketCategory {
	return []TicketCategory{TicketCategoryAdult, TicketCategoryChild, TicketCategoryInfant}
}

func ParseTicketCategory(s string) (TicketCategory, error) {
	category := TicketCategory(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := ticketRates[category]; !ok {
		return "", fmt.Errorf("invalid ticket category %q", s)
	}
	return category, nil
}

// Rate returns zero rate for unknown categories
func (c TicketCategory) Rate() TicketRate {
	return ticketRates[c]
}

func (c TicketCategory) String() string {
	return string(c)
}

// TicketLineItem satu baris (kategori, jumlah) dalam request
type TicketLineItem struct {
	Category TicketCategory
	Count    int
}

func NewTicketLineItem(category TicketCategory, count int) TicketLineItem {
	return TicketLineItem{Category: category, Count: count}
}

func (i TicketLineItem) Price() int {
	return i.Count * i.Category.Rate().Price
}

func (i TicketLineItem) Seats() int {
	return i.Count * i.Category.Rate().Seats
}

// PurchaseRequest is immutable after construction. Validity is checked
// by the purchase validator, not here.
type PurchaseRequest struct {
	accountID int64
	items     []TicketLineItem
}

func NewPurchaseRequest(accountID int64, items ...TicketLineItem) *PurchaseRequest {
	copied := make([]TicketLineItem, len(items))
	copy(copied, items)

	return &PurchaseRequest{
		accountID: accountID,
		items:     copied,
	}
}

func (r *PurchaseRequest) AccountID() int64 {
	return r.accountID
}

// LineItems returns a copy of the line items
func (r *PurchaseRequest) LineItems() []TicketLineItem {
	items := make([]TicketLineItem, len(r.items))
	copy(items, r.items)
	return items
}

func (r *PurchaseRequest) TotalTickets() int {
	total := 0
	for _, item := range r.items {
		total += item.Count
	}
	return total
}

func (r *PurchaseRequest) TotalTicketsOf(category TicketCategory) int {
	total := 0
	for _, item := range r.items {
		if item.Category == category {
			total += item.Count
		}
	}
	return total
}

func (r *PurchaseRequest) TotalPrice() int {
	total := 0
	for _, item := range r.items {
		total += item.Price()
	}
	return total
}

func (r *PurchaseRequest) TotalSeats() int {
	total := 0
	for _, item := range r.items {
		total += item.Seats()
	}
	return total
}
