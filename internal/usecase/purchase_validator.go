package usecase

import (
	"fmt"

	"ticket-purchase/internal/data/entity"
)

// ValidatePurchase checks the rules in order and stops at the first failure.
// The returned error is always *entity.PurchaseError.
func ValidatePurchase(req *entity.PurchaseRequest) error {
	// All accounts with an id greater than zero are valid
	if req.AccountID() <= 0 {
		return entity.NewPurchaseError(entity.PurchaseErrorInvalidAccount,
			fmt.Sprintf("Invalid account id: %d", req.AccountID()))
	}

	totalTickets := req.TotalTickets()
	if totalTickets < 1 || totalTickets > entity.MaxTicketsPerPurchase {
		return entity.NewPurchaseError(entity.PurchaseErrorInvalidTicketCount,
			fmt.Sprintf("Invalid number of tickets requested: %d", totalTickets))
	}

	adultTickets := req.TotalTicketsOf(entity.TicketCategoryAdult)
	if adultTickets < 1 {
		return entity.NewPurchaseError(entity.PurchaseErrorNoAdultTickets,
			"Cannot purchase child or infant tickets without purchasing an adult ticket")
	}

	// Infants sit on an adult's lap
	if adultTickets < req.TotalTicketsOf(entity.TicketCategoryInfant) {
		return entity.NewPurchaseError(entity.PurchaseErrorNotEnoughAdultTickets,
			"Cannot purchase more infant tickets than adult tickets")
	}

	return nil
}
