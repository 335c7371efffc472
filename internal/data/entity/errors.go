package entity

type PurchaseErrorKind string

const (
	PurchaseErrorInvalidAccount        PurchaseErrorKind = "INVALID_ACCOUNT_ID"
	PurchaseErrorInvalidTicketCount    PurchaseErrorKind = "INVALID_NUMBER_OF_TICKETS"
	PurchaseErrorNoAdultTickets        PurchaseErrorKind = "NO_ADULT_TICKETS"
	PurchaseErrorNotEnoughAdultTickets PurchaseErrorKind = "NOT_ENOUGH_ADULT_TICKETS"
)

// PurchaseError dikembalikan saat request ditolak oleh aturan bisnis.
// errors.Is cocok berdasarkan Kind, jadi pesan boleh berbeda.
type PurchaseError struct {
	Kind    PurchaseErrorKind
	Message string
}

func NewPurchaseError(kind PurchaseErrorKind, message string) *PurchaseError {
	return &PurchaseError{Kind: kind, Message: message}
}

func (e *PurchaseError) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

func (e *PurchaseError) Is(target error) bool {
	t, ok := target.(*PurchaseError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

var (
	ErrInvalidAccount               = &PurchaseError{Kind: PurchaseErrorInvalidAccount}
	ErrInvalidTicketCount           = &PurchaseError{Kind: PurchaseErrorInvalidTicketCount}
	ErrNoAdultTickets               = &PurchaseError{Kind: PurchaseErrorNoAdultTickets}
	ErrInsufficientAdultsForInfants = &PurchaseError{Kind: PurchaseErrorNotEnoughAdultTickets}
)
