package request

// AccountID sengaja tanpa tag validate: akun <= 0 harus ditolak oleh
// aturan pembelian dengan kode INVALID_ACCOUNT_ID, bukan oleh validator DTO.
type PurchaseTicketsRequest struct {
	AccountID int64               `json:"account_id"`
	Tickets   []TicketTypeRequest `json:"tickets" validate:"dive"`
}

type TicketTypeRequest struct {
	Type  string `json:"type" validate:"required,oneof=ADULT CHILD INFANT"`
	Count int    `json:"count" validate:"min=0"`
}
