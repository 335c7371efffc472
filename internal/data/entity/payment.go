package entity

type PaymentStatus string

const PaymentStatusCompleted PaymentStatus = "completed"

// PaymentInstruction satu instruksi pembayaran yang diteruskan ke payment gateway
type PaymentInstruction struct {
	BaseSimple
	AccountID int64         `db:"account_id"`
	Amount    int           `db:"amount"`
	Status    PaymentStatus `db:"status"`
}
