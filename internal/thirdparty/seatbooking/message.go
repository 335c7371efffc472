// Package seatbooking berisi adapter SeatReservationService.
package seatbooking

import (
	"encoding/json"
	"time"
)

// SeatReservationMessage dikirim ke broker untuk setiap pembelian yang valid
type SeatReservationMessage struct {
	AccountID   int64  `json:"account_id"`
	Seats       int    `json:"seats"`
	RequestID   string `json:"request_id,omitempty"`
	RequestedAt string `json:"requested_at"`
}

func NewSeatReservationMessage(accountID int64, seats int, requestID string, now time.Time) SeatReservationMessage {
	return SeatReservationMessage{
		AccountID:   accountID,
		Seats:       seats,
		RequestID:   requestID,
		RequestedAt: now.UTC().Format(time.RFC3339),
	}
}

func (m SeatReservationMessage) Encode() ([]byte, error) {
	return json.Marshal(m)
}
