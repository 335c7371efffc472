package seatbooking

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSeatReservationMessage_Encode(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 2, 10, 0, 0, 0, time.FixedZone("WIB", 7*3600))
	body, err := NewSeatReservationMessage(9, 4, "req-1", now).Encode()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded["account_id"] != float64(9) || decoded["seats"] != float64(4) {
		t.Fatalf("unexpected payload %s", body)
	}
	if decoded["requested_at"] != "2025-01-02T03:00:00Z" {
		t.Fatalf("expected UTC timestamp, got %v", decoded["requested_at"])
	}
	if decoded["request_id"] != "req-1" {
		t.Fatalf("expected request id, got %v", decoded["request_id"])
	}
}

func TestReservedSeatsKey(t *testing.T) {
	t.Parallel()

	if got := ReservedSeatsKey(42); got != "seats:reserved:42" {
		t.Fatalf("unexpected key %s", got)
	}
}
