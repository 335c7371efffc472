package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

// GeneratePurchaseReference creates a purchase reference with timestamp
func GeneratePurchaseReference(now time.Time) string {
	// Format: TKT-YYYYMMDD-HHMMSS-XXXXXXXX
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := strings.ToUpper(uuid.New().String()[:8])

	return fmt.Sprintf("TKT-%s-%s-%s", datePart, timePart, randomPart)
}
