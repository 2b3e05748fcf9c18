package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderIDPrefix marks identifiers generated at checkout.
const OrderIDPrefix = "PED"

// NewRequestID generates a request identifier for the X-Request-ID header.
func NewRequestID() string {
	return uuid.New().String()
}

// GenerateOrderID generates the identifier shared by every sale line of one
// checkout: the checkout time in milliseconds plus a random suffix.
func GenerateOrderID(now time.Time) string {
	return fmt.Sprintf("%s-%d-%s", OrderIDPrefix, now.UnixMilli(), strings.ToUpper(uuid.New().String()[:6]))
}

// LineIdempotencyKey derives the Idempotency-Key of one checkout line.
func LineIdempotencyKey(orderID string, line int) string {
	return fmt.Sprintf("%s-%d", orderID, line)
}
