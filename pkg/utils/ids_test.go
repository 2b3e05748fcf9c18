package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderID(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	a := GenerateOrderID(now)
	b := GenerateOrderID(now)

	assert.True(t, strings.HasPrefix(a, "PED-1792238400000-"), a)
	assert.NotEqual(t, a, b, "same instant must still yield distinct ids")
}

func TestLineIdempotencyKey(t *testing.T) {
	assert.Equal(t, "PED-1-ABC-2", LineIdempotencyKey("PED-1-ABC", 2))
}
