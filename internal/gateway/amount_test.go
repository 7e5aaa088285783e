package gateway_test

import (
	"testing"

	"github.com/jeffleon2/draftea-payments-gateway/internal/gateway"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		price    string
		expected int64
	}{
		{"19.99", 1999},
		{"10", 1000},
		{"0.125", 13},
		{"1.005", 101},
		{"0.01", 1},
		{"0.004", 0},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			assert.Equal(t, tt.expected, gateway.ToMinorUnits(decimal.RequireFromString(tt.price)))
		})
	}
}

func TestToMinorUnits_FromFloat(t *testing.T) {
	assert.Equal(t, int64(1999), gateway.ToMinorUnits(decimal.NewFromFloat(19.99)))
	assert.Equal(t, int64(101), gateway.ToMinorUnits(decimal.NewFromFloat(1.005)))
}
