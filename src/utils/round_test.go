package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundCurrency(t *testing.T) {
	tests := []struct {
		in     float64
		places int
		want   float64
	}{
		{3202.0000000000005, 2, 3202.00},
		{1.005, 2, 1.01}, // half rounds away from zero
		{-1.005, 2, -1.01},
		{2.675, 2, 2.68}, // the classic float64 trap
		{101.63243851018869, 2, 101.63},
		{101.63243851018869, 4, 101.6324},
		{1990, 2, 1990},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundCurrency(tt.in, tt.places), "RoundCurrency(%v, %d)", tt.in, tt.places)
	}
}
