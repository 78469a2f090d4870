//go:build unit

package donation_test

import (
	"testing"

	"petpromise/internal/domain/donation"

	"github.com/stretchr/testify/assert"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   int64
	}{
		{name: "whole dollars", amount: 25, want: 2500},
		{name: "cents", amount: 19.99, want: 1999},
		{name: "float noise", amount: 0.1 + 0.2, want: 30},
		{name: "rounds half up", amount: 12.345, want: 1235},
		{name: "zero", amount: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, donation.MinorUnits(tt.amount))
		})
	}
}
