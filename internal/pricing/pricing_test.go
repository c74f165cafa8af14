package pricing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPrice(t *testing.T) {
	tests := []struct {
		name         string
		basePrice    string
		participants int
		want         string
	}{
		{"single participant", "45.00", 1, "45"},
		{"three participants", "45.00", 3, "135"},
		{"fractional base", "19.99", 3, "59.97"},
		{"rounds half up", "0.125", 2, "0.25"},
		{"rounds down below half", "10.33", 3, "30.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, err := decimal.NewFromString(tt.basePrice)
			require.NoError(t, err)

			got := TotalPrice(base, tt.participants)

			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestTotalPriceDeterministic(t *testing.T) {
	base := decimal.RequireFromString("37.45")

	first := TotalPrice(base, 7)
	for i := 0; i < 10; i++ {
		assert.True(t, TotalPrice(base, 7).Equal(first))
	}
}

func TestValidateParticipants(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		available int
		wantKind  CapacityErrorKind
	}{
		{"exactly available", 2, 2, ""},
		{"below available", 1, 5, ""},
		{"zero requested", 0, 5, NonPositiveCount},
		{"negative requested", -3, 5, NonPositiveCount},
		{"exceeds available", 3, 2, ExceedsCapacity},
		{"no spots left", 1, 0, ExceedsCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateParticipants(tt.requested, tt.available)

			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}

			var capErr *CapacityError
			require.ErrorAs(t, err, &capErr)
			assert.Equal(t, tt.wantKind, capErr.Kind)
		})
	}
}
