package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/DisruptPoints_Go/internal/domain"
)

func TestSplitNameAndQuantity(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantName string
		wantQty  int
	}{
		{name: "single word", args: []string{"coconut"}, wantName: "coconut", wantQty: 1},
		{name: "with quantity", args: []string{"coconut", "3"}, wantName: "coconut", wantQty: 3},
		{name: "multi-word name", args: []string{"straw", "hat"}, wantName: "straw hat", wantQty: 1},
		{name: "multi-word with quantity", args: []string{"straw", "hat", "2"}, wantName: "straw hat", wantQty: 2},
		{name: "bare number is a name", args: []string{"3"}, wantName: "3", wantQty: 1},
		{name: "empty", args: nil, wantName: "", wantQty: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, qty := splitNameAndQuantity(tt.args)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantQty, qty)
		})
	}
}

func TestFriendlyErrorNeverLeaksInternals(t *testing.T) {
	got := friendlyError(assert.AnError)

	assert.NotContains(t, got, assert.AnError.Error())
}

func TestFriendlyErrorKnownFailures(t *testing.T) {
	assert.Contains(t, friendlyError(domain.ErrGiftLimitExceeded), "daily gift limit")
	assert.Contains(t, friendlyError(domain.ErrNoAlcohol), "alcohol")
	assert.Contains(t, friendlyError(domain.ErrUnknownLocation), "beach")
}
