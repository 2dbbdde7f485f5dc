package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDealIsCurrent(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	tests := []struct {
		name string
		deal Deal
		want bool
	}{
		{"active without window", Deal{IsActive: true}, true},
		{"inactive", Deal{IsActive: false}, false},
		{"inside window", Deal{IsActive: true, StartsAt: &yesterday, EndsAt: &tomorrow}, true},
		{"before window", Deal{IsActive: true, StartsAt: &tomorrow}, false},
		{"after window", Deal{IsActive: true, EndsAt: &yesterday}, false},
		{"inactive inside window", Deal{IsActive: false, StartsAt: &yesterday, EndsAt: &tomorrow}, false},
		{"open ended start", Deal{IsActive: true, StartsAt: &yesterday}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.deal.IsCurrent(now))
		})
	}
}

func TestDiscountIsCurrent(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	tests := []struct {
		name     string
		discount Discount
		want     bool
	}{
		{"active without window", Discount{IsActive: true}, true},
		{"inactive", Discount{IsActive: false}, false},
		{"inside window", Discount{IsActive: true, StartsAt: &yesterday, EndsAt: &tomorrow}, true},
		{"not started yet", Discount{IsActive: true, StartsAt: &tomorrow}, false},
		{"already ended", Discount{IsActive: true, EndsAt: &yesterday}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.discount.IsCurrent(now))
		})
	}
}
