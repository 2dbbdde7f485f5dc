package service

import (
	"testing"

	"github.com/platemate/platemate-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func TestValidReservationTransition(t *testing.T) {
	tests := []struct {
		name string
		from enum.ReservationStatus
		to   enum.ReservationStatus
		want bool
	}{
		{"pending to confirmed", enum.ReservationStatusPending, enum.ReservationStatusConfirmed, true},
		{"pending to cancel", enum.ReservationStatusPending, enum.ReservationStatusCancel, true},
		{"pending to seated skips confirm", enum.ReservationStatusPending, enum.ReservationStatusSeated, false},
		{"confirmed to seated", enum.ReservationStatusConfirmed, enum.ReservationStatusSeated, true},
		{"confirmed to cancel", enum.ReservationStatusConfirmed, enum.ReservationStatusCancel, true},
		{"confirmed to no show", enum.ReservationStatusConfirmed, enum.ReservationStatusNoShow, true},
		{"confirmed to complete skips seated", enum.ReservationStatusConfirmed, enum.ReservationStatusComplete, false},
		{"seated to complete", enum.ReservationStatusSeated, enum.ReservationStatusComplete, true},
		{"seated to cancel", enum.ReservationStatusSeated, enum.ReservationStatusCancel, false},
		{"complete is terminal", enum.ReservationStatusComplete, enum.ReservationStatusSeated, false},
		{"cancel is terminal", enum.ReservationStatusCancel, enum.ReservationStatusPending, false},
		{"no show is terminal", enum.ReservationStatusNoShow, enum.ReservationStatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validReservationTransition(tt.from, tt.to))
		})
	}
}
