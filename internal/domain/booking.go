package domain

import (
	"fmt"
	"time"

	apperrors "github.com/Grenders/transport-api/internal/pkg/errors"
)

// Booking invariants live here as stateless functions invoked by the
// usecase layer before any persistence commit. The current time is always
// passed in explicitly so tests can supply deterministic values.

// TrainCapacity is the capacity snapshot tickets are validated against.
// It must come from the referenced train's current row, not from a value
// captured when the ticket payload was built.
type TrainCapacity struct {
	CargoNum      int
	PlacesInCargo int
}

// SeatRef identifies an already-taken (cargo, seat) pair within a journey.
type SeatRef struct {
	Cargo int
	Seat  int
}

// ValidateSeatAssignment succeeds iff 1 <= cargo <= CargoNum and
// 1 <= seat <= PlacesInCargo. The bound is inclusive on both ends: a train
// configured with zero capacity can never hold a valid ticket.
//
// On failure the error names exactly the field that violated its bound,
// the requested value and the allowed inclusive range.
func ValidateSeatAssignment(cargo, seat int, capacity TrainCapacity) error {
	for _, check := range []struct {
		value int
		field string
		max   int
	}{
		{cargo, "cargo", capacity.CargoNum},
		{seat, "seat", capacity.PlacesInCargo},
	} {
		if check.value < 1 || check.value > check.max {
			return apperrors.ErrValidation.WithField(
				check.field,
				fmt.Sprintf("%s number must be in available range: (1, %d), got %d",
					check.field, check.max, check.value),
			)
		}
	}
	return nil
}

// ValidateJourneySchedule checks the temporal invariants of a journey's
// incoming values. For a new journey the departure-in-past check runs
// before the arrival-before-departure check; that ordering decides which
// field the client sees blamed. For updates only the relative ordering is
// checked here; callers guard started journeys with ValidateJourneyMutable
// against the persisted row first.
func ValidateJourneySchedule(departure, arrival, now time.Time, isNew bool) error {
	if isNew && departure.Before(now) {
		return apperrors.ErrValidation.WithField(
			"departure_time", "Departure time cannot be in the past.")
	}

	if arrival.Before(departure) {
		return apperrors.ErrValidation.WithField(
			"arrival_time", "Arrival time cannot be earlier than departure time.")
	}

	return nil
}

// ValidateJourneyMutable rejects any update to a journey whose persisted
// departure time has already passed, regardless of the update's contents.
func ValidateJourneyMutable(persistedDeparture, now time.Time) error {
	if persistedDeparture.Before(now) {
		return apperrors.ErrValidation.WithField(
			"departure_time", "Cannot update a journey that has already started.")
	}
	return nil
}

// AssertUniqueSeat is the friendly fast-path duplicate check against the
// tickets already persisted for the journey. It is an early rejection only:
// the authoritative guarantee under concurrent submission is the storage
// unique index on (journey, cargo, seat).
func AssertUniqueSeat(cargo, seat int, existing []SeatRef) error {
	for _, taken := range existing {
		if taken.Cargo == cargo && taken.Seat == seat {
			return apperrors.ErrDuplicateSeat.WithField(
				"seat",
				fmt.Sprintf("place (cargo %d, seat %d) is already taken", cargo, seat),
			)
		}
	}
	return nil
}
