package sim

import "errors"

var (
	// ErrInvalidPeriod is returned when an interest period does not end
	// strictly after it starts.
	ErrInvalidPeriod = errors.New("end date must be after start date")

	// ErrInvalidRange is returned when a simulation range is empty or inverted.
	ErrInvalidRange = errors.New("simulation end date must be after start date")

	// ErrInvalidSchedule is returned for a recurring schedule that cannot
	// produce payments.
	ErrInvalidSchedule = errors.New("invalid payment schedule")
)
