package domain

import "errors"

var (
	ErrInvalidCityName = errors.New("invalid city name")

	ErrInvalidEmailFormat = errors.New("invalid email format")

	ErrNoSeatsAvailable = errors.New("no seats available for this flight")

	ErrTicketNotFound = errors.New("no ticket found with the provided ID")

	ErrNoBookings = errors.New("no booked flights available")

	ErrNoFlights = errors.New("no flights available")

	ErrInvalidMenuChoice = errors.New("invalid menu choice")

	ErrInvalidFlightSelection = errors.New("invalid flight selection")

	ErrInvalidFlightInput = errors.New("invalid flight input")
)
