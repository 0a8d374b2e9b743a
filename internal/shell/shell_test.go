package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Domenick1991/airreservation/internal/repository"
	"github.com/Domenick1991/airreservation/internal/service/booking"
	"github.com/Domenick1991/airreservation/internal/service/flights"
	"github.com/Domenick1991/airreservation/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runShell(t *testing.T, input string) string {
	t.Helper()

	flightRepo := repository.NewFlightRepository()
	v := validator.New()
	flightSvc := flights.NewFlightService(flightRepo, v)
	bookingSvc := booking.NewBookingService(repository.NewTicketRepository(), flightRepo)

	var out bytes.Buffer
	sh := New(flightSvc, bookingSvc, v, strings.NewReader(input), &out, Options{Color: false})
	require.NoError(t, sh.Run(context.Background()))
	return out.String()
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}

const domesticFlight = "1 Zagreb Split 07:10 08:00 12/06/2025 59.99 OU650 1 20"

func TestShell_FullSession(t *testing.T) {
	out := runShell(t, lines(
		"1 Paris Zagreb Split 07:10 08:00 12/06/2025 59.99 OU650 1 20",
		"3 1 Ana Horvat 111 not-an-email ana@example.com 0911234567 Card Economy",
		"3 1 Ivo Ivic 222 ivo@example.com 0922 Cash Business",
		"5",
		"6 111",
		"6 999",
		"4 111",
		"4 111",
		"5",
		"7",
	))

	assert.Contains(t, out, "=== Airline Reservation System ===")
	assert.Contains(t, out, "Enter Departure City (Zagreb, Split, Rijeka, Dubrovnik, Zadar): ")
	assert.Equal(t, 1, strings.Count(out, "Invalid city. Please select a valid domestic city."))
	assert.Contains(t, out, "Flight created successfully!")

	assert.Contains(t, out, "Available Flights:\n1. Domestic Flight: OU650\n")
	assert.Equal(t, 1, strings.Count(out, "Invalid email format. Please enter a valid email: "))
	assert.Equal(t, 1, strings.Count(out, "Flight booked successfully!"))
	assert.Contains(t, out, "No seats available for this flight!")

	assert.Contains(t, out, "Passenger: Ana Horvat\nID: 111, Email: ana@example.com, Phone: 0911234567\n")
	assert.Contains(t, out, "Seats Available: 0, Baggage Allowance: 20kg\n---------------------------------\n")
	assert.NotContains(t, out, "Passenger: Ivo Ivic")
	assert.Contains(t, out, "No ticket found with the provided ID.")

	assert.Equal(t, 1, strings.Count(out, "Flight canceled successfully!"))
	assert.Contains(t, out, "No booking found with the provided ID.")
	assert.Contains(t, out, "No booked flights available.")
	assert.True(t, strings.HasSuffix(out, "Exiting the system. Goodbye!\n"))
}

func TestShell_NoFlights(t *testing.T) {
	out := runShell(t, lines("3", "4", "5", "6 111", "7"))

	assert.Contains(t, out, "No flights available for booking.")
	assert.Contains(t, out, "No flights available.\n")
	assert.Contains(t, out, "No booked flights available.")
	assert.Contains(t, out, "No ticket found with the provided ID.")
}

func TestShell_InvalidChoices(t *testing.T) {
	out := runShell(t, lines("9", "abc", "0", "7"))

	assert.Equal(t, 3, strings.Count(out, "Invalid choice. Please try again."))
}

func TestShell_InvalidFlightSelection(t *testing.T) {
	out := runShell(t, lines(domesticFlight, "3 2", "3 x", "5", "7"))

	assert.Equal(t, 2, strings.Count(out, "Invalid flight selection."))
	assert.Contains(t, out, "No booked flights available.")
}

func TestShell_InternationalFlight(t *testing.T) {
	out := runShell(t, lines(
		"2 Zagreb Vienna Paris 10:00 12:05 01/07/2025 149.5 OS770 3 23",
		"3 1 Ana Horvat 111 ana@example.com 0911 Card Business",
		"7",
	))

	assert.Equal(t, 1, strings.Count(out, "Invalid city. Please select a valid international city."))
	assert.Contains(t, out, "International Flight: OS770\nDeparture: Vienna at 10:00\nArrival: Paris at 12:05\n")
	assert.Contains(t, out, "Date: 01/07/2025, Price: $149.5\n")
	assert.Contains(t, out, "Seats Available: 2, Baggage Allowance: 23kg\n")
}

func TestShell_NumericReprompt(t *testing.T) {
	out := runShell(t, lines(
		"1 Zagreb Split 07:10 08:00 12/06/2025 cheap 59.99 OU650 -3 many 4 x 20",
		"7",
	))

	assert.Equal(t, 1, strings.Count(out, "Invalid number. Please enter a non-negative number."))
	assert.Equal(t, 3, strings.Count(out, "Invalid number. Please enter a non-negative whole number."))
	assert.Contains(t, out, "Flight created successfully!")
}

func TestShell_DuplicateIDsCancelTogether(t *testing.T) {
	out := runShell(t, lines(
		"1 Zagreb Dubrovnik 07:10 08:00 12/06/2025 59.99 OU650 5 20",
		"3 1 Ana Horvat 111 ana@example.com 0911 Card Economy",
		"3 1 Ana Horvat 111 ana@example.com 0911 Card Economy",
		"4 111",
		"5",
		"7",
	))

	assert.Equal(t, 2, strings.Count(out, "Flight booked successfully!"))
	assert.Equal(t, 1, strings.Count(out, "Flight canceled successfully!"))
	assert.Contains(t, out, "No booked flights available.")
}

func TestShell_EndOfInputExits(t *testing.T) {
	out := runShell(t, "1 Zagreb")

	assert.True(t, strings.HasSuffix(out, "Exiting the system. Goodbye!\n"))
	assert.NotContains(t, out, "Flight created successfully!")
}

func TestShell_CancelledContext(t *testing.T) {
	flightRepo := repository.NewFlightRepository()
	v := validator.New()
	sh := New(
		flights.NewFlightService(flightRepo, v),
		booking.NewBookingService(repository.NewTicketRepository(), flightRepo),
		v,
		strings.NewReader("5\n7\n"),
		&bytes.Buffer{},
		Options{},
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, sh.Run(ctx), context.Canceled)
}

func TestParseChoice(t *testing.T) {
	choice, err := parseChoice("3")
	require.NoError(t, err)
	assert.Equal(t, choiceBook, choice)

	for _, token := range []string{"0", "8", "-1", "three"} {
		_, err := parseChoice(token)
		assert.Error(t, err, token)
	}
}
