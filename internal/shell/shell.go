package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/Domenick1991/airreservation/internal/service/booking"
	"github.com/Domenick1991/airreservation/internal/service/flights"
	"github.com/fatih/color"
)

const (
	choiceCreateDomestic = iota + 1
	choiceCreateInternational
	choiceBook
	choiceCancel
	choiceViewBookings
	choiceCheckTicket
	choiceExit
)

const ticketSeparator = "---------------------------------"

// InputChecker validates field values while they are collected.
type InputChecker interface {
	City(kind domain.FlightKind, city string) error
	Email(email string) error
}

type Options struct {
	Color  bool
	Banner string
}

// Shell is the interactive reservation menu. It is not safe for concurrent use.
type Shell struct {
	flights  flights.FlightUseCase
	bookings booking.BookingUseCase
	checker  InputChecker

	in  *tokenReader
	out io.Writer

	banner  string
	heading *color.Color
	success *color.Color
	failure *color.Color
}

func New(
	flightSvc flights.FlightUseCase,
	bookingSvc booking.BookingUseCase,
	checker InputChecker,
	in io.Reader,
	out io.Writer,
	opts Options,
) *Shell {
	s := &Shell{
		flights:  flightSvc,
		bookings: bookingSvc,
		checker:  checker,
		in:       newTokenReader(in),
		out:      out,
		banner:   opts.Banner,
		heading:  color.New(color.FgCyan, color.Bold),
		success:  color.New(color.FgGreen),
		failure:  color.New(color.FgRed),
	}
	if s.banner == "" {
		s.banner = "Airline Reservation System"
	}
	if !opts.Color {
		s.heading.DisableColor()
		s.success.DisableColor()
		s.failure.DisableColor()
	}
	return s
}

// Run serves the menu until the user exits or the input ends.
func (s *Shell) Run(ctx context.Context) error {
	for {
		s.printMenu()

		token, err := s.in.next(ctx)
		if err != nil {
			return s.stop(err)
		}

		choice, err := parseChoice(token)
		if err != nil {
			s.failure.Fprintln(s.out, "Invalid choice. Please try again.")
			continue
		}
		if choice == choiceExit {
			s.success.Fprintln(s.out, "Exiting the system. Goodbye!")
			return nil
		}

		if err := s.handle(ctx, choice); err != nil {
			return s.stop(err)
		}
	}
}

func (s *Shell) stop(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out)
		s.success.Fprintln(s.out, "Exiting the system. Goodbye!")
		return nil
	}
	return err
}

func parseChoice(token string) (int, error) {
	choice, err := strconv.Atoi(token)
	if err != nil || choice < choiceCreateDomestic || choice > choiceExit {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidMenuChoice, token)
	}
	return choice, nil
}

func (s *Shell) printMenu() {
	s.heading.Fprintf(s.out, "\n=== %s ===\n", s.banner)
	fmt.Fprint(s.out, "1. Create Domestic Flight\n"+
		"2. Create International Flight\n"+
		"3. Book a Flight\n"+
		"4. Cancel a Flight\n"+
		"5. View Booked Flights\n"+
		"6. Check Ticket by ID\n"+
		"7. Exit\n"+
		"Enter your choice: ")
}

// handle runs one menu action. Only input and context failures are returned;
// everything else is reported to the user.
func (s *Shell) handle(ctx context.Context, choice int) error {
	switch choice {
	case choiceCreateDomestic:
		return s.createFlight(ctx, domain.FlightKindDomestic)
	case choiceCreateInternational:
		return s.createFlight(ctx, domain.FlightKindInternational)
	case choiceBook:
		return s.bookFlight(ctx)
	case choiceCancel:
		return s.cancelFlight(ctx)
	case choiceViewBookings:
		return s.viewBookings(ctx)
	case choiceCheckTicket:
		return s.checkTicket(ctx)
	default:
		s.failure.Fprintln(s.out, "Invalid choice. Please try again.")
		return nil
	}
}

func (s *Shell) createFlight(ctx context.Context, kind domain.FlightKind) error {
	var (
		input flights.CreateFlightInput
		err   error
	)

	if input.DepartureCity, err = s.promptCity(ctx, kind, "Departure"); err != nil {
		return err
	}
	if input.ArrivalCity, err = s.promptCity(ctx, kind, "Arrival"); err != nil {
		return err
	}
	if input.DepartureTime, err = s.prompt(ctx, "Enter Departure Time (HH:MM): "); err != nil {
		return err
	}
	if input.ArrivalTime, err = s.prompt(ctx, "Enter Arrival Time (HH:MM): "); err != nil {
		return err
	}
	if input.Date, err = s.prompt(ctx, "Enter Date (DD/MM/YYYY): "); err != nil {
		return err
	}
	if input.Price, err = s.promptFloat(ctx, "Enter Price: "); err != nil {
		return err
	}
	if input.FlightNumber, err = s.prompt(ctx, "Enter Flight Number: "); err != nil {
		return err
	}
	if input.TotalSeats, err = s.promptCount(ctx, "Enter Total Seats: "); err != nil {
		return err
	}
	if input.BaggageAllowance, err = s.promptCount(ctx, "Enter Baggage Allowance (kg): "); err != nil {
		return err
	}

	if _, err := s.flights.Create(ctx, kind, input); err != nil {
		s.failure.Fprintf(s.out, "Flight could not be created: %v\n", err)
		return nil
	}
	s.success.Fprintln(s.out, "Flight created successfully!")
	return nil
}

func (s *Shell) promptCity(ctx context.Context, kind domain.FlightKind, direction string) (string, error) {
	label := fmt.Sprintf("Enter %s City (%s): ", direction, strings.Join(kind.Cities(), ", "))
	scope := "domestic"
	if kind == domain.FlightKindInternational {
		scope = "international"
	}

	for {
		city, err := s.prompt(ctx, label)
		if err != nil {
			return "", err
		}
		if err := s.checker.City(kind, city); err == nil {
			return city, nil
		}
		s.failure.Fprintf(s.out, "Invalid city. Please select a valid %s city.\n", scope)
	}
}

func (s *Shell) bookFlight(ctx context.Context) error {
	available, err := s.flights.List(ctx)
	if errors.Is(err, domain.ErrNoFlights) {
		s.failure.Fprintln(s.out, "No flights available for booking.")
		return nil
	}
	if err != nil {
		return err
	}

	s.heading.Fprintln(s.out, "Available Flights:")
	for i := range available {
		fmt.Fprintf(s.out, "%d. %s", i+1, available[i].Describe())
	}

	token, err := s.prompt(ctx, "Enter the flight number to book: ")
	if err != nil {
		return err
	}
	selection, err := strconv.Atoi(token)
	if err != nil || selection < 1 || selection > len(available) {
		s.failure.Fprintln(s.out, "Invalid flight selection.")
		return nil
	}
	flightID := available[selection-1].ID

	passenger, err := s.promptPassenger(ctx)
	if err != nil {
		return err
	}

	ticket, err := s.bookings.Book(ctx, flightID, passenger)
	switch {
	case errors.Is(err, domain.ErrNoSeatsAvailable):
		s.failure.Fprintln(s.out, "No seats available for this flight!")
		return nil
	case errors.Is(err, domain.ErrInvalidFlightSelection):
		s.failure.Fprintln(s.out, "Invalid flight selection.")
		return nil
	case err != nil:
		s.failure.Fprintf(s.out, "Booking failed: %v\n", err)
		return nil
	}

	s.success.Fprintln(s.out, "Flight booked successfully!")
	s.printTicket(ctx, ticket)
	return nil
}

func (s *Shell) promptPassenger(ctx context.Context) (domain.Passenger, error) {
	var (
		p   domain.Passenger
		err error
	)

	if p.Name, err = s.prompt(ctx, "Enter Passenger Name: "); err != nil {
		return p, err
	}
	if p.Surname, err = s.prompt(ctx, "Enter Passenger Surname: "); err != nil {
		return p, err
	}
	if p.IDNumber, err = s.prompt(ctx, "Enter ID Number: "); err != nil {
		return p, err
	}
	if p.Email, err = s.prompt(ctx, "Enter Email: "); err != nil {
		return p, err
	}
	for s.checker.Email(p.Email) != nil {
		s.failure.Fprint(s.out, "Invalid email format. ")
		if p.Email, err = s.prompt(ctx, "Please enter a valid email: "); err != nil {
			return p, err
		}
	}
	if p.PhoneNumber, err = s.prompt(ctx, "Enter Phone Number: "); err != nil {
		return p, err
	}
	if p.PaymentMethod, err = s.prompt(ctx, "Enter Payment Method: "); err != nil {
		return p, err
	}
	if p.SeatClass, err = s.prompt(ctx, "Enter Seat Class (Economy/Business): "); err != nil {
		return p, err
	}
	return p, nil
}

func (s *Shell) cancelFlight(ctx context.Context) error {
	if _, err := s.flights.List(ctx); err != nil {
		if errors.Is(err, domain.ErrNoFlights) {
			s.failure.Fprintln(s.out, "No flights available.")
			return nil
		}
		return err
	}

	id, err := s.prompt(ctx, "Enter ID Number to cancel the flight: ")
	if err != nil {
		return err
	}

	if _, err := s.bookings.Cancel(ctx, id); err != nil {
		if errors.Is(err, domain.ErrTicketNotFound) {
			s.failure.Fprintln(s.out, "No booking found with the provided ID.")
			return nil
		}
		s.failure.Fprintf(s.out, "Cancellation failed: %v\n", err)
		return nil
	}
	s.success.Fprintln(s.out, "Flight canceled successfully!")
	return nil
}

func (s *Shell) viewBookings(ctx context.Context) error {
	tickets, err := s.bookings.List(ctx)
	if errors.Is(err, domain.ErrNoBookings) {
		s.failure.Fprintln(s.out, "No booked flights available.")
		return nil
	}
	if err != nil {
		return err
	}

	for ticket := range tickets {
		s.printTicket(ctx, &ticket)
		fmt.Fprintln(s.out, ticketSeparator)
	}
	return nil
}

func (s *Shell) checkTicket(ctx context.Context) error {
	id, err := s.prompt(ctx, "Enter ID Number to check the ticket: ")
	if err != nil {
		return err
	}

	ticket, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrTicketNotFound) {
			s.failure.Fprintln(s.out, "No ticket found with the provided ID.")
			return nil
		}
		return err
	}
	s.printTicket(ctx, ticket)
	return nil
}

func (s *Shell) printTicket(ctx context.Context, ticket *domain.Ticket) {
	text, err := s.bookings.Describe(ctx, ticket)
	if err != nil {
		text = ticket.Describe(nil)
	}
	fmt.Fprint(s.out, text)
}
