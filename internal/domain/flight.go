package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

type FlightKind string

const (
	FlightKindDomestic      FlightKind = "DOMESTIC"
	FlightKindInternational FlightKind = "INTERNATIONAL"
)

var (
	DomesticCities = []string{"Zagreb", "Split", "Rijeka", "Dubrovnik", "Zadar"}

	InternationalCities = []string{
		"Amsterdam", "Vienna", "Brussels", "Frankfurt", "Copenhagen", "London",
		"Mostar", "Munich", "Paris", "Rome", "Sarajevo", "Zurich",
	}
)

// Label is the heading printed in front of a flight description.
func (k FlightKind) Label() string {
	switch k {
	case FlightKindDomestic:
		return "Domestic Flight"
	case FlightKindInternational:
		return "International Flight"
	default:
		return "Flight"
	}
}

// Cities returns the city names a flight of this kind may depart from or arrive at.
func (k FlightKind) Cities() []string {
	switch k {
	case FlightKindDomestic:
		return DomesticCities
	case FlightKindInternational:
		return InternationalCities
	default:
		return nil
	}
}

// AllowsCity matches name exactly, case included.
func (k FlightKind) AllowsCity(name string) bool {
	return slices.Contains(k.Cities(), name)
}

func (k FlightKind) Valid() bool {
	return k == FlightKindDomestic || k == FlightKindInternational
}

// Flight is one scheduled flight. ID is its 1-based position in the catalogue.
type Flight struct {
	ID               int64      `json:"id"`
	Kind             FlightKind `json:"kind"`
	FlightNumber     string     `json:"flight_number"`
	DepartureCity    string     `json:"departure_city"`
	ArrivalCity      string     `json:"arrival_city"`
	DepartureTime    string     `json:"departure_time"`
	ArrivalTime      string     `json:"arrival_time"`
	Date             string     `json:"date"`
	Price            float64    `json:"price"`
	TotalSeats       int        `json:"total_seats"`
	BaggageAllowance int        `json:"baggage_allowance_kg"`
}

func (f *Flight) AvailableSeats() int {
	return f.TotalSeats
}

// ConsumeSeat takes one seat. It does nothing once the flight is full.
func (f *Flight) ConsumeSeat() {
	if f.TotalSeats > 0 {
		f.TotalSeats--
	}
}

func (f *Flight) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", f.Kind.Label(), f.FlightNumber)
	fmt.Fprintf(&b, "Departure: %s at %s\n", f.DepartureCity, f.DepartureTime)
	fmt.Fprintf(&b, "Arrival: %s at %s\n", f.ArrivalCity, f.ArrivalTime)
	fmt.Fprintf(&b, "Date: %s, Price: $%s\n", f.Date, formatPrice(f.Price))
	fmt.Fprintf(&b, "Seats Available: %d, Baggage Allowance: %dkg\n", f.TotalSeats, f.BaggageAllowance)
	return b.String()
}

// formatPrice prints up to six significant digits without trailing zeros,
// so 79.9 stays "79.9" and 210 stays "210".
func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'g', 6, 64)
}
