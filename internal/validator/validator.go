package validator

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/go-playground/validator/v10"
)

var emailRegex = regexp.MustCompile(`^[A-Za-z0-9_.+-]+@[A-Za-z0-9-]+\.[A-Za-z0-9-.]+$`)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// Validator checks console input: email format, city names per flight kind and
// struct tags on service inputs.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	custom := map[string]validator.Func{
		"email_format":       validateEmailFormat,
		"domestic_city":      cityValidation(domain.FlightKindDomestic),
		"international_city": cityValidation(domain.FlightKindInternational),
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("register %q validation: %v", tag, err)
		}
	}

	return &Validator{validate: v}
}

func validateEmailFormat(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

func cityValidation(kind domain.FlightKind) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return kind.AllowsCity(fl.Field().String())
	}
}

func (v *Validator) Email(email string) error {
	if err := v.validate.Var(email, "email_format"); err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidEmailFormat, email)
	}
	return nil
}

func (v *Validator) City(kind domain.FlightKind, city string) error {
	var tag string
	switch kind {
	case domain.FlightKindDomestic:
		tag = "domestic_city"
	case domain.FlightKindInternational:
		tag = "international_city"
	default:
		return fmt.Errorf("%w: unknown flight kind %q", domain.ErrInvalidCityName, kind)
	}
	if err := v.validate.Var(city, tag); err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidCityName, city)
	}
	return nil
}

// Struct validates s by its `validate` tags and returns ValidationErrors on failure.
func (v *Validator) Struct(s any) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "min", "gte":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
