package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/trip-planner/site/city"
	"github.com/trip-planner/site/logger"
	"github.com/trip-planner/site/metrics"
	"github.com/trip-planner/site/people"
	"github.com/trip-planner/site/ui"
)

// tripRequest is the submitted trip form. City names are replaced by their
// listed spelling before validation.
type tripRequest struct {
	Departure string   `validate:"required,city"`
	Arrival   string   `validate:"required,city,nefield=Departure"`
	AgeRanges []string `validate:"min=1,dive,age_range"`
}

var fieldLabels = map[string]string{
	"Departure": "Departure city",
	"Arrival":   "Arrival city",
	"AgeRanges": "Age range",
}

var tripValidator = newTripValidator()

func newTripValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, "city", func(fl validator.FieldLevel) bool {
		_, ok := city.Default.Lookup(fl.Field().String())
		return ok
	})
	mustRegister(v, "age_range", func(fl validator.FieldLevel) bool {
		return people.IsValidValue(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("registering %s validation: %v", tag, err))
	}
}

// canonicalCity returns the listed spelling of name when there is one.
func canonicalCity(name string) string {
	name = strings.TrimSpace(name)
	if listed, ok := city.Default.Lookup(name); ok {
		return listed
	}
	return name
}

// validateTrip returns one message per problem with the request.
func validateTrip(req tripRequest) []string {
	err := tripValidator.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, tripErrorMessage(fe))
	}
	return messages
}

func tripErrorMessage(fe validator.FieldError) string {
	field, _, _ := strings.Cut(fe.StructField(), "[")
	label := fieldLabels[field]
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "city":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(city.Default.Names(), ", "))
	case "nefield":
		return "Arrival city must differ from departure city"
	case "min":
		return "Add at least one person"
	case "age_range":
		return fmt.Sprintf("Unknown age range %q", fe.Value())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

// HandleTripSubmission validates the trip form and confirms it. Nothing is
// stored.
func HandleTripSubmission(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return render(c, ui.ValidationError("Invalid form submission"))
	}

	req := tripRequest{
		Departure: canonicalCity(firstValue(form.Value["departure"])),
		Arrival:   canonicalCity(firstValue(form.Value["arrival"])),
		AgeRanges: form.Value[people.FieldName],
	}

	if messages := validateTrip(req); len(messages) > 0 {
		metrics.RecordTripRejected()
		logger.Log.Debug().Strs("errors", messages).Msg("trip rejected")
		return render(c, ui.ValidationErrors(messages))
	}

	metrics.RecordTripAccepted(len(req.AgeRanges))
	logger.Log.Info().
		Str("departure", req.Departure).
		Str("arrival", req.Arrival).
		Int("travelers", len(req.AgeRanges)).
		Msg("trip planned")
	return render(c, ui.TripSummary(req.Departure, req.Arrival, req.AgeRanges))
}

func firstValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
