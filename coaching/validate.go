package coaching

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(time.DateOnly, fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("15:04", fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("service", func(fl validator.FieldLevel) bool {
		return ServiceType(fl.Field().String()).Valid()
	})
	v.RegisterValidation("rank", func(fl validator.FieldLevel) bool {
		return Rank(fl.Field().String()).Valid()
	})
	v.RegisterValidation("leadsource", func(fl validator.FieldLevel) bool {
		return LeadSource(fl.Field().String()).Valid()
	})

	return v
}

// Validate checks a command input against its struct tags. Failures wrap
// ErrInvalidInput and list every offending field.
func Validate(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Namespace(), fieldMessage(fe)))
	}
	sort.Strings(msgs)

	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "date":
		return "must be a date in YYYY-MM-DD form"
	case "clock":
		return "must be a time in HH:MM form"
	case "service", "rank", "leadsource":
		return fmt.Sprintf("unknown %s %q", fe.Tag(), fe.Value())
	default:
		return fmt.Sprintf("invalid %s", fe.Field())
	}
}
