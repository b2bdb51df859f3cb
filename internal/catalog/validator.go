package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/NeoCity_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// JobTypeTag is the struct tag checking a legal/illegal job type
const JobTypeTag = "jobtype"

// InitValidator initializes the global validator.
// It panics if a custom tag cannot be registered, which only happens on a bad tag definition.
func InitValidator() {
	v := validator.New()

	if err := v.RegisterValidation(JobTypeTag, validateJobType); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", JobTypeTag, err))
	}

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a field -> message map
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = err.Error()
		return errs
	}

	for _, e := range validationErrors {
		field := e.Namespace()
		switch e.Tag() {
		case "required":
			errs[field] = "is required"
		case JobTypeTag:
			errs[field] = fmt.Sprintf("must be %q or %q", domain.JobTypeLegal, domain.JobTypeIllegal)
		case "unique":
			errs[field] = fmt.Sprintf("must be unique by %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("must have at least %s entries", e.Param())
		case "gte":
			errs[field] = fmt.Sprintf("must be at least %s", e.Param())
		case "lte":
			errs[field] = fmt.Sprintf("must be at most %s", e.Param())
		default:
			errs[field] = "invalid value"
		}
	}

	return errs
}

// validationError flattens a validation failure into a single ErrInvalidCatalog error
func validationError(source string, err error) error {
	fields := FormatValidationError(err)
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+fields[k])
	}
	return fmt.Errorf("%w: %s: %s", domain.ErrInvalidCatalog, source, strings.Join(parts, "; "))
}

func validateJobType(fl validator.FieldLevel) bool {
	switch domain.JobType(fl.Field().String()) {
	case domain.JobTypeLegal, domain.JobTypeIllegal:
		return true
	default:
		return false
	}
}
