package validation

import (
	"fmt"
	"regexp"

	errors "github.com/rizalfh/payment-sandbox/internal"
)

type ValidatorFunc func(interface{}) *errors.AppError

type FieldValidator struct {
	FieldName  string
	Value      interface{}
	Validators []ValidatorFunc
}

type ValidationBuilder struct {
	fields []FieldValidator
	errors []errors.ValidationError
}

func NewValidator() *ValidationBuilder {
	return &ValidationBuilder{
		fields: make([]FieldValidator, 0),
		errors: make([]errors.ValidationError, 0),
	}
}

func (v *ValidationBuilder) Field(name string, value interface{}) *FieldValidator {
	fv := FieldValidator{
		FieldName:  name,
		Value:      value,
		Validators: make([]ValidatorFunc, 0),
	}
	v.fields = append(v.fields, fv)
	return &v.fields[len(v.fields)-1]
}

// Apply attaches pre-built validators to a field, used when the active
// validator set is selected at runtime rather than written inline.
func (v *ValidationBuilder) Apply(name string, value interface{}, validators []ValidatorFunc) *ValidationBuilder {
	fv := v.Field(name, value)
	fv.Validators = append(fv.Validators, validators...)
	return v
}

func (fv *FieldValidator) Required() *FieldValidator {
	fv.Validators = append(fv.Validators, Required(fv.FieldName))
	return fv
}

func (fv *FieldValidator) MinFloat(min float64, code errors.ErrorCode) *FieldValidator {
	fv.Validators = append(fv.Validators, MinFloat(fv.FieldName, min, code))
	return fv
}

func (fv *FieldValidator) MinLength(min int) *FieldValidator {
	fv.Validators = append(fv.Validators, MinLength(fv.FieldName, min))
	return fv
}

func (fv *FieldValidator) MaxLength(max int) *FieldValidator {
	fv.Validators = append(fv.Validators, MaxLength(fv.FieldName, max))
	return fv
}

func (fv *FieldValidator) Pattern(re *regexp.Regexp, message string, code errors.ErrorCode) *FieldValidator {
	fv.Validators = append(fv.Validators, Pattern(fv.FieldName, re, message, code))
	return fv
}

func (fv *FieldValidator) Email() *FieldValidator {
	fv.Validators = append(fv.Validators, Email(fv.FieldName))
	return fv
}

func (fv *FieldValidator) Custom(validator func(interface{}) *errors.AppError) *FieldValidator {
	fv.Validators = append(fv.Validators, validator)
	return fv
}

// ----------------- STANDALONE VALIDATORS -----------------
//
// These are the building blocks for validator sets that are assembled per
// payment method and handed around as values.

func Required(fieldName string) ValidatorFunc {
	return func(value interface{}) *errors.AppError {
		switch v := value.(type) {
		case string:
			if v == "" {
				return errors.NewValidationFieldError(fieldName, fmt.Sprintf("%s is required", fieldName), errors.ErrCodeValidationFailed)
			}
		case float64:
			if v == 0 {
				if fieldName == "amount" {
					return errors.NewValidationFieldError(fieldName, "amount is required", errors.ErrCodeInvalidAmount)
				}
				return errors.NewValidationFieldError(fieldName, fmt.Sprintf("%s is required", fieldName), errors.ErrCodeValidationFailed)
			}
		case *string:
			if v == nil || *v == "" {
				return errors.NewValidationFieldError(fieldName, fmt.Sprintf("%s is required", fieldName), errors.ErrCodeValidationFailed)
			}
		}
		return nil
	}
}

func MinFloat(fieldName string, min float64, code errors.ErrorCode) ValidatorFunc {
	return func(value interface{}) *errors.AppError {
		if v, ok := value.(float64); ok {
			if v < min {
				var message string
				if fieldName == "amount" {
					message = fmt.Sprintf("amount must be at least %.2f", min)
				} else {
					message = fmt.Sprintf("%s must be at least %v", fieldName, min)
				}
				return errors.NewValidationFieldError(fieldName, message, code)
			}
		}
		return nil
	}
}

func MinLength(fieldName string, min int) ValidatorFunc {
	return func(value interface{}) *errors.AppError {
		if v, ok := value.(string); ok {
			if len(v) < min {
				message := fmt.Sprintf("%s must be at least %d characters", fieldName, min)
				return errors.NewValidationFieldError(fieldName, message, errors.ErrCodeValidationFailed)
			}
		}
		return nil
	}
}

func MaxLength(fieldName string, max int) ValidatorFunc {
	return func(value interface{}) *errors.AppError {
		if v, ok := value.(string); ok {
			if len(v) > max {
				message := fmt.Sprintf("%s must not exceed %d characters", fieldName, max)
				return errors.NewValidationFieldError(fieldName, message, errors.ErrCodeValidationFailed)
			}
		}
		return nil
	}
}

func Pattern(fieldName string, re *regexp.Regexp, message string, code errors.ErrorCode) ValidatorFunc {
	return func(value interface{}) *errors.AppError {
		if v, ok := value.(string); ok {
			// empty values are Required's concern, not the pattern's
			if v != "" && !re.MatchString(v) {
				return errors.NewValidationFieldError(fieldName, message, code)
			}
		}
		return nil
	}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func Email(fieldName string) ValidatorFunc {
	return Pattern(fieldName, emailPattern, fmt.Sprintf("%s must be a valid email address", fieldName), errors.ErrCodeInvalidEmail)
}

func (v *ValidationBuilder) Validate() *errors.AppError {
	var validationErrors []errors.ValidationError

	for _, field := range v.fields {
		for _, validator := range field.Validators {
			if err := validator(field.Value); err != nil {
				if appErr, ok := errors.IsAppError(err); ok {

					if appErr.Details != nil {
						if details, ok := appErr.Details.(errors.ValidationErrors); ok {
							validationErrors = append(validationErrors, details.Errors...)
						} else {

							validationError := errors.ValidationError{
								Field:   field.FieldName,
								Message: appErr.Message,
								Code:    string(appErr.Code),
							}
							validationErrors = append(validationErrors, validationError)
						}
					} else {

						validationError := errors.ValidationError{
							Field:   field.FieldName,
							Message: appErr.Message,
							Code:    string(appErr.Code),
						}
						validationErrors = append(validationErrors, validationError)
					}
				}
			}
		}
	}

	if len(validationErrors) > 0 {
		return errors.NewValidationError("Validation failed", errors.ErrCodeValidationFailed).
			WithDetails(errors.ValidationErrors{Errors: validationErrors})
	}

	return nil
}
