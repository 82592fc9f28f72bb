package handler

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors is the error returned when payload validation fails. The HTTP
// error handler renders it as a 400 response whose JSON body maps field names
// to messages — the exact shape the admin client merges back into its local
// form state.
type FieldErrors struct {
	Fields map[string]string
}

func (e *FieldErrors) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var phonePattern = regexp.MustCompile(`^(\+)?[0-9 ]+$`)

// validPhone implements the "phone" rule: optional leading +, digits and
// spaces only, and exactly 10 or 11 digits overall.
func validPhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !phonePattern.MatchString(value) {
		return false
	}
	digits := 0
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits == 10 || digits == 11
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()

	// Report fields under their JSON names so error keys line up with the
	// request payload (and with the client's form field names).
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("phone", validPhone)
	v.RegisterStructValidation(contactEmailOrPhone, contactRequest{})

	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. On failure it returns a
// *FieldErrors carrying one message per offending field.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		key := fieldKey(fe)
		if _, seen := fields[key]; !seen {
			fields[key] = fieldMessage(fe)
		}
	}
	return &FieldErrors{Fields: fields}
}

// contactEmailOrPhone enforces the cross-field rule: a contact must carry an
// email or at least one non-empty phone number. The error attaches to the
// synthetic group-level key "emailOrPhone", not to an individual field.
func contactEmailOrPhone(sl validator.StructLevel) {
	req := sl.Current().Interface().(contactRequest)
	if req.Email != "" {
		return
	}
	for _, phone := range req.PhoneNumbers {
		if phone != "" {
			return
		}
	}
	sl.ReportError(req.Email, "emailOrPhone", "EmailOrPhone", "email_or_phone", "")
}

// fieldKey builds the error-map key from the validator namespace, e.g.
// "contactRequest.phoneNumbers[0]" → "phoneNumbers[0]".
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// fieldMessage converts a single ValidationError into a human-readable message.
func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return "must be a valid email address"
	case "phone":
		return "must contain only digits and spaces, with 10 or 11 digits"
	case "email_or_phone":
		return "either an email address or a phone number is required"
	case "numeric":
		return field + " must contain only digits"
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
