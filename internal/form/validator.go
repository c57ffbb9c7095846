package form

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/noah-isme/sigue-client/pkg/errors"
)

var (
	mailboxPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	clockPattern   = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// NewValidate returns a validator engine with the form tags registered.
// Field names in errors follow the json tags.
func NewValidate() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "posint", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Field().String())
		return err == nil && n > 0
	})
	mustRegister(v, "personname", func(fl validator.FieldLevel) bool {
		return firstInvalidRune(fl.Field().String(), isPersonNameRune) < 0
	})
	mustRegister(v, "groupname", func(fl validator.FieldLevel) bool {
		return firstInvalidRune(fl.Field().String(), isGroupNameRune) < 0
	})
	mustRegister(v, "username", func(fl validator.FieldLevel) bool {
		return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
	})
	mustRegister(v, "mailbox", func(fl validator.FieldLevel) bool {
		return mailboxPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "clock", func(fl validator.FieldLevel) bool {
		return clockPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "selection", func(fl validator.FieldLevel) bool {
		_, ok := ParseSelection(fl.Field().String())
		return ok
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// Names allow the plain space only; tabs and line breaks are rejected.
func isPersonNameRune(r rune) bool {
	return unicode.IsLetter(r) || r == ' '
}

func isGroupNameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-'
}

func firstInvalidRune(value string, allowed func(rune) bool) rune {
	for _, r := range value {
		if !allowed(r) {
			return r
		}
	}
	return -1
}

// Validator turns raw form state into gateway payloads. It never touches the
// network.
type Validator struct {
	validate *validator.Validate
}

// New creates a form validator. A nil engine gets the default form tags.
func New(validate *validator.Validate) *Validator {
	if validate == nil {
		validate = NewValidate()
	}
	return &Validator{validate: validate}
}

// Struct validates an already decoded payload, e.g. a request body received
// by the gateway, with the same rules and messages as the forms.
func (v *Validator) Struct(payload interface{}) error {
	return v.check(payload)
}

// check validates a raw form struct and maps failures onto the validation
// taxonomy. Missing required fields win over every other failure and are
// reported together.
func (v *Validator) check(raw interface{}) error {
	err := v.validate.Struct(raw)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid form")
	}

	var missing []string
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" || fe.Tag() == "required_if" {
			missing = append(missing, fieldName(fe))
		}
	}
	if len(missing) > 0 {
		return appErrors.Invalid(appErrors.ErrMissingField, strings.Join(missing, ","),
			fmt.Sprintf("required fields missing: %s", strings.Join(missing, ", ")))
	}
	return translate(fieldErrs[0])
}

func translate(fe validator.FieldError) error {
	field := fieldName(fe)
	value := fmt.Sprint(fe.Value())

	switch fe.Tag() {
	case "posint", "gt":
		return appErrors.Invalid(appErrors.ErrInvalidNumber, field,
			fmt.Sprintf("%s must be a positive whole number", field))
	case "personname":
		return invalidCharacter(field, value, isPersonNameRune, "letters and spaces")
	case "groupname":
		return invalidCharacter(field, value, isGroupNameRune, "letters, digits, spaces or hyphens")
	case "username":
		return appErrors.Invalid(appErrors.ErrInvalidFormat, field, fmt.Sprintf("%s must not contain spaces", field))
	case "mailbox":
		return appErrors.Invalid(appErrors.ErrInvalidFormat, field,
			fmt.Sprintf("%s must look like user@domain.com", field))
	case "datetime":
		return appErrors.Invalid(appErrors.ErrInvalidDate, field,
			fmt.Sprintf("%s must use the YYYY-MM-DD format (e.g. 1995-01-30)", field))
	case "clock":
		return appErrors.Invalid(appErrors.ErrInvalidTime, field,
			fmt.Sprintf("%s must use the HH:MM format (e.g. 07:00 or 14:30)", field))
	case "selection", "oneof":
		return appErrors.Invalid(appErrors.ErrInvalidSelection, field,
			fmt.Sprintf("select a valid option for %s", field))
	default:
		return appErrors.Invalid(appErrors.ErrValidation, field, fmt.Sprintf("%s is invalid", field))
	}
}

func invalidCharacter(field, value string, allowed func(rune) bool, what string) error {
	r := firstInvalidRune(value, allowed)
	return appErrors.Invalid(appErrors.ErrInvalidFormat, field,
		fmt.Sprintf("%s may only contain %s; %q is not allowed", field, what, string(r)))
}

// fieldName strips slice indexes so list errors name the list field.
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}

func invalidSelection(field string) error {
	return appErrors.Invalid(appErrors.ErrInvalidSelection, field, fmt.Sprintf("select a valid option for %s", field))
}

func mustSelection(value string) int64 {
	id, _ := ParseSelection(value)
	return id
}

func mustInt(value string) int {
	n, _ := strconv.Atoi(value)
	return n
}
