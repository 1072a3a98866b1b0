package validatorx

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"

	gpvalidator "github.com/go-playground/validator/v10"
)

const (
	TagEmail    = "email_format"
	TagPassword = "password_policy"

	passwordMinLength = 12
	passwordSymbols   = "@#$%^&+=!-_"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex

	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	ErrInvalidEmail    = errors.New("Invalid email format.")
	ErrInvalidPassword = errors.New("Password does not meet security requirements.")
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}

	nv := gpvalidator.New()
	// report fields by their JSON name so clients see "tableNumber", not "TableNumber"
	nv.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = nv.RegisterValidation(TagEmail, func(fl gpvalidator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	_ = nv.RegisterValidation(TagPassword, func(fl gpvalidator.FieldLevel) bool {
		return IsValidPassword(fl.Field().String())
	})
	v = nv
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// ValidateEmail checks the local@domain.tld shape.
func ValidateEmail(email string) error {
	if !IsValidEmail(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePassword enforces the password policy: at least 12 characters with
// an upper-case letter, a lower-case letter, a digit and one of @#$%^&+=!-_.
func ValidatePassword(password string) error {
	if !IsValidPassword(password) {
		return ErrInvalidPassword
	}
	return nil
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func IsValidPassword(password string) bool {
	if len([]rune(password)) < passwordMinLength {
		return false
	}

	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

// Describe turns a validation error into a client message naming the first
// failing field. Errors that did not come from the validator are returned as is.
func Describe(err error) string {
	var verrs gpvalidator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Missing required field: %s", fe.Field())
	case TagEmail:
		return ErrInvalidEmail.Error()
	case TagPassword:
		return ErrInvalidPassword.Error()
	case "datetime":
		return fmt.Sprintf("Invalid format for field: %s, expected %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("Invalid value for field: %s", fe.Field())
	}
}
