package validate

import (
	"errors"
	"fmt"
	"regexp"

	"tiffin-finder/storefront/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)
	pinPattern   = regexp.MustCompile(`^\d{6}$`)
	nonDigits    = regexp.MustCompile(`[^\d]`)
)

// Error is a form field that failed validation, with the message shown to
// the user.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

type Login struct {
	Email    string `validate:"notblank,email_format"`
	Password string `validate:"required"`
}

type Signup struct {
	Name            string `validate:"notblank"`
	Email           string `validate:"notblank,email_format"`
	Phone           string `validate:"notblank,in_phone"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"eqfield=Password"`
	Street          string `validate:"notblank"`
	City            string `validate:"notblank"`
	State           string `validate:"notblank"`
	ZipCode         string `validate:"notblank,pin_code"`
}

// Metadata is the profile stored with a new account.
func (s Signup) Metadata() model.UserMetadata {
	return model.UserMetadata{
		Name:  s.Name,
		Phone: s.Phone,
		Role:  model.RoleFoodSeeker,
		Address: &model.Address{
			Street:  s.Street,
			City:    s.City,
			State:   s.State,
			ZipCode: s.ZipCode,
		},
	}
}

type Profile struct {
	Name    string `validate:"notblank"`
	Phone   string `validate:"notblank,in_phone"`
	Street  string `validate:"notblank"`
	City    string `validate:"notblank"`
	State   string `validate:"notblank"`
	ZipCode string `validate:"notblank,pin_code"`
}

func (p Profile) Metadata() model.UserMetadata {
	return model.UserMetadata{
		Name:  p.Name,
		Phone: p.Phone,
		Address: &model.Address{
			Street:  p.Street,
			City:    p.City,
			State:   p.State,
			ZipCode: p.ZipCode,
		},
	}
}

const addressIncomplete = "Please complete your address information"

// messages is keyed by "Field.tag", with "Form.Field.tag" overrides.
var messages = map[string]string{
	"Email.notblank":           "Please enter your email address",
	"Email.email_format":       "Please enter a valid email address",
	"Password.required":        "Please enter your password",
	"Signup.Password.required": "Please enter a password",
	"Password.min":             "Password must be at least 6 characters long",
	"ConfirmPassword.eqfield":  "Passwords do not match",
	"Name.notblank":            "Please enter your name",
	"Signup.Name.notblank":     "Please enter your full name",
	"Phone.notblank":           "Please enter your phone number",
	"Phone.in_phone":           "Please enter a valid 10-digit phone number",
	"Street.notblank":          addressIncomplete,
	"City.notblank":            addressIncomplete,
	"State.notblank":           addressIncomplete,
	"ZipCode.notblank":         addressIncomplete,
	"ZipCode.pin_code":         "Please enter a valid 6-digit PIN code",
}

type Validator struct {
	validate *validator.Validate
}

var rules = map[string]validator.Func{
	"notblank": validators.NotBlank,
	"email_format": func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	},
	"in_phone": func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(nonDigits.ReplaceAllString(fl.Field().String(), ""))
	},
	"pin_code": func(fl validator.FieldLevel) bool {
		return pinPattern.MatchString(fl.Field().String())
	},
}

// New panics if a form rule cannot be registered.
func New() *Validator {
	v := validator.New()
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("validate: register %q: %v", tag, err))
		}
	}
	return &Validator{validate: v}
}

// Check validates a form and returns the first failure as an *Error.
func (v *Validator) Check(form interface{}) error {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	msg, ok := messages[fe.StructNamespace()+"."+fe.Tag()]
	if !ok {
		msg, ok = messages[fe.StructField()+"."+fe.Tag()]
	}
	if !ok {
		msg = "Please check " + fe.Field()
	}
	return &Error{Field: fe.StructField(), Message: msg}
}
