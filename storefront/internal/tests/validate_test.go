package tests

import (
	"errors"
	"testing"

	"tiffin-finder/storefront/internal/model"
	"tiffin-finder/storefront/internal/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSignup() validate.Signup {
	return validate.Signup{
		Name:            "Asha Verma",
		Email:           "asha@example.com",
		Phone:           "98765 43210",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Street:          "12 MG Road",
		City:            "Delhi",
		State:           "Delhi",
		ZipCode:         "110001",
	}
}

func TestNew_RegistersFormRules(t *testing.T) {
	var v *validate.Validator
	require.NotPanics(t, func() { v = validate.New() })

	tests := []struct {
		name  string
		form  interface{}
		field string
	}{
		{name: "notblank", form: validate.Login{Email: "   ", Password: "x"}, field: "Email"},
		{name: "email_format", form: validate.Login{Email: "asha@", Password: "x"}, field: "Email"},
		{name: "in_phone", form: func() validate.Signup { s := validSignup(); s.Phone = "12345"; return s }(), field: "Phone"},
		{name: "pin_code", form: func() validate.Signup { s := validSignup(); s.ZipCode = "1100"; return s }(), field: "ZipCode"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			var fieldErr *validate.Error
			require.True(t, errors.As(v.Check(testCase.form), &fieldErr))
			assert.Equal(t, testCase.field, fieldErr.Field)
		})
	}
}

func TestCheck_Signup(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(s *validate.Signup)
		wantField string
		wantMsg   string
	}{
		{name: "valid", mutate: func(s *validate.Signup) {}},
		{
			name:      "blank name",
			mutate:    func(s *validate.Signup) { s.Name = "   " },
			wantField: "Name",
			wantMsg:   "Please enter your full name",
		},
		{
			name:      "missing email",
			mutate:    func(s *validate.Signup) { s.Email = "" },
			wantField: "Email",
			wantMsg:   "Please enter your email address",
		},
		{
			name:      "malformed email",
			mutate:    func(s *validate.Signup) { s.Email = "asha@example" },
			wantField: "Email",
			wantMsg:   "Please enter a valid email address",
		},
		{
			name:      "short phone",
			mutate:    func(s *validate.Signup) { s.Phone = "12345" },
			wantField: "Phone",
			wantMsg:   "Please enter a valid 10-digit phone number",
		},
		{
			name:      "phone starting below six",
			mutate:    func(s *validate.Signup) { s.Phone = "5876543210" },
			wantField: "Phone",
			wantMsg:   "Please enter a valid 10-digit phone number",
		},
		{
			name:      "missing password",
			mutate:    func(s *validate.Signup) { s.Password, s.ConfirmPassword = "", "" },
			wantField: "Password",
			wantMsg:   "Please enter a password",
		},
		{
			name:      "short password",
			mutate:    func(s *validate.Signup) { s.Password, s.ConfirmPassword = "abc", "abc" },
			wantField: "Password",
			wantMsg:   "Password must be at least 6 characters long",
		},
		{
			name:      "passwords differ",
			mutate:    func(s *validate.Signup) { s.ConfirmPassword = "secret2" },
			wantField: "ConfirmPassword",
			wantMsg:   "Passwords do not match",
		},
		{
			name:      "missing city",
			mutate:    func(s *validate.Signup) { s.City = "" },
			wantField: "City",
			wantMsg:   "Please complete your address information",
		},
		{
			name:      "bad pin code",
			mutate:    func(s *validate.Signup) { s.ZipCode = "1100" },
			wantField: "ZipCode",
			wantMsg:   "Please enter a valid 6-digit PIN code",
		},
	}

	v := validate.New()
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			form := validSignup()
			testCase.mutate(&form)

			err := v.Check(form)
			if testCase.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			var fieldErr *validate.Error
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, testCase.wantField, fieldErr.Field)
			assert.Equal(t, testCase.wantMsg, fieldErr.Error())
		})
	}
}

func TestCheck_Login(t *testing.T) {
	tests := []struct {
		name    string
		form    validate.Login
		wantMsg string
	}{
		{name: "valid", form: validate.Login{Email: "a@b.co", Password: "x"}},
		{name: "no email", form: validate.Login{Password: "x"}, wantMsg: "Please enter your email address"},
		{name: "no password", form: validate.Login{Email: "a@b.co"}, wantMsg: "Please enter your password"},
	}

	v := validate.New()
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := v.Check(testCase.form)
			if testCase.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, testCase.wantMsg)
		})
	}
}

func TestCheck_Profile(t *testing.T) {
	v := validate.New()
	profile := validate.Profile{Name: "", Phone: "9876543210", Street: "1 Park St", City: "Kolkata", State: "WB", ZipCode: "700016"}
	assert.EqualError(t, v.Check(profile), "Please enter your name")

	profile.Name = "Ravi"
	require.NoError(t, v.Check(profile))

	meta := profile.Metadata()
	assert.Equal(t, "Ravi", meta.Name)
	require.NotNil(t, meta.Address)
	assert.Equal(t, "700016", meta.Address.ZipCode)
}

func TestSignupMetadata(t *testing.T) {
	meta := validSignup().Metadata()
	assert.Equal(t, model.RoleFoodSeeker, meta.Role)
	assert.Equal(t, "Asha Verma", meta.Name)
	require.NotNil(t, meta.Address)
	assert.Equal(t, "Delhi", meta.Address.City)
}
