package service

import (
	"context"
	"fmt"

	"github.com/Kauesamartino/WorksafeApp/internal"
)

type RegistrationAPI interface {
	Register(ctx context.Context, req internal.CreateUserRequest) (*internal.User, error)
}

type PostalLookup interface {
	LookupPostalCode(ctx context.Context, code string) (*internal.PostalAddress, error)
}

// RegistrationForm is filled in three steps: identity, credentials, address.
type RegistrationForm struct {
	FirstName string `form:"nome" validate:"required"`
	LastName  string `form:"sobrenome" validate:"required"`
	Email     string `form:"email" validate:"required,email"`

	Username        string `form:"username" validate:"required"`
	Password        string `form:"password" validate:"required"`
	ConfirmPassword string `form:"confirmPassword" validate:"eqfield=Password"`
	PasswordLength  int    `form:"password" validate:"min=6"`

	CPF        string `form:"cpf"`
	Sex        string `form:"sexo" validate:"omitempty,oneof=MASCULINO FEMININO"`
	Phone      string `form:"telefone"`
	Role       string `form:"cargo"`
	Department string `form:"departamento"`
	BirthDate  string `form:"dataNascimento"` // as typed, DD/MM/YYYY

	Address internal.Address
}

var registrationSteps = map[int][]string{
	1: {"FirstName", "LastName", "Email"},
	2: {"Username", "Password", "ConfirmPassword", "PasswordLength"},
}

// ValidateRegistrationStep checks the fields collected on one step (1 to 3).
func ValidateRegistrationStep(f RegistrationForm, step int) error {
	f.FirstName, f.LastName, f.Email = trim(f.FirstName), trim(f.LastName), trim(f.Email)
	f.Username = trim(f.Username)
	f.PasswordLength = len(f.Password)
	if trim(f.Password) == "" {
		f.Password = ""
	}

	switch step {
	case 1, 2:
		return validateStruct(f, registrationSteps[step]...)
	case 3:
		if err := validateStruct(f, "Sex"); err != nil {
			return err
		}
		if f.Address.PostalCode == "" {
			return nil
		}
		if trim(f.Address.Street) == "" {
			return internal.NewValidationError("logradouro", internal.ErrRequired)
		}
		if trim(f.Address.City) == "" {
			return internal.NewValidationError("cidade", internal.ErrRequired)
		}
		return nil
	}
	return fmt.Errorf("unknown registration step %d", step)
}

func ValidateRegistration(f RegistrationForm) error {
	for step := 1; step <= 3; step++ {
		if err := ValidateRegistrationStep(f, step); err != nil {
			return err
		}
	}
	return nil
}

// ToCreateUserRequest validates every step and builds the wire payload with
// masks removed where the API expects raw values.
func (f RegistrationForm) ToCreateUserRequest() (internal.CreateUserRequest, error) {
	if err := ValidateRegistration(f); err != nil {
		return internal.CreateUserRequest{}, err
	}
	addr := f.Address
	if addr.PostalCode != "" {
		addr.PostalCode = FormatPostalCode(addr.PostalCode)
	}
	return internal.CreateUserRequest{
		FirstName: trim(f.FirstName),
		LastName:  trim(f.LastName),
		CPF:       DigitsOnly(f.CPF),
		Sex:       f.Sex,
		Email:     trim(f.Email),
		Phone:     FormatPhone(f.Phone),
		Credentials: internal.Credentials{
			Username: trim(f.Username),
			Password: f.Password,
		},
		Role:       f.Role,
		Department: f.Department,
		BirthDate:  DisplayDateToWire(f.BirthDate),
		Address:    addr,
	}, nil
}

// FillAddress completes the address from the postal code once it has all 8
// digits. Shorter codes are left alone.
func FillAddress(ctx context.Context, lookup PostalLookup, f *RegistrationForm) error {
	if len(DigitsOnly(f.Address.PostalCode)) != 8 {
		return nil
	}
	addr, err := lookup.LookupPostalCode(ctx, f.Address.PostalCode)
	if err != nil {
		return err
	}
	f.Address.Street = addr.Street
	f.Address.Neighborhood = addr.Neighborhood
	f.Address.City = addr.City
	f.Address.State = addr.State
	f.Address.PostalCode = FormatPostalCode(addr.Code)
	return nil
}

func Register(ctx context.Context, api RegistrationAPI, f RegistrationForm) (*internal.User, error) {
	req, err := f.ToCreateUserRequest()
	if err != nil {
		return nil, err
	}
	return api.Register(ctx, req)
}
