package main

import (
	"errors"
	"fmt"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/Kauesamartino/WorksafeApp/internal/service"
	"github.com/Kauesamartino/WorksafeApp/internal/theme"
	"github.com/spf13/cobra"
)

func newLoginCmd(e *env) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" || password == "" {
				return errors.New("--username and --password are required")
			}
			resp, err := e.client.Login(cmd.Context(), internal.LoginRequest{Username: username, Password: password})
			if err != nil {
				return err
			}
			if resp.Token == "" {
				return errors.New("login answered without a token")
			}
			fmt.Fprintln(e.out, theme.Title.Render("Logged in as "+username))
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password")
	return cmd
}

func newLogoutCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			e.client.Logout(cmd.Context())
			fmt.Fprintln(e.out, "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the profile of the logged in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := e.client.UserInfo(cmd.Context())
			if errors.Is(err, internal.ErrNoSession) {
				return errNotLoggedIn
			}
			if err != nil {
				return err
			}
			body := fmt.Sprintf("%s\n%s\n%s · %s", theme.Title.Render(user.Name), user.Email, user.Role, user.Department)
			fmt.Fprintln(e.out, theme.Card(body))
			return nil
		},
	}
}

func newRegisterCmd(e *env) *cobra.Command {
	var f service.RegistrationForm
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Long: `Create a new account. When --cep is given the street, neighborhood,
city and state are filled in from the postal code service unless set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if f.Address.PostalCode != "" && f.Address.Street == "" {
				if err := service.FillAddress(ctx, e.client, &f); err != nil {
					return fmt.Errorf("cep %s: %w", f.Address.PostalCode, err)
				}
			}
			user, err := service.Register(ctx, e.client, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(e.out, "Account created for %s (id %d). Log in with `worksafe login -u %s`.\n", user.Name, user.ID, f.Username)
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.FirstName, "nome", "", "First name")
	fl.StringVar(&f.LastName, "sobrenome", "", "Last name")
	fl.StringVar(&f.Email, "email", "", "E-mail")
	fl.StringVar(&f.Username, "username", "", "Username")
	fl.StringVar(&f.Password, "password", "", "Password (at least 6 characters)")
	fl.StringVar(&f.ConfirmPassword, "confirm-password", "", "Password again")
	fl.StringVar(&f.CPF, "cpf", "", "CPF")
	fl.StringVar(&f.Sex, "sexo", "", "MASCULINO or FEMININO")
	fl.StringVar(&f.Phone, "telefone", "", "Phone")
	fl.StringVar(&f.Role, "cargo", "", "Job title")
	fl.StringVar(&f.Department, "departamento", "", "Department")
	fl.StringVar(&f.BirthDate, "nascimento", "", "Birth date, DD/MM/YYYY")
	fl.StringVar(&f.Address.PostalCode, "cep", "", "Postal code")
	fl.StringVar(&f.Address.Street, "logradouro", "", "Street")
	fl.StringVar(&f.Address.Number, "numero", "", "Number")
	fl.StringVar(&f.Address.Complement, "complemento", "", "Complement")
	fl.StringVar(&f.Address.Neighborhood, "bairro", "", "Neighborhood")
	fl.StringVar(&f.Address.City, "cidade", "", "City")
	fl.StringVar(&f.Address.State, "uf", "", "State")
	return cmd
}

func newCEPCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "cep <code>",
		Short: "Look up a postal code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := e.client.LookupPostalCode(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(e.out, "%s\n%s, %s\n%s - %s\n",
				service.FormatPostalCode(addr.Code), addr.Street, addr.Neighborhood, addr.City, addr.State)
			return nil
		},
	}
}
