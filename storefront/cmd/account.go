package cmd

import (
	"errors"
	"fmt"

	"tiffin-finder/storefront/internal/validate"

	"github.com/spf13/cobra"
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a Tiffin Finder account",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		var form validate.Signup
		form.Name, _ = flags.GetString("name")
		form.Email, _ = flags.GetString("email")
		form.Phone, _ = flags.GetString("phone")
		form.Password, _ = flags.GetString("password")
		form.ConfirmPassword, _ = flags.GetString("confirm-password")
		form.Street, _ = flags.GetString("street")
		form.City, _ = flags.GetString("city")
		form.State, _ = flags.GetString("state")
		form.ZipCode, _ = flags.GetString("pin")
		if err := application.Validator.Check(form); err != nil {
			return err
		}

		if err := application.Auth.SignUp(cmd.Context(), form.Email, form.Password, form.Metadata()); err != nil {
			return errors.New(application.Auth.Err())
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Welcome to our family!")
		return nil
	},
}

var signinCmd = &cobra.Command{
	Use:   "signin",
	Short: "Sign in to your account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var form validate.Login
		form.Email, _ = cmd.Flags().GetString("email")
		form.Password, _ = cmd.Flags().GetString("password")
		if err := application.Validator.Check(form); err != nil {
			return err
		}

		if err := application.Auth.SignIn(cmd.Context(), form.Email, form.Password); err != nil {
			return errors.New(application.Auth.Err())
		}
		user, _ := application.Auth.User()
		fmt.Fprintf(cmd.OutOrStdout(), "Welcome back, %s!\n", displayName(user.Name, user.Email))
		return nil
	},
}

var signoutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Sign out of your account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := application.Auth.SignOut(cmd.Context()); err != nil {
			return errors.New(application.Auth.Err())
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
		return nil
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Renew the session before it expires",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := application.Backend.RefreshSession(cmd.Context())
		if err != nil {
			return err
		}
		// the TOKEN_REFRESHED event may still be in flight when the command exits
		application.Auth.CheckAuth(cmd.Context())
		fmt.Fprintf(cmd.OutOrStdout(), "Session renewed until %s.\n", result.Session.ExpiresAt.Local().Format("02 Jan 15:04"))
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Run: func(cmd *cobra.Command, args []string) {
		application.Auth.CheckAuth(cmd.Context())
		out := cmd.OutOrStdout()
		user, ok := application.Auth.User()
		if !ok {
			fmt.Fprintln(out, "Not signed in.")
			return
		}
		fmt.Fprintf(out, "%s <%s> (%s)\n", displayName(user.Name, user.Email), user.Email, user.Role)
		if user.Phone != "" {
			fmt.Fprintf(out, "Phone: %s\n", user.Phone)
		}
		if a := user.Address; a != nil {
			fmt.Fprintf(out, "Address: %s, %s, %s %s\n", a.Street, a.City, a.State, a.ZipCode)
		}
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Update your name, phone and address",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, ok := application.Auth.User()
		if !ok {
			return fmt.Errorf("please sign in to edit your profile")
		}

		form := validate.Profile{Name: user.Name, Phone: user.Phone}
		if user.Address != nil {
			form.Street, form.City, form.State, form.ZipCode = user.Address.Street, user.Address.City, user.Address.State, user.Address.ZipCode
		}
		flags := cmd.Flags()
		for flag, field := range map[string]*string{
			"name": &form.Name, "phone": &form.Phone, "street": &form.Street,
			"city": &form.City, "state": &form.State, "pin": &form.ZipCode,
		} {
			if flags.Changed(flag) {
				*field, _ = flags.GetString(flag)
			}
		}
		if err := application.Validator.Check(form); err != nil {
			return err
		}

		if _, err := application.Backend.UpdateProfile(cmd.Context(), form.Metadata()); err != nil {
			application.Log.WithError(err).Debug("profile update failed")
			return errors.New("Could not update profile. Please try again.")
		}
		// the USER_UPDATED event may still be in flight when the command exits
		application.Auth.CheckAuth(cmd.Context())
		fmt.Fprintln(cmd.OutOrStdout(), "Profile updated successfully!")
		return nil
	},
}

var forgetCmd = &cobra.Command{
	Use:   "forget",
	Short: "Remove the saved cart and session from this device",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := application.Forget(cmd.Context()); err != nil {
			return fmt.Errorf("failed to clear local data: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Local data cleared.")
		return nil
	},
}

func displayName(name, email string) string {
	if name != "" {
		return name
	}
	return email
}

func addAddressFlags(cmd *cobra.Command) {
	cmd.Flags().String("phone", "", "10-digit mobile number")
	cmd.Flags().String("street", "", "street address")
	cmd.Flags().String("city", "", "city")
	cmd.Flags().String("state", "", "state")
	cmd.Flags().String("pin", "", "6-digit PIN code")
}

func init() {
	signupCmd.Flags().String("name", "", "full name")
	signupCmd.Flags().String("email", "", "email address")
	signupCmd.Flags().String("password", "", "password, at least 6 characters")
	signupCmd.Flags().String("confirm-password", "", "the password again")
	addAddressFlags(signupCmd)

	signinCmd.Flags().String("email", "", "email address")
	signinCmd.Flags().String("password", "", "password")

	profileCmd.Flags().String("name", "", "full name")
	addAddressFlags(profileCmd)

	rootCmd.AddCommand(signupCmd, signinCmd, signoutCmd, refreshCmd, whoamiCmd, profileCmd, forgetCmd)
}
