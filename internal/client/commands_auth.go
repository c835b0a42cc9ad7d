package client

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/sheetcharts/internal/utils"
	"github.com/MKhiriev/sheetcharts/models"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// clipboardWrite is swapped in tests; headless CI has no clipboard.
var clipboardWrite = clipboard.WriteAll

func (a *App) registerCommand() *cobra.Command {
	var req models.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewReader(a.in)
			var err error
			if req.Name, err = prompt(in, a.out, "Name", req.Name); err != nil {
				return err
			}
			if req.Email, req.Password, err = askCredentials(in, a.out, req.Email, req.Password); err != nil {
				return err
			}

			session, err := a.rt.services.AuthService.Register(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Registered and logged in as %s <%s>\n", session.User.Name, session.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "display name")
	cmd.Flags().StringVar(&req.Email, "email", "", "e-mail address")
	cmd.Flags().StringVar(&req.Password, "password", "", "password (prompted when omitted)")

	return cmd
}

func (a *App) loginCommand() *cobra.Command {
	var (
		req       models.LoginRequest
		copyToken bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			req.Email, req.Password, err = askCredentials(bufio.NewReader(a.in), a.out, req.Email, req.Password)
			if err != nil {
				return err
			}

			session, err := a.rt.services.AuthService.Login(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Logged in as %s <%s> (%s)\n", session.User.Name, session.User.Email, session.User.Role)
			if copyToken {
				a.copyToken(session.Token)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "e-mail address")
	cmd.Flags().StringVar(&req.Password, "password", "", "password (prompted when omitted)")
	cmd.Flags().BoolVar(&copyToken, "copy-token", false, "copy the bearer token to the clipboard")

	return cmd
}

func (a *App) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.rt.services.AuthService.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Logged out.")
			return nil
		},
	}
}

func (a *App) whoamiCommand() *cobra.Command {
	var copyToken bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.session(cmd.Context())
			if err != nil {
				return err
			}

			user, err := a.rt.services.AuthService.Whoami(cmd.Context(), session)
			if err != nil {
				return err
			}

			var expires time.Time
			if claims, err := utils.ParseUnverifiedClaims(session.Token); err == nil && claims.ExpiresAt != nil {
				expires = claims.ExpiresAt.Time
			}

			fmt.Fprintf(a.out, "User:    %s <%s>\n", user.Name, user.Email)
			fmt.Fprintf(a.out, "ID:      %d\n", user.UserID)
			fmt.Fprintf(a.out, "Role:    %s\n", user.Role)
			fmt.Fprintf(a.out, "Server:  %s\n", session.ServerURL)
			fmt.Fprintf(a.out, "Expires: %s\n", formatExpiry(expires))

			if copyToken {
				a.copyToken(session.Token)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToken, "copy-token", false, "copy the bearer token to the clipboard")

	return cmd
}

func (a *App) copyToken(token string) {
	if err := clipboardWrite(token); err != nil {
		fmt.Fprintf(a.errOut, "warning: clipboard unavailable: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Token copied to clipboard.")
}

func askCredentials(in *bufio.Reader, out io.Writer, email, password string) (string, string, error) {
	email, err := prompt(in, out, "Email", email)
	if err != nil {
		return "", "", err
	}
	password, err = prompt(in, out, "Password", password)
	if err != nil {
		return "", "", err
	}
	if email == "" || password == "" {
		return "", "", errMissingCredentials
	}
	return email, password, nil
}
