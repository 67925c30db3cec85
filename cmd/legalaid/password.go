package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func forgotPasswordCommand() *cli.Command {
	return &cli.Command{
		Name:  "forgot-password",
		Usage: "Request a one-time code for resetting a password",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Required: true},
		},
		Action: func(c *cli.Context) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			if err := app.manager.SendOTP(c.Context, c.String("email")); err != nil {
				return errors.Wrap(err, "error requesting one-time code")
			}
			fmt.Println("If an account with this email exists, an OTP has been sent.")
			return nil
		},
	}
}

func resetPasswordCommand() *cli.Command {
	return &cli.Command{
		Name:  "reset-password",
		Usage: "Reset a password using a one-time code",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Required: true},
			&cli.StringFlag{Name: "otp", Usage: "6 digit one-time code", Required: true},
			&cli.StringFlag{Name: "new-password", Required: true},
		},
		Action: func(c *cli.Context) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}

			email := c.String("email")
			if err := app.manager.VerifyOTP(c.Context, email, c.String("otp")); err != nil {
				return errors.Wrap(err, "one-time code verification failed")
			}
			if err := app.manager.ResetPassword(c.Context, email, c.String("new-password")); err != nil {
				return errors.Wrap(err, "error resetting password")
			}
			fmt.Println("Password was reset. Please log in with your new password.")
			return nil
		},
	}
}
