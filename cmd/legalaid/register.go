package main

import (
	"fmt"

	"github.com/nyayasetu/go-legalaid/session"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func registerCommand() *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "Create a new account",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "first-name", Required: true},
			&cli.StringFlag{Name: "last-name", Required: true},
			&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Required: true},
			&cli.StringFlag{Name: "phone", Usage: "10 digit phone number", Required: true},
			&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true},
		},
		Action: func(c *cli.Context) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}

			email := c.String("email")
			phone := c.String("phone")

			// Probe availability first so conflicts come back per field.
			if err := app.manager.CheckEmailPhone(c.Context, email, phone); err != nil {
				fieldErrors := &session.FieldErrors{}
				if errors.As(err, &fieldErrors) {
					if fieldErrors.Email != "" {
						fmt.Printf("email: %s\n", fieldErrors.Email)
					}
					if fieldErrors.Phone != "" {
						fmt.Printf("phone: %s\n", fieldErrors.Phone)
					}
					return errors.New("registration aborted")
				}
				return err
			}

			err = app.manager.Register(c.Context, session.RegisterInput{
				FirstName:   c.String("first-name"),
				LastName:    c.String("last-name"),
				Email:       email,
				PhoneNumber: phone,
				Password:    c.String("password"),
			})
			if err != nil {
				return err
			}

			state := app.manager.Current()
			fmt.Printf("Welcome, %s. You are now logged in.\n", state.User.DisplayName())
			return nil
		},
	}
}
