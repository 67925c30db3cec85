package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Log in to the legal aid portal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "email",
				Aliases:  []string{"e"},
				Usage:    "Account email address",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "password",
				Aliases:  []string{"p"},
				Usage:    "Account password",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			displayAppname(app.cfg.GetAppName())

			if err := app.manager.Login(c.Context, c.String("email"), c.String("password")); err != nil {
				return errors.Wrap(err, "login failed")
			}

			state := app.manager.Current()
			fmt.Printf("Logged in as %s.\n", state.User.DisplayName())
			return nil
		},
	}
}
