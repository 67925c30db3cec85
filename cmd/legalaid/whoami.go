package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func whoamiCommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "Show the current session",
		Action: func(c *cli.Context) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			if err := app.requireAuth(); err != nil {
				return err
			}

			state := app.manager.Current()
			fmt.Printf("Name:  %s\n", state.User.DisplayName())
			fmt.Printf("Email: %s\n", state.User.Email)
			fmt.Printf("Role:  %s\n", state.UserRole)
			if expiry, ok := app.manager.TokenExpiry(); ok {
				fmt.Printf("Access token expires: %s\n", expiry.Local())
			}
			return nil
		},
	}
}
