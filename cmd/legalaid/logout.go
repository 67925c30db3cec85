package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "Log out and delete the stored session",
		Action: func(c *cli.Context) error {
			app, err := newAppContext()
			if err != nil {
				return err
			}
			// Logout is purely local: tokens and the profile snapshot
			// are deleted, no network call is made.
			if err := app.manager.Logout(); err != nil {
				return errors.Wrap(err, "error deleting session")
			}
			fmt.Println("Logout was successful.")
			return nil
		},
	}
}
