package main

import (
	"fmt"

	"github.com/nyayasetu/go-legalaid/portal"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func lawyersCommand() *cli.Command {
	return &cli.Command{
		Name:  "lawyers",
		Usage: "Browse the verified lawyer network or apply to join it",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List verified lawyers",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "specialization", Usage: "Filter by specialization"},
					&cli.IntFlag{Name: "page", Value: 1},
					&cli.IntFlag{Name: "per-page", Value: 10},
				},
				Action: func(c *cli.Context) error {
					app, err := newAppContext()
					if err != nil {
						return err
					}
					if err := app.requireAuth(); err != nil {
						return err
					}

					page, err := portal.NewLawyersClient(app.api).Search(
						c.Context,
						c.String("specialization"),
						c.Int("page"),
						c.Int("per-page"),
					)
					if err != nil {
						return errors.Wrap(err, "error fetching lawyers")
					}

					if page.TotalItems == 0 {
						fmt.Println("No lawyers matched.")
						return nil
					}
					for _, lawyer := range page.Items {
						fmt.Printf("%s  (%s)  %s, %s  %s\n",
							lawyer.Name, lawyer.Specialization, lawyer.City, lawyer.State, lawyer.Email)
					}
					fmt.Printf("Page %d of %d (%d lawyers)\n", page.PageNumber, page.TotalPages, page.TotalItems)
					return nil
				},
			},
			{
				Name:  "apply",
				Usage: "Apply to join the lawyer network",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "phone", Required: true},
					&cli.StringFlag{Name: "bar-no", Usage: "Bar registration number", Required: true},
					&cli.StringFlag{Name: "specialization", Required: true},
					&cli.IntFlag{Name: "experience", Usage: "Years of experience"},
				},
				Action: func(c *cli.Context) error {
					app, err := newAppContext()
					if err != nil {
						return err
					}
					if err := app.requireAuth(); err != nil {
						return err
					}

					err = portal.NewLawyersClient(app.api).Apply(c.Context, portal.LawyerApplication{
						Name:              c.String("name"),
						Email:             c.String("email"),
						PhoneNumber:       c.String("phone"),
						BarRegistrationNo: c.String("bar-no"),
						Specialization:    c.String("specialization"),
						YearsOfExperience: c.Int("experience"),
					})
					if err != nil {
						return errors.Wrap(err, "error submitting application")
					}

					fmt.Println("Application submitted. You will be contacted once it is reviewed.")
					return nil
				},
			},
		},
	}
}
