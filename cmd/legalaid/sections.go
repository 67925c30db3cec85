package main

import (
	"fmt"

	"github.com/nyayasetu/go-legalaid/portal"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func sectionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "sections",
		Usage: "Browse and search Indian Penal Code sections",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "search", Usage: "Search text"},
			&cli.StringFlag{Name: "category", Usage: "Restrict to a category"},
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

			page, err := portal.NewSectionsClient(app.api).Search(
				c.Context,
				c.String("search"),
				c.String("category"),
				c.Int("page"),
				c.Int("per-page"),
			)
			if err != nil {
				return errors.Wrap(err, "error fetching IPC sections")
			}

			if page.TotalItems == 0 {
				fmt.Println("No sections matched.")
				return nil
			}
			for _, section := range page.Items {
				fmt.Printf("IPC %s  %s [%s]\n", section.SectionNumber, section.Title, section.MappedCategory)
				fmt.Printf("    %s\n", section.ShortDescription)
			}
			fmt.Printf("Page %d of %d (%d sections)\n", page.PageNumber, page.TotalPages, page.TotalItems)
			return nil
		},
	}
}
