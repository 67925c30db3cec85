package main

import (
	"fmt"

	"github.com/nyayasetu/go-legalaid/portal"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func complaintsCommand() *cli.Command {
	return &cli.Command{
		Name:  "complaints",
		Usage: "Analyze complaints and browse your complaint history",
		Subcommands: []*cli.Command{
			{
				Name:  "analyze",
				Usage: "Submit a complaint for analysis",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "text", Usage: "Complaint text", Required: true},
					&cli.StringFlag{Name: "date", Usage: "Date of incident (YYYY-MM-DD)"},
				},
				Action: func(c *cli.Context) error {
					app, err := newAppContext()
					if err != nil {
						return err
					}
					if err := app.requireAuth(); err != nil {
						return err
					}

					analysis, err := portal.NewComplaintsClient(app.api).Analyze(
						c.Context, c.String("text"), c.String("date"),
					)
					if err != nil {
						return errors.Wrap(err, "error analyzing complaint")
					}

					fmt.Printf("Urgency:  %s\n", analysis.PredictedUrgency)
					fmt.Printf("Category: %s\n", analysis.PredictedCategory)
					fmt.Println("Recommended IPC sections:")
					for _, section := range analysis.RecommendedSections {
						fmt.Printf("  %s  %s — %s\n", section.SectionNumber, section.Title, section.ShortDescription)
					}
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "List your complaint history",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "urgency", Usage: "Filter by urgency (high, medium, low)"},
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

					page, err := portal.NewComplaintsClient(app.api).HistoryPage(
						c.Context,
						portal.UrgencyLevel(c.String("urgency")),
						c.Int("page"),
						c.Int("per-page"),
					)
					if err != nil {
						return errors.Wrap(err, "error fetching complaint history")
					}

					if page.TotalItems == 0 {
						fmt.Println("You have not submitted any complaints yet.")
						return nil
					}
					for _, complaint := range page.Items {
						fmt.Printf("#%d  [%s]  %s  (%s)\n",
							complaint.ID, complaint.PredictedUrgency, complaint.PredictedCategory, complaint.CreatedAt)
					}
					fmt.Printf("Page %d of %d (%d complaints)\n", page.PageNumber, page.TotalPages, page.TotalItems)
					return nil
				},
			},
		},
	}
}
