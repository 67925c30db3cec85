package main

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	configureLogging()

	app := &cli.App{
		Name:  "legalaid",
		Usage: "Command line client for the legal aid portal",
		Commands: []*cli.Command{
			loginCommand(),
			logoutCommand(),
			registerCommand(),
			whoamiCommand(),
			forgotPasswordCommand(),
			resetPasswordCommand(),
			complaintsCommand(),
			sectionsCommand(),
			lawyersCommand(),
		},
	}
	return app.Run(args)
}

func configureLogging() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if os.Getenv("LEGALAID_DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
