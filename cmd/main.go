package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/ethgateway/balance-gateway/api"
	"github.com/ethgateway/balance-gateway/cmd/flags"
	"github.com/ethgateway/balance-gateway/cmd/utils"
)

func main() {
	app := cli.NewApp()

	log.SetOutput(os.Stdout)
	// attempt to load a .env file to overwrite CLI flags, but allow it to not
	// exist.

	envFile := os.Getenv("BALANCE_GATEWAY_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}

	_ = godotenv.Load(envFile)

	app.Name = "Balance Gateway"
	app.Usage = "The Ethereum balance gateway command line interface"
	app.Description = "HTTP gateway exposing account balance lookups against an Ethereum execution node"
	app.EnableBashCompletion = true

	// All supported sub commands.
	app.Commands = []*cli.Command{
		{
			Name:        "api",
			Flags:       flags.APIFlags,
			Usage:       "Starts the balance gateway HTTP API software",
			Description: "Balance gateway HTTP API software",
			Action:      utils.SubcommandAction(new(api.API)),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
