package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/theoremus-urban-solutions/bus-tracker/config"
	"github.com/theoremus-urban-solutions/bus-tracker/internal"
)

func main() {
	app := &cli.App{
		Name:        "bustracker",
		Description: "Live bus positions from a GTFS-Realtime vehicle feed",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config.yml (defaults to ./config.yml, then ./configs/config.yml)",
				EnvVars: []string{"BUSTRACKER_CONFIG"},
			},
		},
		Before: func(c *cli.Context) error {
			if err := loadConfig(c.String("config")); err != nil {
				return err
			}
			internal.InitLogging(config.Config.Logging.Format, config.Config.Logging.Level)
			return nil
		},
		Commands: []*cli.Command{
			serveCommand(),
			watchCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func loadConfig(path string) error {
	if path == "" {
		return config.LoadAppConfig()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	config.Config = cfg
	return nil
}
