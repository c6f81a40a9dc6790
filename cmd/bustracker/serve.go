package main

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	bustracker "github.com/theoremus-urban-solutions/bus-tracker"
	"github.com/theoremus-urban-solutions/bus-tracker/config"
	"github.com/theoremus-urban-solutions/bus-tracker/gtfsrt"
	"github.com/theoremus-urban-solutions/bus-tracker/schema"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve the decoded vehicle feed on /api/buses",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "override server.port"},
		},
		Action: func(c *cli.Context) error {
			cfg := config.Config
			if c.IsSet("port") {
				cfg.Server.Port = c.Int("port")
			}

			// The server listens even when the schema fails; /api/buses then answers 503.
			gate := schema.NewGate()
			loader := schema.NewLoader(gtfsrt.NewClient(cfg.Schema.Timeout()), cfg.Schema)
			if err := gate.Load(context.Background(), loader); err != nil {
				log.Error().Err(err).Msg("failed to load GTFS-RT schema")
			}

			srv := bustracker.NewServer(cfg, gate, gtfsrt.NewClient(cfg.GTFSRT.Timeout()), nil)
			srv.Start()
			srv.HandleGracefulShutdown()
			return nil
		},
	}
}
