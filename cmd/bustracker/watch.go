package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/theoremus-urban-solutions/bus-tracker/config"
	"github.com/theoremus-urban-solutions/bus-tracker/tracker"
)

func watchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "poll /api/buses and keep the marker layer up to date",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "api", Usage: "override client.apiURL"},
			&cli.StringFlag{Name: "geojson", Usage: "override client.geojsonPath"},
		},
		Action: func(c *cli.Context) error {
			cfg := config.Config.Client
			if c.IsSet("api") {
				cfg.APIURL = c.String("api")
			}
			if c.IsSet("geojson") {
				cfg.GeoJSONPath = c.String("geojson")
			}

			renderers := tracker.Renderers{tracker.LogRenderer{}}
			if cfg.GeoJSONPath != "" {
				renderers = append(renderers, tracker.GeoJSONRenderer{Path: cfg.GeoJSONPath})
			}

			view := tracker.NewView(cfg.Center.Lon, cfg.Center.Lat, cfg.Zoom)
			log.Info().
				Str("api", cfg.APIURL).
				Float64("center_x", view.Center.X).
				Float64("center_y", view.Center.Y).
				Float64("zoom", view.Zoom).
				Dur("interval", cfg.PollInterval()).
				Msg("watching bus positions")

			poller := tracker.NewPoller(
				tracker.NewHTTPSource(cfg.APIURL, config.Config.GTFSRT.Timeout()),
				tracker.NewLayer(renderers),
				tracker.WithInterval(cfg.PollInterval()),
				tracker.WithStyler(tracker.Styler{PixelRatio: cfg.PixelRatio}),
			)
			poller.Start(context.Background())

			signals := make(chan os.Signal, 1)
			signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(signals)
			<-signals

			log.Info().Msg("stopping poller")
			poller.Stop()
			return nil
		},
	}
}
