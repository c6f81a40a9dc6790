package bustracker

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/bus-tracker/formatter"
	"github.com/theoremus-urban-solutions/bus-tracker/gtfsrt"
)

const (
	msgSchemaNotLoaded = "GTFS schema not loaded"
	msgFeedFailed      = "Failed to fetch GTFS"
)

// handleBuses fetches the upstream feed, decodes it and returns the projection.
// Every request does its own fetch; nothing is cached or shared.
func (s *Server) handleBuses(w http.ResponseWriter, r *http.Request) {
	logger := log.With().Str("request_id", middleware.GetReqID(r.Context())).Logger()

	desc, err := s.gate.Descriptor()
	if err != nil {
		logger.Warn().Err(err).Msg("rejecting request, schema unavailable")
		http.Error(w, msgSchemaNotLoaded, http.StatusServiceUnavailable)
		return
	}

	// in-flight upstream fetches are never aborted by the caller going away
	ctx := context.WithoutCancel(r.Context())
	feedURL := s.cfg.GTFSRT.FeedURL()

	start := time.Now()
	payload, err := s.fetcher.Fetch(ctx, feedURL)
	s.metrics.observeFetch(time.Since(start), err)
	if err != nil {
		logger.Error().Err(err).Str("url", feedURL).Msg("feed fetch failed")
		http.Error(w, msgFeedFailed, http.StatusInternalServerError)
		return
	}

	proj, err := gtfsrt.Decode(payload, desc)
	s.metrics.observeDecode(proj, err)
	if err != nil {
		logger.Error().Err(err).Str("url", feedURL).Int("bytes", len(payload)).Msg("feed decode failed")
		http.Error(w, msgFeedFailed, http.StatusInternalServerError)
		return
	}

	body, err := formatter.BuildJSON(proj)
	if err != nil {
		logger.Error().Err(err).Msg("encoding projection failed")
		http.Error(w, msgFeedFailed, http.StatusInternalServerError)
		return
	}

	if ts := gtfsrt.HeaderTimestamp(proj); ts > 0 {
		s.latestEpoch.Store(ts)
	}
	logger.Debug().Int("entities", gtfsrt.CountEntities(proj)).Msg("feed served")

	w.Header().Set("Content-Type", formatter.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
