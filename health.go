package bustracker

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/bus-tracker/formatter"
	"github.com/theoremus-urban-solutions/bus-tracker/utils"
)

type healthResponse struct {
	Status                  string `json:"status"`
	Schema                  string `json:"schema"`
	SchemaSource            string `json:"schema_source,omitempty"`
	LatestGTFSRealtimeEpoch uint64 `json:"latest_gtfsrt_epoch"`
	LatestGTFSRealtimeTime  string `json:"latest_gtfsrt_time,omitempty"`
	FeedAgeSeconds          int64  `json:"feed_age_seconds"`
	ResponseTimestamp       string `json:"response_timestamp"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	epoch := s.latestEpoch.Load()
	resp := healthResponse{
		Status:                  "ok",
		Schema:                  s.gate.State().String(),
		LatestGTFSRealtimeEpoch: epoch,
		LatestGTFSRealtimeTime:  utils.Iso8601FromUnixSeconds(epoch),
		FeedAgeSeconds:          int64(utils.FeedAge(epoch, time.Now()) / time.Second),
		ResponseTimestamp:       utils.Iso8601Now(),
	}
	code := http.StatusOK
	if desc, err := s.gate.Descriptor(); err != nil {
		resp.Status = "unavailable"
		code = http.StatusServiceUnavailable
	} else {
		resp.SchemaSource = string(desc.Source())
	}

	body, err := formatter.BuildJSON(resp)
	if err != nil {
		log.Error().Err(err).Msg("encoding health response failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", formatter.ContentTypeJSON)
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

