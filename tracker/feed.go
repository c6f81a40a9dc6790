package tracker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// ErrClientPoll matches every *PollError
var ErrClientPoll = errors.New("client poll failed")

var errMissingEntities = errors.New("response has no entity array")

// PollError reports which stage of a poll cycle failed
type PollError struct {
	Stage string // fetch, parse or render
	Err   error
}

func (e *PollError) Error() string {
	return fmt.Sprintf("poll %s: %v", e.Stage, e.Err)
}

func (e *PollError) Unwrap() error { return e.Err }

func (e *PollError) Is(target error) bool { return target == ErrClientPoll }

// Feed is the part of the /api/buses response the client reads
type Feed struct {
	Entity []Entity `json:"entity"`
}

// Entity is one feed record; Vehicle is nil for non-vehicle entities
type Entity struct {
	ID      string   `json:"id"`
	Vehicle *Vehicle `json:"vehicle"`
}

// Vehicle carries the position and trip of one bus
type Vehicle struct {
	Position *Position `json:"position"`
	Trip     *Trip     `json:"trip"`
}

// Position is a WGS84 location in degrees
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Trip identifies the route a vehicle is serving
type Trip struct {
	RouteID string `json:"routeId"`
}

// Source yields the latest feed
type Source interface {
	Fetch(ctx context.Context) (*Feed, error)
}

// HTTPSource reads the feed from the bus tracker API
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates a source for apiURL (e.g. http://localhost:3000/api/buses)
func NewHTTPSource(apiURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{url: apiURL, client: &http.Client{Timeout: timeout}}
}

// Fetch performs one GET and parses the JSON body
func (s *HTTPSource) Fetch(ctx context.Context) (*Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, &PollError{Stage: "fetch", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &PollError{Stage: "fetch", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &PollError{Stage: "fetch", Err: fmt.Errorf("read body: %w", err)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &PollError{Stage: "fetch", Err: fmt.Errorf("HTTP %d from %s: %.200s", resp.StatusCode, s.url, body)}
	}

	var doc struct {
		Entity *[]Entity `json:"entity"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &PollError{Stage: "parse", Err: err}
	}
	if doc.Entity == nil {
		return nil, &PollError{Stage: "parse", Err: errMissingEntities}
	}
	return &Feed{Entity: *doc.Entity}, nil
}
