package schema

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/bus-tracker/config"
)

// ErrSchemaUnavailable is reported while no compiled descriptor exists
var ErrSchemaUnavailable = errors.New("schema unavailable")

// Fetcher retrieves raw bytes from a URL or local path
type Fetcher interface {
	Fetch(ctx context.Context, urlOrPath string) ([]byte, error)
}

// Loader produces the process-wide Descriptor
type Loader struct {
	fetcher Fetcher
	cfg     config.SchemaConfig
}

// NewLoader creates a loader for cfg. fetcher may be nil for bundled sources.
func NewLoader(fetcher Fetcher, cfg config.SchemaConfig) *Loader {
	return &Loader{fetcher: fetcher, cfg: cfg}
}

// Load fetches and compiles the schema. Every failure wraps ErrSchemaUnavailable.
func (l *Loader) Load(ctx context.Context) (*Descriptor, error) {
	if Source(l.cfg.Source) == SourceBundled {
		d, err := Bundled(l.cfg.MessageType)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSchemaUnavailable, err)
		}
		log.Info().Str("message", string(d.FullName())).Msg("GTFS-RT schema loaded from bindings")
		return d, nil
	}

	if l.fetcher == nil {
		return nil, fmt.Errorf("%w: no fetcher configured", ErrSchemaUnavailable)
	}
	text, err := l.fetcher.Fetch(ctx, l.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaUnavailable, err)
	}
	d, err := Compile(ctx, protoFilename(l.cfg.URL), string(text), l.cfg.MessageType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaUnavailable, err)
	}
	log.Info().
		Str("url", l.cfg.URL).
		Str("message", string(d.FullName())).
		Int("bytes", len(text)).
		Msg("GTFS-RT schema compiled")
	return d, nil
}

// protoFilename derives the in-memory file name from the schema location
func protoFilename(src string) string {
	p := src
	if u, err := url.Parse(src); err == nil && u.Path != "" {
		p = u.Path
	}
	name := path.Base(p)
	if name == "." || name == "/" || !strings.HasSuffix(name, ".proto") {
		return "schema.proto"
	}
	return name
}
