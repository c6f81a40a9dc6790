package schema

import (
	"context"
	"fmt"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/bufbuild/protocompile"
)

// Compile parses .proto source text held in memory and resolves messageType.
// Imports of the well-known google/protobuf files are satisfied locally.
func Compile(ctx context.Context, filename, source, messageType string) (*Descriptor, error) {
	compiler := protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(&protocompile.SourceResolver{
			Accessor: protocompile.SourceAccessorFromMap(map[string]string{filename: source}),
		}),
	}
	files, err := compiler.Compile(ctx, filename)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", filename, err)
	}
	md, err := findMessage(files[0], messageType)
	if err != nil {
		return nil, err
	}
	return NewDescriptor(md, SourceRemote), nil
}

// Bundled resolves messageType from the gtfs-realtime.proto compiled into the
// MobilityData Go bindings. No network access is involved.
func Bundled(messageType string) (*Descriptor, error) {
	md, err := findMessage(gtfsrtpb.File_gtfs_realtime_proto, messageType)
	if err != nil {
		return nil, err
	}
	return NewDescriptor(md, SourceBundled), nil
}
