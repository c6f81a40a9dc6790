package gtfsrt

import (
	"testing"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/bus-tracker/schema"
)

func bundledDescriptor(t *testing.T) *schema.Descriptor {
	t.Helper()
	d, err := schema.Bundled("transit_realtime.FeedMessage")
	require.NoError(t, err)
	return d
}

func vehicleEntity(id string, lat, lon float32, routeID string) *gtfsrtpb.FeedEntity {
	vp := &gtfsrtpb.VehiclePosition{
		Position: &gtfsrtpb.Position{
			Latitude:  proto.Float32(lat),
			Longitude: proto.Float32(lon),
		},
	}
	if routeID != "" {
		vp.Trip = &gtfsrtpb.TripDescriptor{RouteId: proto.String(routeID)}
	}
	return &gtfsrtpb.FeedEntity{Id: proto.String(id), Vehicle: vp}
}

func feedBytes(t *testing.T, entities ...*gtfsrtpb.FeedEntity) []byte {
	t.Helper()
	msg := &gtfsrtpb.FeedMessage{
		Header: &gtfsrtpb.FeedHeader{
			GtfsRealtimeVersion: proto.String("2.0"),
			Timestamp:           proto.Uint64(1700000000),
		},
		Entity: entities,
	}
	b, err := proto.Marshal(msg)
	require.NoError(t, err)
	return b
}
