package gtfsrt

import (
	"errors"
	"fmt"
	"testing"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func TestDecode_VehiclePosition(t *testing.T) {
	desc := bundledDescriptor(t)
	payload := feedBytes(t, vehicleEntity("bus-1", 49.8879, -119.4960, "11-A"))

	p, err := Decode(payload, desc)
	require.NoError(t, err)
	require.Equal(t, 1, CountEntities(p))

	entity := p["entity"].([]any)[0].(map[string]any)
	assert.Equal(t, "bus-1", entity["id"])

	vehicle := entity["vehicle"].(map[string]any)
	position := vehicle["position"].(map[string]any)
	assert.Equal(t, float32(49.8879), position["latitude"])
	assert.Equal(t, float32(-119.4960), position["longitude"])

	trip := vehicle["trip"].(map[string]any)
	assert.Equal(t, "11-A", trip["routeId"])
}

func TestDecode_FillsDefaults(t *testing.T) {
	desc := bundledDescriptor(t)
	p, err := Decode(feedBytes(t, vehicleEntity("bus-1", 1, 2, "")), desc)
	require.NoError(t, err)

	header := p["header"].(map[string]any)
	assert.Equal(t, "2.0", header["gtfsRealtimeVersion"])
	assert.Equal(t, int32(0), header["incrementality"], "FULL_DATASET")
	assert.Equal(t, uint64(1700000000), header["timestamp"])

	entity := p["entity"].([]any)[0].(map[string]any)
	assert.Equal(t, false, entity["isDeleted"])
	assert.Contains(t, entity, "tripUpdate")
	assert.Nil(t, entity["tripUpdate"])

	vehicle := entity["vehicle"].(map[string]any)
	assert.Equal(t, int32(2), vehicle["currentStatus"], "declared default IN_TRANSIT_TO")
	assert.Equal(t, uint32(0), vehicle["currentStopSequence"])
	assert.Equal(t, "", vehicle["stopId"])
	assert.Contains(t, vehicle, "trip")
	assert.Nil(t, vehicle["trip"])

	position := vehicle["position"].(map[string]any)
	assert.Equal(t, float32(0), position["bearing"])
	assert.Equal(t, float64(0), position["odometer"])
}

func TestDecode_EntityCount(t *testing.T) {
	desc := bundledDescriptor(t)

	for _, n := range []int{0, 1, 7} {
		t.Run(fmt.Sprintf("%d entities", n), func(t *testing.T) {
			entities := make([]*gtfsrtpb.FeedEntity, n)
			for i := range entities {
				entities[i] = vehicleEntity(fmt.Sprintf("bus-%d", i), 49, -119, "97")
			}
			p, err := Decode(feedBytes(t, entities...), desc)
			require.NoError(t, err)
			assert.Equal(t, n, CountEntities(p))
			assert.NotNil(t, p["entity"], "repeated fields are never nil")
		})
	}
}

func TestDecode_Deterministic(t *testing.T) {
	desc := bundledDescriptor(t)
	payload := feedBytes(t,
		vehicleEntity("a", 49.1, -119.1, "1"),
		vehicleEntity("b", 49.2, -119.2, "12-variant"),
	)

	first, err := Decode(payload, desc)
	require.NoError(t, err)
	second, err := Decode(payload, desc)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDecode_Rejects(t *testing.T) {
	desc := bundledDescriptor(t)
	valid := feedBytes(t, vehicleEntity("bus-1", 49.8879, -119.4960, "11-A"))

	headerless, err := proto.MarshalOptions{AllowPartial: true}.Marshal(&gtfsrtpb.FeedMessage{
		Entity: []*gtfsrtpb.FeedEntity{vehicleEntity("bus-1", 1, 2, "1")},
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		payload []byte
	}{
		{name: "empty", payload: []byte{}},
		{name: "garbage", payload: []byte{0xff, 0xff, 0xff, 0xff}},
		{name: "length past end", payload: []byte{0x0a, 0x10, 0x01}},
		{name: "truncated", payload: valid[:len(valid)-1]},
		{name: "missing required header", payload: headerless},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Decode(tt.payload, desc)
			require.Error(t, err)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, ErrDecode)

			var de *DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, "transit_realtime.FeedMessage", string(de.Message))
			assert.NotNil(t, errors.Unwrap(err))
		})
	}
}
