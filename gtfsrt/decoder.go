package gtfsrt

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/theoremus-urban-solutions/bus-tracker/schema"
)

// Projection is the JSON-serializable view of one decoded message
type Projection map[string]any

// Decode parses payload as one instance of the descriptor's message type and
// projects it. Required fields are enforced, so empty or truncated payloads
// fail with a *DecodeError and no partial result.
func Decode(payload []byte, desc *schema.Descriptor) (Projection, error) {
	msg := desc.NewMessage()
	if err := proto.Unmarshal(payload, msg); err != nil {
		return nil, &DecodeError{Message: desc.FullName(), Err: err}
	}
	return Projection(projectMessage(msg)), nil
}

// CountEntities returns len(entity) of a FeedMessage projection
func CountEntities(p Projection) int {
	entities, _ := p["entity"].([]any)
	return len(entities)
}

func projectMessage(m protoreflect.Message) map[string]any {
	fields := m.Descriptor().Fields()
	out := make(map[string]any, fields.Len())
	for i := 0; i < fields.Len(); i++ {
		fd := fields.Get(i)
		if fd.ContainingOneof() != nil && !m.Has(fd) {
			continue
		}
		out[fd.JSONName()] = projectField(m, fd)
	}
	return out
}

func projectField(m protoreflect.Message, fd protoreflect.FieldDescriptor) any {
	switch {
	case fd.IsList():
		list := m.Get(fd).List()
		items := make([]any, list.Len())
		for i := range items {
			items[i] = projectValue(fd, list.Get(i))
		}
		return items
	case fd.IsMap():
		mv := m.Get(fd).Map()
		out := make(map[string]any, mv.Len())
		mv.Range(func(k protoreflect.MapKey, v protoreflect.Value) bool {
			out[k.String()] = projectValue(fd.MapValue(), v)
			return true
		})
		return out
	case fd.Message() != nil:
		if !m.Has(fd) {
			return nil
		}
		return projectMessage(m.Get(fd).Message())
	default:
		// Get returns the declared default for unset scalars
		return projectValue(fd, m.Get(fd))
	}
}

func projectValue(fd protoreflect.FieldDescriptor, v protoreflect.Value) any {
	switch fd.Kind() {
	case protoreflect.MessageKind, protoreflect.GroupKind:
		return projectMessage(v.Message())
	case protoreflect.EnumKind:
		return int32(v.Enum())
	case protoreflect.BoolKind:
		return v.Bool()
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind:
		return int32(v.Int())
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		return v.Int()
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		return uint32(v.Uint())
	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return v.Uint()
	case protoreflect.FloatKind:
		// float32 keeps the JSON output at the wire precision
		return float32(v.Float())
	case protoreflect.DoubleKind:
		return v.Float()
	case protoreflect.StringKind:
		return v.String()
	case protoreflect.BytesKind:
		return v.Bytes()
	}
	return v.Interface()
}

// HeaderTimestamp returns header.timestamp of a FeedMessage projection, or 0
func HeaderTimestamp(p Projection) uint64 {
	header, _ := p["header"].(map[string]any)
	ts, _ := header["timestamp"].(uint64)
	return ts
}
