package schema

import (
	"fmt"
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// Source records where a Descriptor's schema text came from
type Source string

const (
	SourceRemote  Source = "remote"
	SourceBundled Source = "bundled"
)

// Descriptor is the compiled, read-only schema for one message type.
// It is safe for concurrent use.
type Descriptor struct {
	message protoreflect.MessageDescriptor
	source  Source
}

// NewDescriptor wraps an already resolved message descriptor
func NewDescriptor(md protoreflect.MessageDescriptor, source Source) *Descriptor {
	return &Descriptor{message: md, source: source}
}

// FullName is the fully qualified message name, e.g. transit_realtime.FeedMessage
func (d *Descriptor) FullName() protoreflect.FullName { return d.message.FullName() }

// Source reports whether the schema was fetched or bundled
func (d *Descriptor) Source() Source { return d.source }

// MessageDescriptor exposes the underlying protoreflect descriptor
func (d *Descriptor) MessageDescriptor() protoreflect.MessageDescriptor { return d.message }

// NewMessage returns an empty dynamic message of the descriptor's type
func (d *Descriptor) NewMessage() *dynamicpb.Message {
	return dynamicpb.NewMessage(d.message)
}

// findMessage resolves a fully qualified message name, including nested types
func findMessage(fd protoreflect.FileDescriptor, name string) (protoreflect.MessageDescriptor, error) {
	full := protoreflect.FullName(name)
	if !full.IsValid() {
		return nil, fmt.Errorf("invalid message type %q", name)
	}
	if md := findIn(fd.Messages(), full); md != nil {
		return md, nil
	}
	return nil, fmt.Errorf("message type %s not found in %s", full, fd.Path())
}

func findIn(msgs protoreflect.MessageDescriptors, full protoreflect.FullName) protoreflect.MessageDescriptor {
	for i := 0; i < msgs.Len(); i++ {
		md := msgs.Get(i)
		if md.FullName() == full {
			return md
		}
		if strings.HasPrefix(string(full), string(md.FullName())+".") {
			if nested := findIn(md.Messages(), full); nested != nil {
				return nested
			}
		}
	}
	return nil
}
