package producer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/veloq/corriere/codec"
)

// PartitionAny marks a record whose placement is left to the
// partitioner instead of being chosen by the caller.
const PartitionAny int32 = -1

// A Header is a single record header. Headers reach the broker in the
// order they were given.
type Header struct {
	Key   string
	Value []byte
}

// A Record is the serialized, broker-ready form of a message, produced
// by NewRecord. The dispatch path reads it without copying, so it must
// not be modified once built.
type Record struct {
	// Topic is the name of the destination topic.
	Topic string

	// Key holds the serialized key, or nil when the record carries
	// no key.
	Key []byte

	// Value holds the serialized value.
	Value []byte

	// Partition is the explicit destination partition, or PartitionAny
	// when placement is left to the partitioner.
	Partition int32

	// Headers travel with the record, in order.
	Headers []Header
}

// RecordMetadata reports where the broker stored a record, exactly as
// the client reported it on acknowledgement.
type RecordMetadata struct {
	Topic     string
	Partition int32
	Offset    int64
	Timestamp time.Time
}

// A Delivery is the outcome of producing one record: the metadata of an
// acknowledged record, or a non-nil error.
type Delivery struct {
	Metadata RecordMetadata
	Err      error
}

// NewRecord serializes value, and for keyed targets the key, into a
// Record bound for topic. The key is serialized first and the first
// failure stops the build, so a failing serializer means no Record and
// nothing sent to the broker. Serializer failures are reported as
// *SerializationError.
func NewRecord[K, V any](topic Topic[K, V], value V, valueSer codec.Serializer[V], target Target, headers ...Header) (*Record, error) {
	rec := &Record{
		Topic:     topic.Name,
		Partition: PartitionAny,
	}
	if len(headers) > 0 {
		rec.Headers = append([]Header(nil), headers...)
	}

	switch t := target.(type) {
	case nil, unkeyedTarget:
	case partitionTarget:
		rec.Partition = t.partition
	case keyTarget:
		key, err := t.encode(topic.Name)
		if err != nil {
			return nil, &SerializationError{Topic: topic.Name, What: "key", Err: err}
		}
		rec.Key = key
	default:
		return nil, errors.Errorf("unknown produce target %T", target)
	}

	if valueSer == nil {
		return nil, &SerializationError{Topic: topic.Name, What: "value", Err: errors.New("no value serializer given")}
	}
	data, err := valueSer.Serialize(topic.Name, value)
	if err != nil {
		return nil, &SerializationError{Topic: topic.Name, What: "value", Err: err}
	}
	rec.Value = data

	return rec, nil
}
