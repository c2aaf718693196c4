package producer

import (
	"github.com/pkg/errors"

	"github.com/veloq/corriere/codec"
)

// A Topic names a stream on the broker together with the types of the
// keys and values it carries. The type parameters tie serializers to
// the topic at compile time; only the name travels to the broker.
type Topic[K, V any] struct {
	// Name is the topic name on the broker.
	Name string
}

// NewTopic declares a topic carrying K typed keys and V typed values.
func NewTopic[K, V any](name string) Topic[K, V] {
	return Topic[K, V]{Name: name}
}

// A Target selects how the partition and key of a produced record are
// determined. There are exactly three kinds of target: Unkeyed,
// Partition and Topic.Key. A nil Target is equivalent to Unkeyed().
type Target interface {
	isTarget()
}

type unkeyedTarget struct{}

func (unkeyedTarget) isTarget() {}

// Unkeyed targets a record at no particular partition: the record
// carries no key and the partitioner decides its placement.
func Unkeyed() Target {
	return unkeyedTarget{}
}

type partitionTarget struct {
	partition int32
}

func (partitionTarget) isTarget() {}

// Partition targets a record at an explicit partition. The record
// carries no key. Explicit placement relies on a partitioner that
// honours it, such as the one NewConfig installs.
func Partition(partition int32) Target {
	return partitionTarget{partition: partition}
}

type keyTarget struct {
	encode func(topic string) ([]byte, error)
}

func (keyTarget) isTarget() {}

// Key targets records at the partition derived from key, so that
// records sharing a key always land on the same partition. The key is
// serialized with ser when the record is built; the receiver ties the
// key's type to the topic's.
func (Topic[K, V]) Key(key K, ser codec.Serializer[K]) Target {
	return keyTarget{
		encode: func(topic string) ([]byte, error) {
			if ser == nil {
				return nil, errors.New("no key serializer given")
			}
			return ser.Serialize(topic, key)
		},
	}
}
