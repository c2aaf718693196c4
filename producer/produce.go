package producer

import (
	"context"

	"github.com/veloq/corriere/codec"
)

// Produce serializes value according to target, sends the record to
// the broker and waits for its acknowledgement. It returns the
// placement metadata exactly as the client reported it. The error is a
// *SerializationError if a serializer failed, in which case nothing
// was sent, a *DeliveryError if the client could not deliver the
// record, or ErrClosed if p has been closed.
//
// Produce is safe for concurrent use; concurrent calls are independent
// and may complete in any order. It may block while the client's input
// buffer is full. Cancelling ctx abandons the wait, not the record:
// a record already handed to the client may still reach the broker.
func Produce[K, V any](ctx context.Context, p *Producer, topic Topic[K, V], value V, valueSer codec.Serializer[V], target Target, headers ...Header) (RecordMetadata, error) {
	rec, err := NewRecord(topic, value, valueSer, target, headers...)
	if err != nil {
		return RecordMetadata{}, err
	}

	select {
	case d := <-p.dispatch(rec):
		return d.Metadata, d.Err
	case <-ctx.Done():
		return RecordMetadata{}, ctx.Err()
	}
}

// ProduceKeyed is shorthand for Produce with a Topic.Key target: the
// record is keyed with key, serialized by keySer, and its partition
// follows the key.
func ProduceKeyed[K, V any](ctx context.Context, p *Producer, topic Topic[K, V], key K, value V, keySer codec.Serializer[K], valueSer codec.Serializer[V], headers ...Header) (RecordMetadata, error) {
	return Produce(ctx, p, topic, value, valueSer, topic.Key(key, keySer), headers...)
}

// ProduceAsync sends a record without waiting for its acknowledgement.
// The returned channel resolves with exactly one Delivery, whether the
// record was acknowledged, could not be serialized, could not be
// delivered, or was produced on a closed handle. The channel is
// buffered, so the Delivery is kept for a caller that reads it late.
// Like Produce, it may block while the client's input buffer is full.
func ProduceAsync[K, V any](p *Producer, topic Topic[K, V], value V, valueSer codec.Serializer[V], target Target, headers ...Header) <-chan Delivery {
	rec, err := NewRecord(topic, value, valueSer, target, headers...)
	if err != nil {
		done := make(chan Delivery, 1)
		done <- Delivery{Err: err}
		return done
	}

	return p.dispatch(rec)
}
