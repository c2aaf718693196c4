package producer

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrClosed is reported by produce calls made after Close.
var ErrClosed = errors.New("producer is closed")

// A SerializationError reports a record key or value that could not be
// serialized. It is raised while building the record, before anything
// is sent to the broker.
type SerializationError struct {
	// Topic is the destination topic of the record.
	Topic string

	// What names the part that failed, "key" or "value".
	What string

	// Err is the error returned by the serializer.
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("failed to serialize the %s of a record for topic %q: %v", e.What, e.Topic, e.Err)
}

// Unwrap returns the serializer's error.
func (e *SerializationError) Unwrap() error { return e.Err }

// A DeliveryError reports a record the client could not deliver. Err
// holds the client's error untouched.
type DeliveryError struct {
	Topic string
	Err   error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("failed to deliver a record to topic %q: %v", e.Topic, e.Err)
}

// Unwrap returns the client's error.
func (e *DeliveryError) Unwrap() error { return e.Err }
